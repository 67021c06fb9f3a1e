package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"store_mgmt_v1_202510/internal/controller"
	"store_mgmt_v1_202510/internal/middleware"
	"store_mgmt_v1_202510/internal/model"
	"store_mgmt_v1_202510/internal/repository"
	"store_mgmt_v1_202510/internal/router"
	"store_mgmt_v1_202510/internal/seed"
	"store_mgmt_v1_202510/internal/service"
	"store_mgmt_v1_202510/internal/task"
	"store_mgmt_v1_202510/pkg/config"
	"store_mgmt_v1_202510/pkg/database"
)

func main() {
	// 1. 读取配置
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("读取配置失败: %v", err)
	}

	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		AccessTokenTTL: time.Duration(cfg.JWT.AccessTTLHours) * time.Hour,
	})

	// 2. 初始化数据库并播种
	db := initDatabase(cfg)

	// 3. 初始化依赖
	deps := initDependencies(db, cfg)

	// 4. 启动定时任务
	stopTasks := initTasks(deps, cfg)
	defer stopTasks()

	// 5. 初始化路由
	r := gin.Default()
	router.InitRoutes(r, deps.Controllers)

	// 6. 启动服务
	startServer(r, cfg.Server.Port)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Product   repository.ProductRepository
	Customer  repository.CustomerRepository
	User      repository.UserRepository
	Order     repository.OrderRepository
	Inventory repository.InventoryRepository
}

// Services 服务集合
type Services struct {
	Auth    *service.AuthService
	Product *service.ProductService
	Order   *service.OrderService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库：建表 + 启动播种
// 播种失败只记日志不退出，服务照常起，可用 /debug/reseed-database 补种
func initDatabase(cfg *config.Config) *gorm.DB {
	db := database.InitDB(cfg.Database.File)

	if err := database.CreateSchemaIfAbsent(db, model.Models()...); err != nil {
		log.Fatalf("建表失败: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := seed.Run(ctx, db)
	if err != nil {
		log.Printf("警告: 初始化数据播种失败: %v", err)
		return db
	}
	log.Printf("初始化数据就绪: %d 商品 / %d 用户 / %d 客户",
		result.Products, result.Users, result.Customers)
	return db
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB, cfg *config.Config) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Product:   repository.NewProductRepository(db),
		Customer:  repository.NewCustomerRepository(db),
		User:      repository.NewUserRepository(db),
		Order:     repository.NewOrderRepository(db),
		Inventory: repository.NewInventoryRepository(db),
	}

	// -------- Service 层 --------
	services := &Services{
		Auth:    service.NewAuthService(repos.User),
		Product: service.NewProductService(repos.Product),
		Order:   service.NewOrderService(repos.Order),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:    controller.NewAuthController(services.Auth),
		Product: controller.NewProductController(services.Product),
		Order:   controller.NewOrderController(services.Order),
		Debug:   controller.NewDebugController(db, repos.Product, cfg.Database.File),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务，返回停止函数
func initTasks(deps *Dependencies, cfg *config.Config) func() {
	if !cfg.Stock.MonitorEnabled {
		return func() {}
	}

	stockMonitor := task.NewStockMonitorTask(
		deps.Repos.Inventory,
		cfg.Stock.MonitorCron,
		int32(cfg.Stock.LowThreshold),
	)
	if err := stockMonitor.Start(); err != nil {
		log.Printf("警告: 低库存巡检启动失败: %v", err)
		return func() {}
	}

	log.Println("定时任务已启动")
	return stockMonitor.Stop
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, port int) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%d", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}
