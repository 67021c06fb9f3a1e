package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"store_mgmt_v1_202510/internal/model"
	"store_mgmt_v1_202510/internal/repository"
	"store_mgmt_v1_202510/internal/seed"
	"store_mgmt_v1_202510/pkg/database"
)

// ==================== DebugController 运维诊断接口 ====================
//
// 这组接口给运维/桌面端排障用，响应键是历史约定的 PascalCase，
// 已有外部工具按这些键名解析，不要改。

// DebugController 诊断控制器
type DebugController struct {
	db          *gorm.DB
	productRepo repository.ProductRepository
	dbFile      string
}

// NewDebugController 创建诊断控制器
// dbFile: 数据库文件名，原样回显给调用方
func NewDebugController(db *gorm.DB, productRepo repository.ProductRepository, dbFile string) *DebugController {
	return &DebugController{db: db, productRepo: productRepo, dbFile: dbFile}
}

// databaseStats 12 张业务表的行数
type databaseStats struct {
	Products    int64
	Categories  int64
	Suppliers   int64
	Customers   int64
	Users       int64
	Roles       int64
	Permissions int64
	Promotions  int64
	Inventories int64
	Orders      int64
	OrderItems  int64
	Payments    int64
}

func (ctrl *DebugController) collectStats(db *gorm.DB) (*databaseStats, error) {
	stats := &databaseStats{}
	for _, c := range []struct {
		table string
		dst   *int64
	}{
		{"products", &stats.Products},
		{"categories", &stats.Categories},
		{"suppliers", &stats.Suppliers},
		{"customers", &stats.Customers},
		{"users", &stats.Users},
		{"roles", &stats.Roles},
		{"permissions", &stats.Permissions},
		{"promotions", &stats.Promotions},
		{"inventory", &stats.Inventories},
		{"orders", &stats.Orders},
		{"order_items", &stats.OrderItems},
		{"payments", &stats.Payments},
	} {
		n, err := database.EntityCount(db, c.table)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return stats, nil
}

// GetDatabaseStats 各表行数
// GET /debug/database-stats
func (ctrl *DebugController) GetDatabaseStats(c *gin.Context) {
	stats, err := ctrl.collectStats(ctrl.db.WithContext(c.Request.Context()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": "统计失败", "Error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Message":      "Database Statistics",
		"Stats":        stats,
		"TotalTables":  12,
		"DatabaseFile": ctrl.dbFile,
	})
}

// productSampleResp 采样行，键名兼容历史工具
type productSampleResp struct {
	ProductId    int32   `json:"ProductId"`
	ProductName  string  `json:"ProductName"`
	Price        float64 `json:"Price"`
	Unit         string  `json:"Unit"`
	Barcode      string  `json:"Barcode"`
	CategoryName string  `json:"CategoryName"`
	SupplierName string  `json:"SupplierName"`
}

// GetProductsSample 取前 5 个商品连分类/供应商名
// GET /debug/products-sample
func (ctrl *DebugController) GetProductsSample(c *gin.Context) {
	samples, err := ctrl.productRepo.SampleWithNames(c.Request.Context(), 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": "采样失败", "Error": err.Error()})
		return
	}

	products := make([]productSampleResp, 0, len(samples))
	for _, s := range samples {
		products = append(products, productSampleResp{
			ProductId:    s.ProductID,
			ProductName:  s.ProductName,
			Price:        s.Price,
			Unit:         s.Unit,
			Barcode:      s.Barcode,
			CategoryName: s.CategoryName,
			SupplierName: s.SupplierName,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"Count":    len(products),
		"Products": products,
	})
}

// CheckSeedStatus 判断是否需要重新灌入基础数据
// 商品/用户/分类任意一张为空就算需要
// GET /debug/check-seed-status
func (ctrl *DebugController) CheckSeedStatus(c *gin.Context) {
	db := ctrl.db.WithContext(c.Request.Context())

	productCount, err := database.EntityCount(db, "products")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": "统计失败", "Error": err.Error()})
		return
	}
	userCount, err := database.EntityCount(db, "users")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": "统计失败", "Error": err.Error()})
		return
	}
	categoryCount, err := database.EntityCount(db, "categories")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Message": "统计失败", "Error": err.Error()})
		return
	}

	needsSeeding := productCount == 0 || userCount == 0 || categoryCount == 0
	message := "Database has data"
	if needsSeeding {
		message = "Database needs reseeding!"
	}

	c.JSON(http.StatusOK, gin.H{
		"NeedsSeeding":       needsSeeding,
		"ProductCount":       productCount,
		"UserCount":          userCount,
		"CategoryCount":      categoryCount,
		"ExpectedProducts":   50,
		"ExpectedUsers":      3,
		"ExpectedCategories": 5,
		"Message":            message,
	})
}

// ReseedDatabase 破坏性重建：删全部表 → 重建 → 重新灌入
// POST /debug/reseed-database
func (ctrl *DebugController) ReseedDatabase(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()

	db := ctrl.db.WithContext(ctx)

	if err := database.DropSchema(db, model.TableNames()...); err != nil {
		ctrl.reseedFailed(c, err)
		return
	}
	if err := database.CreateSchemaIfAbsent(db, model.Models()...); err != nil {
		ctrl.reseedFailed(c, err)
		return
	}

	res, err := seed.Run(ctx, ctrl.db)
	if err != nil {
		ctrl.reseedFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Success":  true,
		"Message":  "Database reseeded successfully",
		"Products": res.Products,
		"Users":    res.Users,
	})
}

func (ctrl *DebugController) reseedFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"Success": false,
		"Message": "Reseed failed",
		"Error":   err.Error(),
	})
}
