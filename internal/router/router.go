package router

import (
	"github.com/gin-gonic/gin"

	"store_mgmt_v1_202510/internal/controller"
	"store_mgmt_v1_202510/internal/middleware"
)

// Controllers 路由需要的全部控制器
type Controllers struct {
	Auth    *controller.AuthController
	Product *controller.ProductController
	Order   *controller.OrderController
	Debug   *controller.DebugController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctls *Controllers) {
	// 1. 诊断路由组：排障用，不挂认证（和历史后端保持一致）
	debug := r.Group("/debug")
	{
		debug.GET("/database-stats", ctls.Debug.GetDatabaseStats)
		debug.GET("/products-sample", ctls.Debug.GetProductsSample)
		debug.GET("/check-seed-status", ctls.Debug.CheckSeedStatus)
		debug.POST("/reseed-database", ctls.Debug.ReseedDatabase)
	}

	// 2. API 路由组
	api := r.Group("/api")
	{
		// auth 鉴权组
		auth := api.Group("/auth")
		{
			// POST /api/auth/login
			auth.POST("/login", ctls.Auth.Login)
		}

		// product 组：查询公开，写操作要登录
		products := api.Group("/products")
		{
			products.GET("", ctls.Product.GetProducts)
			products.GET("/:id", ctls.Product.GetProduct)
			products.POST("", middleware.JWTAuth(), ctls.Product.CreateProduct)
		}

		// order 组：全部要登录
		orders := api.Group("/orders", middleware.JWTAuth())
		{
			orders.POST("", ctls.Order.CreateOrder)
			orders.GET("/:id", ctls.Order.GetOrder)
			orders.DELETE("/:id", ctls.Order.DeleteOrder)
		}
	}
}
