package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"store_mgmt_v1_202510/internal/service"
	"store_mgmt_v1_202510/pkg/database"
)

// OrderController 订单接口
type OrderController struct {
	orderService *service.OrderService
}

// NewOrderController 创建订单控制器
func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder 创建订单
// POST /api/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var in service.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "参数错误: " + err.Error()})
		return
	}

	order, err := ctrl.orderService.CreateOrder(c.Request.Context(), &in)
	if err != nil {
		if database.IsConstraintViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"code": 409, "message": "订单引用了不存在的客户/用户/促销"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "创建失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": order})
}

// GetOrder 订单详情（带明细和支付）
// GET /api/orders/:id
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的订单ID"})
		return
	}

	order, err := ctrl.orderService.GetOrderByID(c.Request.Context(), int32(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": "订单不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": order})
}

// DeleteOrder 删除订单
// DELETE /api/orders/:id
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的订单ID"})
		return
	}

	if err := ctrl.orderService.DeleteOrder(c.Request.Context(), int32(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "删除失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}
