package service

import (
	"context"
	"errors"
	"time"

	"store_mgmt_v1_202510/internal/model"
	"store_mgmt_v1_202510/internal/repository"
)

// OrderService 订单服务
// 金额由调用方给定，这里不做算价（收银端负责）
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService 工厂方法
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// OrderItemInput 订单明细入参
type OrderItemInput struct {
	ProductID *int32  `json:"product_id"`
	Quantity  int32   `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// CreateOrderInput 创建订单入参
type CreateOrderInput struct {
	CustomerID     *int32           `json:"customer_id"`
	UserID         *int32           `json:"user_id"`
	PromoID        *int32           `json:"promo_id"`
	TotalAmount    float64          `json:"total_amount"`
	DiscountAmount float64          `json:"discount_amount"`
	Payments       []float64        `json:"payments"`
	Items          []OrderItemInput `json:"items"`
}

// CreateOrder 落一张订单，明细/支付同事务写入
func (s *OrderService) CreateOrder(ctx context.Context, in *CreateOrderInput) (*model.Order, error) {
	if len(in.Items) == 0 {
		return nil, errors.New("订单至少要有一条明细")
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, errors.New("明细数量必须大于 0")
		}
	}

	now := time.Now()
	order := &model.Order{
		CustomerID:     in.CustomerID,
		UserID:         in.UserID,
		PromoID:        in.PromoID,
		OrderDate:      now,
		Status:         model.OrderStatusPending,
		TotalAmount:    in.TotalAmount,
		DiscountAmount: in.DiscountAmount,
	}
	for _, item := range in.Items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		})
	}
	for _, amount := range in.Payments {
		order.Payments = append(order.Payments, model.Payment{
			Amount:        amount,
			PaymentMethod: model.PaymentMethodCash,
			PaymentDate:   now,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrderByID 查订单，带明细和支付
func (s *OrderService) GetOrderByID(ctx context.Context, id int32) (*model.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// DeleteOrder 删除订单（明细/支付级联清理）
func (s *OrderService) DeleteOrder(ctx context.Context, id int32) error {
	return s.orderRepo.Delete(ctx, id)
}
