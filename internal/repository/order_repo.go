package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"store_mgmt_v1_202510/internal/model"
)

// ==================== OrderRepository 订单仓库 ====================

// OrderRepository 订单仓库接口
// 订单连同明细/支付一起写入；删除靠库级外键级联清掉子表行
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int32) (*model.Order, error)
	List(ctx context.Context, page, pageSize int) ([]model.Order, int64, error)
	Delete(ctx context.Context, id int32) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create 订单 + 明细 + 支付在同一事务里落库
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		First(&order, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	var orders []model.Order
	err := r.db.WithContext(ctx).Order("order_id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	return orders, total, err
}

// Delete 删除订单，明细和支付由外键级联带走
func (r *orderRepository) Delete(ctx context.Context, id int32) error {
	return r.db.WithContext(ctx).Delete(&model.Order{}, "order_id = ?", id).Error
}
