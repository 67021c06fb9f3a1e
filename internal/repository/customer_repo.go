package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"store_mgmt_v1_202510/internal/model"
)

// ==================== CustomerRepository 客户仓库 ====================

// CustomerRepository 客户仓库接口
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id int32) (*model.Customer, error)
	List(ctx context.Context, page, pageSize int) ([]model.Customer, int64, error)
	Delete(ctx context.Context, id int32) error
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓库
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create 创建普通客户
// 保留主键 0 只允许 seed 写入；这里零值主键会交给引擎自增
func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).First(&customer, "customer_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) List(ctx context.Context, page, pageSize int) ([]model.Customer, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	var customers []model.Customer
	err := r.db.WithContext(ctx).Order("customer_id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&customers).Error
	return customers, total, err
}

// Delete 删除客户
// 散客保留行不允许删：历史订单靠它兜底
func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	if id == model.WalkInCustomerID {
		return fmt.Errorf("散客保留行 (customer_id=%d) 不允许删除", model.WalkInCustomerID)
	}
	return r.db.WithContext(ctx).Delete(&model.Customer{}, "customer_id = ?", id).Error
}
