package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"store_mgmt_v1_202510/internal/model"
)

// ==================== ProductRepository 商品仓库 ====================

// ProductRepository 商品仓库接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int32) (*model.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
	SampleWithNames(ctx context.Context, limit int) ([]ProductSample, error)
	Delete(ctx context.Context, id int32) error
}

// ProductFilter 商品筛选条件
type ProductFilter struct {
	Keyword    string
	CategoryID *int32
	Page       int
	PageSize   int
}

// ProductSample 诊断接口用的商品采样行，关联出分类/供应商显示名
type ProductSample struct {
	ProductID    int32
	ProductName  string
	Price        float64
	Unit         string
	Barcode      string
	CategoryName string
	SupplierName string
}

// ==================== 实现 ====================

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		First(&product, "product_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})
	if filter.Keyword != "" {
		query = query.Where("product_name LIKE ?", "%"+filter.Keyword+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	var products []model.Product
	err := query.Order("product_id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error
	return products, total, err
}

// SampleWithNames 外键为空的商品，分类/供应商名回退为字面量 "N/A"
func (r *productRepository) SampleWithNames(ctx context.Context, limit int) ([]ProductSample, error) {
	var samples []ProductSample
	err := r.db.WithContext(ctx).Table("products").
		Select(`products.product_id, products.product_name, products.price, products.unit, products.barcode,
			COALESCE(categories.category_name, 'N/A') AS category_name,
			COALESCE(suppliers.name, 'N/A') AS supplier_name`).
		Joins("LEFT JOIN categories ON categories.category_id = products.category_id").
		Joins("LEFT JOIN suppliers ON suppliers.supplier_id = products.supplier_id").
		Order("products.product_id").
		Limit(limit).
		Scan(&samples).Error
	return samples, err
}

func (r *productRepository) Delete(ctx context.Context, id int32) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, "product_id = ?", id).Error
}

// normalizePage 页码参数兜底
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}
	return page, pageSize
}
