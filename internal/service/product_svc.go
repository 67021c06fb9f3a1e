package service

import (
	"context"

	"store_mgmt_v1_202510/internal/model"
	"store_mgmt_v1_202510/internal/repository"
)

// ProductService 商品查询服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 工厂方法
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListProducts 分页查询商品，支持按名称关键字和分类过滤
func (s *ProductService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	return s.productRepo.List(ctx, filter)
}

// GetProductByID 查单个商品，带分类/供应商
func (s *ProductService) GetProductByID(ctx context.Context, id int32) (*model.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateProduct 新建商品
func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.productRepo.Create(ctx, product)
}
