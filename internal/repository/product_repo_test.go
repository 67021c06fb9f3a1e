package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"store_mgmt_v1_202510/internal/model"
	"store_mgmt_v1_202510/pkg/database"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层 SQL DB 失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.Models()...); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func int32Ptr(v int32) *int32 { return &v }

// mustCreateProduct 造一个带分类/供应商的商品
func mustCreateProduct(t *testing.T, db *gorm.DB, id int32, name, barcode string) {
	t.Helper()
	if err := db.FirstOrCreate(&model.Category{CategoryID: 1, CategoryName: "Drinks"}).Error; err != nil {
		t.Fatalf("建分类失败: %v", err)
	}
	if err := db.FirstOrCreate(&model.Supplier{SupplierID: 1, Name: "ACME"}).Error; err != nil {
		t.Fatalf("建供应商失败: %v", err)
	}
	p := model.Product{
		ProductID:   id,
		CategoryID:  int32Ptr(1),
		SupplierID:  int32Ptr(1),
		ProductName: name,
		Barcode:     barcode,
		Price:       10000,
		Unit:        "pcs",
		CreatedAt:   time.Now(),
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("建商品失败: %v", err)
	}
}

func TestProductRepo_CreateDuplicateBarcode(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	mustCreateProduct(t, db, 1, "Coke", "8900000000001")

	dup := &model.Product{
		ProductID:   2,
		ProductName: "Pepsi",
		Barcode:     "8900000000001",
		Price:       9000,
		Unit:        "pcs",
	}
	err := repo.Create(ctx, dup)
	if !database.IsConstraintViolation(err) {
		t.Errorf("重复条码应报约束错误, got %v", err)
	}
}

func TestProductRepo_GetByBarcode(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	mustCreateProduct(t, db, 1, "Coke", "8900000000001")

	p, err := repo.GetByBarcode(ctx, "8900000000001")
	if err != nil {
		t.Fatalf("GetByBarcode() error = %v", err)
	}
	if p == nil || p.ProductName != "Coke" {
		t.Errorf("GetByBarcode() = %+v, want Coke", p)
	}

	missing, err := repo.GetByBarcode(ctx, "0000000000000")
	if err != nil {
		t.Fatalf("GetByBarcode() error = %v", err)
	}
	if missing != nil {
		t.Errorf("不存在的条码应返回 nil, got %+v", missing)
	}
}

func TestProductRepo_ListFilter(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	mustCreateProduct(t, db, 1, "Green tea", "8900000000001")
	mustCreateProduct(t, db, 2, "Black tea", "8900000000002")
	mustCreateProduct(t, db, 3, "Coffee", "8900000000003")

	products, total, err := repo.List(ctx, ProductFilter{Keyword: "tea"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Errorf("按关键词过滤 total = %d, len = %d, want 2/2", total, len(products))
	}

	products, total, err = repo.List(ctx, ProductFilter{CategoryID: int32Ptr(1)})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 3 {
		t.Errorf("按分类过滤 total = %d, want 3", total)
	}
	if len(products) != 3 {
		t.Errorf("按分类过滤 len = %d, want 3", len(products))
	}
}

func TestProductRepo_SampleWithNames(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	mustCreateProduct(t, db, 1, "Coke", "8900000000001")

	// 无分类/供应商的商品
	orphan := model.Product{
		ProductID:   2,
		ProductName: "Mystery item",
		Barcode:     "8900000000002",
		Price:       5000,
		Unit:        "pcs",
	}
	if err := db.Create(&orphan).Error; err != nil {
		t.Fatalf("建商品失败: %v", err)
	}

	samples, err := repo.SampleWithNames(ctx, 5)
	if err != nil {
		t.Fatalf("SampleWithNames() error = %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("采样行数 = %d, want 2", len(samples))
	}

	if samples[0].CategoryName != "Drinks" || samples[0].SupplierName != "ACME" {
		t.Errorf("有外键的商品名称不符: %+v", samples[0])
	}
	// 外键为空时回退为 N/A
	if samples[1].CategoryName != "N/A" || samples[1].SupplierName != "N/A" {
		t.Errorf("外键为空的商品应回退为 N/A: %+v", samples[1])
	}
}

func TestProductRepo_DeleteCascadesInventory(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	mustCreateProduct(t, db, 1, "Coke", "8900000000001")
	if err := db.Create(&model.Inventory{InventoryID: 1, ProductID: 1, Quantity: 10}).Error; err != nil {
		t.Fatalf("建库存失败: %v", err)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var n int64
	if err := db.Table("inventory").Where("product_id = ?", 1).Count(&n).Error; err != nil {
		t.Fatalf("统计库存失败: %v", err)
	}
	if n != 0 {
		t.Errorf("删商品后库存行应级联删除, 剩 %d 行", n)
	}
}

func TestProductRepo_DeleteNullsOrderItems(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	mustCreateProduct(t, db, 1, "Coke", "8900000000001")

	order := model.Order{OrderID: 1, OrderDate: time.Now(), Status: model.OrderStatusCompleted, TotalAmount: 10000}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("建订单失败: %v", err)
	}
	item := model.OrderItem{OrderItemID: 1, OrderID: 1, ProductID: int32Ptr(1), Quantity: 1, Price: 10000, Subtotal: 10000}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("建明细失败: %v", err)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// 明细保留，product_id 置空
	var got model.OrderItem
	if err := db.First(&got, "order_item_id = ?", 1).Error; err != nil {
		t.Fatalf("明细被误删: %v", err)
	}
	if got.ProductID != nil {
		t.Errorf("删商品后明细 product_id 应置空, got %v", *got.ProductID)
	}
}

func TestProductRepo_SurvivesCategoryDelete(t *testing.T) {
	db := setupRepoTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	mustCreateProduct(t, db, 1, "Coke", "8900000000001")

	if err := db.Delete(&model.Category{}, "category_id = ?", 1).Error; err != nil {
		t.Fatalf("删分类失败: %v", err)
	}
	if err := db.Delete(&model.Supplier{}, "supplier_id = ?", 1).Error; err != nil {
		t.Fatalf("删供应商失败: %v", err)
	}

	p, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if p == nil {
		t.Fatal("删分类/供应商后商品应保留")
	}
	if p.CategoryID != nil || p.SupplierID != nil {
		t.Errorf("商品外键应置空: category=%v supplier=%v", p.CategoryID, p.SupplierID)
	}
}
