package repository

import (
	"context"
	"testing"

	"store_mgmt_v1_202510/internal/model"
)

func TestInventoryRepo_AdjustQuantity(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewInventoryRepository(db)
	ctx := context.Background()

	mustCreateProduct(t, db, 1, "Coke", "8900000000001")
	if err := db.Create(&model.Inventory{InventoryID: 1, ProductID: 1, Quantity: 10}).Error; err != nil {
		t.Fatalf("建库存失败: %v", err)
	}

	if err := repo.AdjustQuantity(ctx, 1, -4); err != nil {
		t.Fatalf("AdjustQuantity() error = %v", err)
	}
	inv, err := repo.GetByProductID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByProductID() error = %v", err)
	}
	if inv.Quantity != 6 {
		t.Errorf("调整后库存 = %d, want 6", inv.Quantity)
	}

	// 不允许减成负数，失败时数量不变
	if err := repo.AdjustQuantity(ctx, 1, -7); err == nil {
		t.Error("库存不足时应报错")
	}
	inv, err = repo.GetByProductID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByProductID() error = %v", err)
	}
	if inv.Quantity != 6 {
		t.Errorf("失败调整后库存被改动 = %d, want 6", inv.Quantity)
	}
}

func TestInventoryRepo_ListBelow(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewInventoryRepository(db)
	ctx := context.Background()

	mustCreateProduct(t, db, 1, "Coke", "8900000000001")
	mustCreateProduct(t, db, 2, "Pepsi", "8900000000002")
	mustCreateProduct(t, db, 3, "Tea", "8900000000003")

	rows := []model.Inventory{
		{InventoryID: 1, ProductID: 1, Quantity: 5},
		{InventoryID: 2, ProductID: 2, Quantity: 100},
		{InventoryID: 3, ProductID: 3, Quantity: 12},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("建库存失败: %v", err)
	}

	low, err := repo.ListBelow(ctx, 30)
	if err != nil {
		t.Fatalf("ListBelow() error = %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("低库存行数 = %d, want 2", len(low))
	}
	// 按数量升序
	if low[0].ProductID != 1 || low[0].ProductName != "Coke" || low[0].Quantity != 5 {
		t.Errorf("低库存第一行不符: %+v", low[0])
	}
	if low[1].ProductID != 3 || low[1].Quantity != 12 {
		t.Errorf("低库存第二行不符: %+v", low[1])
	}
}

func TestInventoryRepo_GetByProductIDMissing(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewInventoryRepository(db)

	inv, err := repo.GetByProductID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByProductID() error = %v", err)
	}
	if inv != nil {
		t.Errorf("无库存行应返回 nil, got %+v", inv)
	}
}
