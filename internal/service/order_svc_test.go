package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"store_mgmt_v1_202510/internal/model"
	"store_mgmt_v1_202510/internal/repository"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
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

func TestCreateOrder_Validation(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	// 无明细
	if _, err := svc.CreateOrder(ctx, &CreateOrderInput{TotalAmount: 100}); err == nil {
		t.Error("空明细应被拒绝")
	}

	// 数量非法
	in := &CreateOrderInput{
		TotalAmount: 100,
		Items:       []OrderItemInput{{Quantity: 0, Price: 100, Subtotal: 0}},
	}
	if _, err := svc.CreateOrder(ctx, in); err == nil {
		t.Error("数量为 0 的明细应被拒绝")
	}
}

func TestCreateOrder_WritesAggregate(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	if err := db.Create(&model.Product{ProductID: 1, ProductName: "Coke", Barcode: "8900000000001", Price: 10000, Unit: "pcs"}).Error; err != nil {
		t.Fatalf("建商品失败: %v", err)
	}

	productID := int32(1)
	in := &CreateOrderInput{
		TotalAmount: 20000,
		Payments:    []float64{20000},
		Items: []OrderItemInput{
			{ProductID: &productID, Quantity: 2, Price: 10000, Subtotal: 20000},
		},
	}

	order, err := svc.CreateOrder(ctx, in)
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if order.OrderID == 0 {
		t.Fatal("订单主键应由引擎分配")
	}
	if order.Status != model.OrderStatusPending {
		t.Errorf("新订单状态 = %q, want pending", order.Status)
	}

	got, err := svc.GetOrderByID(ctx, order.OrderID)
	if err != nil {
		t.Fatalf("GetOrderByID() error = %v", err)
	}
	if len(got.Items) != 1 || len(got.Payments) != 1 {
		t.Errorf("聚合写入不完整: items=%d payments=%d", len(got.Items), len(got.Payments))
	}
	if got.Payments[0].PaymentMethod != model.PaymentMethodCash {
		t.Errorf("默认支付方式 = %q, want cash", got.Payments[0].PaymentMethod)
	}
}
