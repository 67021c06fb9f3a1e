package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"store_mgmt_v1_202510/internal/model"
)

// ==================== InventoryRepository 库存仓库 ====================

// InventoryRepository 库存仓库接口
type InventoryRepository interface {
	GetByProductID(ctx context.Context, productID int32) (*model.Inventory, error)
	ListBelow(ctx context.Context, threshold int32) ([]LowStockRow, error)
	AdjustQuantity(ctx context.Context, productID int32, delta int32) error
}

// LowStockRow 低库存巡检输出行
type LowStockRow struct {
	ProductID   int32
	ProductName string
	Quantity    int32
}

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存仓库
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetByProductID(ctx context.Context, productID int32) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &inv, err
}

func (r *inventoryRepository) ListBelow(ctx context.Context, threshold int32) ([]LowStockRow, error) {
	var rows []LowStockRow
	err := r.db.WithContext(ctx).Table("inventory").
		Select("inventory.product_id, products.product_name, inventory.quantity").
		Joins("JOIN products ON products.product_id = inventory.product_id").
		Where("inventory.quantity < ?", threshold).
		Order("inventory.quantity").
		Scan(&rows).Error
	return rows, err
}

// AdjustQuantity 增减库存，不允许减成负数
func (r *inventoryRepository) AdjustQuantity(ctx context.Context, productID int32, delta int32) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv model.Inventory
		if err := tx.Where("product_id = ?", productID).First(&inv).Error; err != nil {
			return err
		}
		next := inv.Quantity + delta
		if next < 0 {
			return fmt.Errorf("商品 %d 库存不足: 当前 %d，调整 %d", productID, inv.Quantity, delta)
		}
		return tx.Model(&model.Inventory{}).
			Where("inventory_id = ?", inv.InventoryID).
			Updates(map[string]interface{}{
				"quantity":   next,
				"updated_at": time.Now(),
			}).Error
	})
}
