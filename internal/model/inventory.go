package model

import "time"

// Inventory 库存
// 一行对应一个商品的当前库存；商品删除时库存行级联删除
type Inventory struct {
	InventoryID int32     `gorm:"column:inventory_id;primaryKey" json:"inventory_id"`
	ProductID   int32     `gorm:"column:product_id;not null;index:fk_inventory_products" json:"product_id"`
	Quantity    int32     `gorm:"column:quantity;default:0" json:"quantity"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	Product *Product `gorm:"belongsTo;foreignKey:ProductID;references:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Inventory) TableName() string { return "inventory" }
