package model

import "time"

// Product 商品
// 分类/供应商都是弱引用：对方删除时外键置空，商品保留
type Product struct {
	ProductID   int32     `gorm:"column:product_id;primaryKey" json:"product_id"`
	CategoryID  *int32    `gorm:"column:category_id;index:fk_products_categories" json:"category_id"`
	SupplierID  *int32    `gorm:"column:supplier_id;index:fk_products_suppliers" json:"supplier_id"`
	ProductName string    `gorm:"column:product_name;size:100" json:"product_name"`
	Barcode     string    `gorm:"column:barcode;size:50;uniqueIndex:barcode" json:"barcode"`
	Price       float64   `gorm:"column:price;type:decimal(10,2)" json:"price"`
	Unit        string    `gorm:"column:unit;size:20;default:pcs" json:"unit"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	Category *Category `gorm:"belongsTo;foreignKey:CategoryID;references:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Supplier *Supplier `gorm:"belongsTo;foreignKey:SupplierID;references:SupplierID;constraint:OnDelete:SET NULL" json:"supplier,omitempty"`
}

func (Product) TableName() string { return "products" }
