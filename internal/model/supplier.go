package model

// Supplier 供应商
type Supplier struct {
	SupplierID int32  `gorm:"column:supplier_id;primaryKey" json:"supplier_id"`
	Name       string `gorm:"column:name;size:100" json:"name"`
	Phone      string `gorm:"column:phone;size:20" json:"phone"`
	Email      string `gorm:"column:email;size:100" json:"email"`
	Address    string `gorm:"column:address" json:"address"`
}

func (Supplier) TableName() string { return "suppliers" }
