package model

import "time"

// WalkInCustomerID 散客保留主键
// customers 表里恒定存在一行 customer_id = 0，代表不登记信息的到店散客；
// 其余客户一律使用引擎自增主键。插入 0 号行必须走 seed 的原生 SQL 路径，
// 普通业务代码不允许再创建 0 号客户。
const WalkInCustomerID int32 = 0

// Customer 客户
// 散客行的 phone/email/address 均为 NULL，因此这三列用指针
type Customer struct {
	CustomerID int32     `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	Name       string    `gorm:"column:name;size:100" json:"name"`
	Phone      *string   `gorm:"column:phone;size:20" json:"phone"`
	Email      *string   `gorm:"column:email;size:100" json:"email"`
	Address    *string   `gorm:"column:address" json:"address"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }

// IsWalkIn 是否为散客保留行
func (c *Customer) IsWalkIn() bool { return c.CustomerID == WalkInCustomerID }
