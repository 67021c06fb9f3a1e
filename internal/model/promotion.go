package model

import "time"

// 折扣类型
const (
	DiscountTypePercent = "percent" // 按比例
	DiscountTypeFixed   = "fixed"   // 固定金额
)

// 促销状态
const (
	PromotionStatusActive   = "active"
	PromotionStatusInactive = "inactive"
)

// Promotion 促销活动
// UsageLimit = 0 表示不限次数；业务上要求 StartDate <= EndDate
type Promotion struct {
	PromoID        int32     `gorm:"column:promo_id;primaryKey" json:"promo_id"`
	PromoCode      string    `gorm:"column:promo_code;size:50;uniqueIndex:promo_code" json:"promo_code"`
	Description    string    `gorm:"column:description;size:255" json:"description"`
	DiscountType   string    `gorm:"column:discount_type" json:"discount_type"`
	DiscountValue  float64   `gorm:"column:discount_value;type:decimal(10,2)" json:"discount_value"`
	StartDate      time.Time `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate        time.Time `gorm:"column:end_date;type:date" json:"end_date"`
	MinOrderAmount float64   `gorm:"column:min_order_amount;type:decimal(10,2);default:0.00" json:"min_order_amount"`
	UsageLimit     int32     `gorm:"column:usage_limit;default:0" json:"usage_limit"`
	UsedCount      int32     `gorm:"column:used_count;default:0" json:"used_count"`
	Status         string    `gorm:"column:status;default:active" json:"status"`
}

func (Promotion) TableName() string { return "promotions" }
