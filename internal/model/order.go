package model

import "time"

// ==================== 订单聚合 ====================

// 订单状态
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order 订单
// 订单独占其明细和支付记录（级联删除）；
// 对客户/用户/促销只是弱引用，对方删除时外键置空，订单保留
type Order struct {
	OrderID        int32     `gorm:"column:order_id;primaryKey" json:"order_id"`
	CustomerID     *int32    `gorm:"column:customer_id;index:fk_orders_customers" json:"customer_id"`
	UserID         *int32    `gorm:"column:user_id;index:fk_orders_users" json:"user_id"`
	PromoID        *int32    `gorm:"column:promo_id;index:fk_orders_promotions" json:"promo_id"`
	OrderDate      time.Time `gorm:"column:order_date" json:"order_date"`
	Status         string    `gorm:"column:status;default:pending" json:"status"`
	TotalAmount    float64   `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`
	DiscountAmount float64   `gorm:"column:discount_amount;type:decimal(10,2);default:0.00" json:"discount_amount"`

	Customer *Customer  `gorm:"belongsTo;foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
	User     *User      `gorm:"belongsTo;foreignKey:UserID;references:UserID;constraint:OnDelete:SET NULL" json:"-"`
	Promo    *Promotion `gorm:"belongsTo;foreignKey:PromoID;references:PromoID;constraint:OnDelete:SET NULL" json:"-"`

	Items    []OrderItem `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 订单明细
// 商品删除时 product_id 置空，明细保留（历史单据不因商品下架而丢）
type OrderItem struct {
	OrderItemID int32   `gorm:"column:order_item_id;primaryKey" json:"order_item_id"`
	OrderID     int32   `gorm:"column:order_id;not null;index:fk_order_items_orders" json:"order_id"`
	ProductID   *int32  `gorm:"column:product_id;index:fk_order_items_products" json:"product_id"`
	Quantity    int32   `gorm:"column:quantity" json:"quantity"`
	Price       float64 `gorm:"column:price;type:decimal(10,2)" json:"price"`
	Subtotal    float64 `gorm:"column:subtotal;type:decimal(10,2)" json:"subtotal"`

	Order   *Order   `gorm:"belongsTo;foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"belongsTo;foreignKey:ProductID;references:ProductID;constraint:OnDelete:SET NULL" json:"-"`
}

func (OrderItem) TableName() string { return "order_items" }

// 支付方式
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// Payment 支付记录
type Payment struct {
	PaymentID     int32     `gorm:"column:payment_id;primaryKey" json:"payment_id"`
	OrderID       int32     `gorm:"column:order_id;not null;index:fk_payments_orders" json:"order_id"`
	Amount        float64   `gorm:"column:amount;type:decimal(10,2)" json:"amount"`
	PaymentMethod string    `gorm:"column:payment_method;default:cash" json:"payment_method"`
	PaymentDate   time.Time `gorm:"column:payment_date" json:"payment_date"`

	Order *Order `gorm:"belongsTo;foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Payment) TableName() string { return "payments" }
