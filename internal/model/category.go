package model

// Category 商品分类
// 被 Product 弱引用：删除分类时商品的 category_id 置空，商品本身保留
type Category struct {
	CategoryID   int32  `gorm:"column:category_id;primaryKey" json:"category_id"`
	CategoryName string `gorm:"column:category_name;size:100" json:"category_name"`
}

func (Category) TableName() string { return "categories" }
