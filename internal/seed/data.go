package seed

import (
	"time"

	"store_mgmt_v1_202510/internal/model"
)

// ==================== 基础数据字面量 ====================
//
// 这份数据来自上线前整理的 data.sql，时间戳全部是固定字面量，
// 不是灌入时刻的墙钟时间：这样重复灌库、跑测试的结果才是确定的。

// seedTime 所有基础数据行共用的创建/更新时间
var seedTime = time.Date(2025, 10, 8, 12, 20, 48, 0, time.UTC)

// defaultPassword 三个内置账号的初始密码（入库前经过 bcrypt）
const defaultPassword = "123456"

// walkInCustomerName 散客保留行的显示名
const walkInCustomerName = "Walk-in customer"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func categoryData() []model.Category {
	return []model.Category{
		{CategoryID: 1, CategoryName: "Beverages"},
		{CategoryID: 2, CategoryName: "Confectionery"},
		{CategoryID: 3, CategoryName: "Seasoning"},
		{CategoryID: 4, CategoryName: "Household"},
		{CategoryID: 5, CategoryName: "Cosmetics"},
	}
}

func supplierData() []model.Supplier {
	return []model.Supplier{
		{SupplierID: 1, Name: "ABC Company", Phone: "0909123456", Email: "abc@gmail.com", Address: "Hanoi"},
		{SupplierID: 2, Name: "XYZ Company", Phone: "0912123456", Email: "xyz@gmail.com", Address: "Ho Chi Minh City"},
		{SupplierID: 3, Name: "123 Company", Phone: "0933123456", Email: "123@gmail.com", Address: "Da Nang"},
		{SupplierID: 4, Name: "DEF Company", Phone: "0944123456", Email: "def@gmail.com", Address: "Can Tho"},
		{SupplierID: 5, Name: "GHI Company", Phone: "0955123456", Email: "ghi@gmail.com", Address: "Hai Phong"},
	}
}

func roleData() []model.Role {
	return []model.Role{
		{RoleID: 1, RoleName: "Admin", Description: "System administrator with full access."},
		{RoleID: 2, RoleName: "Staff", Description: "Sales staff with limited access."},
	}
}

// userData 一个管理员 + 两个店员，共用同一份 bcrypt 密码
func userData(hashedPassword string) []model.User {
	role1, role2 := int32(1), int32(2)
	return []model.User{
		{UserID: 1, Username: "admin", Password: hashedPassword, FullName: "Administrator", RoleID: &role1, CreatedAt: seedTime},
		{UserID: 2, Username: "staff01", Password: hashedPassword, FullName: "Nguyen Van A", RoleID: &role2, CreatedAt: seedTime},
		{UserID: 3, Username: "staff02", Password: hashedPassword, FullName: "Le Thi B", RoleID: &role2, CreatedAt: seedTime},
	}
}

func permissionData() []model.Permission {
	return []model.Permission{
		{PermissionID: 1, PermissionName: "View revenue dashboard", ActionKey: "dashboard_view", Description: "View business overview reports."},
		{PermissionID: 2, PermissionName: "Manage users", ActionKey: "user_manage", Description: "Create, edit and delete staff accounts and assign roles."},
		{PermissionID: 3, PermissionName: "Manage suppliers", ActionKey: "supplier_manage", Description: "Add, edit and delete supplier records."},
		{PermissionID: 4, PermissionName: "Manage product categories", ActionKey: "category_manage", Description: "Manage the product category list."},
		{PermissionID: 5, PermissionName: "Manage inventory", ActionKey: "inventory_manage", Description: "Receive stock, take stock and manage on-hand quantity."},
		{PermissionID: 6, PermissionName: "Manage promotions", ActionKey: "promotion_manage", Description: "Create and manage discount campaigns."},
		{PermissionID: 7, PermissionName: "Manage roles", ActionKey: "role_manage", Description: "Create and manage role groups."},
		{PermissionID: 8, PermissionName: "Manage permissions", ActionKey: "permission_manage", Description: "Create and manage permission entries."},
		{PermissionID: 9, PermissionName: "Manage customers", ActionKey: "customer_manage", Description: "Add, edit, delete and search customer records."},
		{PermissionID: 10, PermissionName: "View products", ActionKey: "product_view", Description: "View product information and prices."},
		{PermissionID: 11, PermissionName: "Manage orders", ActionKey: "order_manage", Description: "Create orders, add order lines and take payments."},
	}
}

// rolePermissionData Admin 拿全部 11 项；Staff 只拿客户/商品/订单三项
func rolePermissionData() []model.RolePermission {
	out := make([]model.RolePermission, 0, 14)
	for pid := int32(1); pid <= 11; pid++ {
		out = append(out, model.RolePermission{RoleID: 1, PermissionID: pid})
	}
	for _, pid := range []int32{9, 10, 11} {
		out = append(out, model.RolePermission{RoleID: 2, PermissionID: pid})
	}
	return out
}

func promotionData() []model.Promotion {
	return []model.Promotion{
		{PromoID: 1, PromoCode: "SALE10", Description: "10% off every order", DiscountType: model.DiscountTypePercent, DiscountValue: 10, StartDate: date(2025, 1, 1), EndDate: date(2025, 12, 31), MinOrderAmount: 0, UsageLimit: 0, UsedCount: 0, Status: model.PromotionStatusActive},
		{PromoID: 2, PromoCode: "FREESHIP50K", Description: "50,000 off orders of 300,000 or more", DiscountType: model.DiscountTypeFixed, DiscountValue: 50000, StartDate: date(2025, 3, 1), EndDate: date(2025, 12, 31), MinOrderAmount: 300000, UsageLimit: 500, UsedCount: 0, Status: model.PromotionStatusActive},
		{PromoID: 3, PromoCode: "NEWUSER", Description: "20% off for new customers", DiscountType: model.DiscountTypePercent, DiscountValue: 20, StartDate: date(2025, 1, 1), EndDate: date(2025, 6, 30), MinOrderAmount: 0, UsageLimit: 1, UsedCount: 0, Status: model.PromotionStatusActive},
		{PromoID: 4, PromoCode: "SUMMER15", Description: "15% summer discount", DiscountType: model.DiscountTypePercent, DiscountValue: 15, StartDate: date(2025, 6, 1), EndDate: date(2025, 8, 31), MinOrderAmount: 50000, UsageLimit: 1000, UsedCount: 0, Status: model.PromotionStatusActive},
		{PromoID: 5, PromoCode: "VIP100K", Description: "100,000 off orders of 1,000,000 or more", DiscountType: model.DiscountTypeFixed, DiscountValue: 100000, StartDate: date(2025, 1, 1), EndDate: date(2025, 12, 31), MinOrderAmount: 1000000, UsageLimit: 200, UsedCount: 0, Status: model.PromotionStatusActive},
	}
}

// productRow 商品行的紧凑写法，50 行字面量直接对照 data.sql
type productRow struct {
	id     int32
	suppID int32
	catID  int32
	name   string
	price  float64
	unit   string
}

func productRows() []productRow {
	return []productRow{
		{1, 2, 1, "Coca Cola Can", 314838, "box"},
		{2, 1, 3, "Pepsi Can", 114807, "pcs"},
		{3, 3, 3, "Zero Degree Green Tea", 415725, "tube"},
		{4, 2, 1, "Sting Strawberry", 351670, "pcs"},
		{5, 3, 2, "Red Bull", 402179, "can"},
		{6, 2, 2, "Oreo Cookies", 209283, "bottle"},
		{7, 5, 3, "Chocopie", 212528, "can"},
		{8, 1, 2, "Alpenliebe Candy", 34313, "can"},
		{9, 5, 1, "Mint Candy", 316289, "pcs"},
		{10, 1, 2, "KitKat Chocolate", 139959, "bottle"},
		{11, 5, 1, "Nam Ngu Fish Sauce", 51792, "bottle"},
		{12, 2, 2, "Maggi Soy Sauce", 462539, "can"},
		{13, 5, 3, "Iodized Salt", 173302, "pcs"},
		{14, 1, 1, "Ajinomoto Seasoning", 443069, "pcs"},
		{15, 2, 2, "Tuong An Cooking Oil", 281354, "tube"},
		{16, 2, 1, "Rice Cooker", 405347, "box"},
		{17, 1, 3, "Electric Kettle", 113087, "bottle"},
		{18, 3, 2, "Electric Fan", 69968, "box"},
		{19, 4, 1, "Mini Gas Stove", 416845, "can"},
		{20, 3, 3, "Blender", 334564, "box"},
		{21, 1, 1, "Hazeline Face Wash", 188475, "can"},
		{22, 4, 1, "Pond's Face Cream", 413840, "box"},
		{23, 3, 3, "Sunsilk Shampoo", 158950, "tube"},
		{24, 4, 2, "Dove Body Wash", 336928, "bottle"},
		{25, 1, 1, "Romano Cologne", 352508, "pcs"},
		{26, 1, 1, "G7 Coffee", 201228, "can"},
		{27, 2, 1, "Lipton Tea", 38039, "pcs"},
		{28, 2, 3, "Vinamilk Milk", 252845, "bottle"},
		{29, 3, 1, "TH True Milk", 35278, "box"},
		{30, 3, 2, "Lavie Mineral Water", 331637, "can"},
		{31, 5, 3, "Tempo Tissues", 102525, "bottle"},
		{32, 4, 3, "Pulppy Toilet Paper", 495429, "bottle"},
		{33, 3, 2, "Lock&Lock Water Bottle", 354771, "pack"},
		{34, 2, 1, "Tupperware Container", 297415, "pcs"},
		{35, 1, 3, "Stainless Steel Knife", 47523, "box"},
		{36, 3, 1, "Colgate Toothbrush", 136417, "bottle"},
		{37, 2, 2, "P/S Toothpaste", 93713, "box"},
		{38, 2, 3, "Listerine Mouthwash", 223906, "pack"},
		{39, 1, 2, "Cotton Pads", 317819, "tube"},
		{40, 4, 1, "3M Face Mask", 464252, "pack"},
		{41, 3, 1, "Sandwich Bread", 279350, "pcs"},
		{42, 5, 2, "Hao Hao Instant Noodles", 9413, "box"},
		{43, 1, 2, "Omachi Noodles", 26616, "box"},
		{44, 5, 2, "Dried Vermicelli", 350911, "pack"},
		{45, 3, 1, "Instant Pho", 407779, "tube"},
		{46, 1, 1, "Sprite Soda", 230083, "box"},
		{47, 1, 3, "Bottled Milk Tea", 15130, "pcs"},
		{48, 3, 3, "Oishi Snack", 43415, "pcs"},
		{49, 4, 2, "Lay's Chips", 83536, "tube"},
		{50, 1, 2, "Haribo Gummies", 328680, "pcs"},
	}
}

// inventoryQuantities 与商品 ID 1..50 一一对应的初始库存
var inventoryQuantities = []int32{
	25, 169, 77, 169, 90, 105, 125, 37, 74, 149,
	69, 23, 46, 144, 134, 182, 99, 72, 128, 123,
	155, 78, 166, 117, 168, 197, 36, 145, 61, 139,
	47, 154, 194, 41, 154, 71, 49, 165, 73, 176,
	41, 34, 175, 59, 198, 106, 99, 55, 62, 33,
}
