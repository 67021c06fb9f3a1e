package model

// ==================== 表目录 ====================

// TableDef 单张表的声明：存储表名 + 对应 Model
// 建表、删表、计数统一从这份目录取表，避免表名字面量散落各处
type TableDef struct {
	Name  string
	Model interface{}
}

// Tables 全部表，按外键依赖顺序排列
// 建表按此顺序执行，删表按逆序执行
var Tables = []TableDef{
	{Name: "categories", Model: &Category{}},
	{Name: "suppliers", Model: &Supplier{}},
	{Name: "roles", Model: &Role{}},
	{Name: "users", Model: &User{}},
	{Name: "permissions", Model: &Permission{}},
	{Name: "role_permissions", Model: &RolePermission{}},
	{Name: "promotions", Model: &Promotion{}},
	{Name: "customers", Model: &Customer{}},
	{Name: "products", Model: &Product{}},
	{Name: "inventory", Model: &Inventory{}},
	{Name: "orders", Model: &Order{}},
	{Name: "order_items", Model: &OrderItem{}},
	{Name: "payments", Model: &Payment{}},
}

// Models 依赖顺序的 Model 列表，喂给 AutoMigrate
func Models() []interface{} {
	out := make([]interface{}, 0, len(Tables))
	for _, t := range Tables {
		out = append(out, t.Model)
	}
	return out
}

// TableNames 依赖顺序的表名列表
func TableNames() []string {
	out := make([]string, 0, len(Tables))
	for _, t := range Tables {
		out = append(out, t.Name)
	}
	return out
}
