package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"store_mgmt_v1_202510/internal/model"
	"store_mgmt_v1_202510/pkg/database"
)

// ==================== 错误定义 ====================

// ErrStoreUnreachable 连通性探测失败
// 探测发生在任何一步之前，返回这个错误时没有任何表被写过
var ErrStoreUnreachable = errors.New("数据库不可达")

// StepError 某一步灌入失败
// 之前已提交的步骤保持提交状态，重新调用 Run 即可续跑剩余步骤
type StepError struct {
	Table string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("表 %s 的灌入步骤失败: %v", e.Table, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Result 灌入完成后各基础表的行数
type Result struct {
	Categories      int64
	Suppliers       int64
	Roles           int64
	Users           int64
	Permissions     int64
	RolePermissions int64
	Promotions      int64
	Customers       int64
	Products        int64
	Inventories     int64
}

// ==================== 编排 ====================

// seedMu 串行化整个灌入过程：启动灌入和管理端 reseed 不允许并发，
// 否则双方的空表检查会同时通过，插出重复行或撞唯一键
var seedMu sync.Mutex

// step 一步只负责一张表，能否执行由空表检查决定
type step struct {
	table string
	fn    func(tx *gorm.DB) error
}

func steps() []step {
	// 顺序不能动：后面步骤的行带着指向前面步骤的外键
	// （商品引用分类/供应商，库存引用商品，用户引用角色……）
	return []step{
		{"categories", seedCategories},
		{"suppliers", seedSuppliers},
		{"roles", seedRoles},
		{"users", seedUsers},
		{"permissions", seedPermissions},
		{"role_permissions", seedRolePermissions},
		{"promotions", seedPromotions},
		{"customers", seedCustomers},
		{"products", seedProducts},
		{"inventory", seedInventory},
	}
}

// Run 按依赖顺序灌入基础数据
//
// 每一步先查表行数：非空整体跳过，不逐行比对内容；空表才插入。
// 每一步独立提交，没有跨步骤回滚——第 k 步失败时 1..k-1 步保持提交，
// 错误记日志后原样抛给调用方；修复后重新调用 Run 就是正确的恢复路径。
// 对已灌满的库，Run 是纯只读的 no-op。
func Run(ctx context.Context, db *gorm.DB) (*Result, error) {
	seedMu.Lock()
	defer seedMu.Unlock()

	// 连通性探测：失败则整体放弃，一张表都不碰
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("灌入中止: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnreachable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Printf("灌入中止，数据库探测失败: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnreachable, err)
	}

	log.Println("开始灌入基础数据...")
	for _, s := range steps() {
		n, err := database.EntityCount(db.WithContext(ctx), s.table)
		if err != nil {
			log.Printf("灌入失败，无法统计表 %s: %v", s.table, err)
			return nil, &StepError{Table: s.table, Err: err}
		}
		if n > 0 {
			log.Printf("  表 %s 已有 %d 行，跳过", s.table, n)
			continue
		}
		if err := s.fn(db.WithContext(ctx)); err != nil {
			log.Printf("灌入表 %s 失败: %v", s.table, err)
			return nil, &StepError{Table: s.table, Err: err}
		}
		log.Printf("  表 %s 灌入完成", s.table)
	}

	res, err := Collect(db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	log.Printf("基础数据灌入完成，商品 %d 条", res.Products)
	return res, nil
}

// Collect 汇总各基础表行数
func Collect(db *gorm.DB) (*Result, error) {
	res := &Result{}
	for _, c := range []struct {
		table string
		dst   *int64
	}{
		{"categories", &res.Categories},
		{"suppliers", &res.Suppliers},
		{"roles", &res.Roles},
		{"users", &res.Users},
		{"permissions", &res.Permissions},
		{"role_permissions", &res.RolePermissions},
		{"promotions", &res.Promotions},
		{"customers", &res.Customers},
		{"products", &res.Products},
		{"inventory", &res.Inventories},
	} {
		n, err := database.EntityCount(db, c.table)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return res, nil
}

// ==================== 各步骤 ====================

func seedCategories(tx *gorm.DB) error {
	rows := categoryData()
	return tx.Create(&rows).Error
}

func seedSuppliers(tx *gorm.DB) error {
	rows := supplierData()
	return tx.Create(&rows).Error
}

func seedRoles(tx *gorm.DB) error {
	rows := roleData()
	return tx.Create(&rows).Error
}

func seedUsers(tx *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("生成密码散列失败: %w", err)
	}
	rows := userData(string(hashed))
	return tx.Create(&rows).Error
}

func seedPermissions(tx *gorm.DB) error {
	rows := permissionData()
	return tx.Create(&rows).Error
}

func seedRolePermissions(tx *gorm.DB) error {
	rows := rolePermissionData()
	return tx.Create(&rows).Error
}

func seedPromotions(tx *gorm.DB) error {
	rows := promotionData()
	return tx.Create(&rows).Error
}

// seedCustomers 唯一一步不走 ORM 的灌入
//
// 散客保留主键 0 插不过 GORM：零值主键会被从 INSERT 里剔除，
// 交给引擎自增。所以 21 行全部走原生 SQL（绕开实体跟踪），
// 并且只在这一步关闭外键约束，结束立即恢复，再进入 products 步骤。
func seedCustomers(tx *gorm.DB) error {
	return database.WithForeignKeysDisabled(tx, func(tx *gorm.DB) error {
		if err := tx.Exec(
			`INSERT INTO customers (customer_id, name, phone, email, address, created_at)
			 VALUES (0, ?, NULL, NULL, NULL, ?)`,
			walkInCustomerName, seedTime,
		).Error; err != nil {
			return fmt.Errorf("插入散客保留行失败: %w", err)
		}

		for i := 1; i <= 20; i++ {
			if err := tx.Exec(
				`INSERT INTO customers (customer_id, name, phone, email, address, created_at)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				i,
				fmt.Sprintf("Customer %d", i),
				fmt.Sprintf("090900000%02d", i),
				fmt.Sprintf("kh%d@mail.com", i),
				fmt.Sprintf("Address %d", i),
				seedTime,
			).Error; err != nil {
				return fmt.Errorf("插入客户 %d 失败: %w", i, err)
			}
		}
		return nil
	})
}

func seedProducts(tx *gorm.DB) error {
	src := productRows()
	rows := make([]model.Product, 0, len(src))
	for _, p := range src {
		suppID, catID := p.suppID, p.catID
		rows = append(rows, model.Product{
			ProductID:   p.id,
			SupplierID:  &suppID,
			CategoryID:  &catID,
			ProductName: p.name,
			Barcode:     fmt.Sprintf("8900000000%03d", p.id),
			Price:       p.price,
			Unit:        p.unit,
			CreatedAt:   seedTime,
		})
	}
	return tx.Create(&rows).Error
}

func seedInventory(tx *gorm.DB) error {
	rows := make([]model.Inventory, 0, len(inventoryQuantities))
	for i, q := range inventoryQuantities {
		rows = append(rows, model.Inventory{
			InventoryID: int32(i + 1),
			ProductID:   int32(i + 1),
			Quantity:    q,
			UpdatedAt:   seedTime,
		})
	}
	return tx.Create(&rows).Error
}
