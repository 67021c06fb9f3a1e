package database

import (
	"fmt"

	"gorm.io/gorm"
)

// WithForeignKeysDisabled 在关闭外键约束的前提下执行 action，
// 无论 action 成败，返回前都恢复约束。
//
// 仅供 seed 写入保留主键 0 的散客行使用，不要在业务代码里调用：
// 约束一旦泄漏到后续操作，所有外键错误都会被引擎默默放过。
// 依赖 InitDB 的单连接池，否则两条 PRAGMA 可能落在不同连接上。
func WithForeignKeysDisabled(db *gorm.DB, action func(tx *gorm.DB) error) (err error) {
	if err = db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		return fmt.Errorf("关闭外键约束失败: %w", err)
	}
	defer func() {
		if restoreErr := db.Exec("PRAGMA foreign_keys = ON").Error; restoreErr != nil && err == nil {
			err = fmt.Errorf("恢复外键约束失败: %w", restoreErr)
		}
	}()
	return action(db)
}
