package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// ==================== 表结构管理 ====================

// CreateSchemaIfAbsent 按传入顺序建表
// models 必须按外键依赖顺序排列（被引用表在前）；
// 已存在的表由 AutoMigrate 原地补齐，不会重建
func CreateSchemaIfAbsent(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		return nil
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("建表失败: %w", err)
	}
	return nil
}

// DropSchema 逆序删表（先删子表再删父表，外键开着也能删干净）
func DropSchema(db *gorm.DB, tables ...string) error {
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("删表 %s 失败: %w", tables[i], err)
		}
	}
	return nil
}

// EntityCount 返回指定表当前行数
func EntityCount(db *gorm.DB, table string) (int64, error) {
	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("统计表 %s 失败: %w", table, err)
	}
	return n, nil
}

// PrintStats 打印各表行数，初始化完成后用于确认
func PrintStats(db *gorm.DB, tables ...string) {
	for _, t := range tables {
		n, err := EntityCount(db, t)
		if err != nil {
			continue
		}
		log.Printf("[DB] %s: %d 行", t, n)
	}
}
