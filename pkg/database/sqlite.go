package database

import (
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 打开（必要时创建）文件型 SQLite 库
// path: 数据库文件路径，例如 store_management.db
func InitDB(path string) *gorm.DB {
	// SQLite 默认不开外键约束，必须在 DSN 里显式打开
	dsn := path + "?_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// 把驱动层的约束错误翻译成 gorm.ErrDuplicatedKey / ErrForeignKeyViolated
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("数据库连接失败 (Database Connection Failed): %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("获取底层 SQL DB 失败: %v", err)
	}

	// SQLite 只保留一个连接：既避开写锁竞争，
	// 也保证 PRAGMA（外键开关）作用于之后的所有语句
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("数据库连接成功: %s", path)
	return db
}
