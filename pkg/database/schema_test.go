package database

import (
	"testing"

	"gorm.io/gorm"
)

// 测试用父子表（仅用于测试）
type testParent struct {
	ID   int32  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;size:50"`
}

func (testParent) TableName() string { return "test_parents" }

type testChild struct {
	ID       int32 `gorm:"column:id;primaryKey"`
	ParentID int32 `gorm:"column:parent_id;not null;index"`

	Parent *testParent `gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (testChild) TableName() string { return "test_children" }

func TestCreateSchemaIfAbsent_Idempotent(t *testing.T) {
	db := setupGuardTestDB(t)

	if err := CreateSchemaIfAbsent(db, &testParent{}, &testChild{}); err != nil {
		t.Fatalf("第一次建表失败: %v", err)
	}
	// 已存在的表原地补齐，不报错也不丢数据
	if err := db.Create(&testParent{ID: 1, Name: "p1"}).Error; err != nil {
		t.Fatalf("插入失败: %v", err)
	}
	if err := CreateSchemaIfAbsent(db, &testParent{}, &testChild{}); err != nil {
		t.Fatalf("第二次建表失败: %v", err)
	}

	n, err := EntityCount(db, "test_parents")
	if err != nil {
		t.Fatalf("EntityCount() error = %v", err)
	}
	if n != 1 {
		t.Errorf("重复建表后行数 = %d, want 1", n)
	}
}

func TestEntityCount(t *testing.T) {
	db := setupGuardTestDB(t)

	if err := CreateSchemaIfAbsent(db, &testParent{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	n, err := EntityCount(db, "test_parents")
	if err != nil {
		t.Fatalf("EntityCount() error = %v", err)
	}
	if n != 0 {
		t.Errorf("空表行数 = %d, want 0", n)
	}

	rows := []testParent{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("插入失败: %v", err)
	}

	n, err = EntityCount(db, "test_parents")
	if err != nil {
		t.Fatalf("EntityCount() error = %v", err)
	}
	if n != 3 {
		t.Errorf("行数 = %d, want 3", n)
	}

	// 不存在的表返回错误
	if _, err := EntityCount(db, "no_such_table"); err == nil {
		t.Error("统计不存在的表应返回错误")
	}
}

func TestDropSchema_ReverseOrder(t *testing.T) {
	db := setupGuardTestDB(t)

	if err := CreateSchemaIfAbsent(db, &testParent{}, &testChild{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	if err := db.Create(&testParent{ID: 1, Name: "p"}).Error; err != nil {
		t.Fatalf("插入父行失败: %v", err)
	}
	if err := db.Create(&testChild{ID: 1, ParentID: 1}).Error; err != nil {
		t.Fatalf("插入子行失败: %v", err)
	}

	// 传入顺序是依赖顺序（父在前），DropSchema 逆序执行，先删子表
	if err := DropSchema(db, "test_parents", "test_children"); err != nil {
		t.Fatalf("DropSchema() error = %v", err)
	}

	for _, table := range []string{"test_parents", "test_children"} {
		if db.Migrator().HasTable(table) {
			t.Errorf("表 %s 应已删除", table)
		}
	}
}

func TestIsConstraintViolation(t *testing.T) {
	if IsConstraintViolation(nil) {
		t.Error("nil 不是约束错误")
	}
	if !IsConstraintViolation(gorm.ErrDuplicatedKey) {
		t.Error("ErrDuplicatedKey 应判定为约束错误")
	}
	if !IsConstraintViolation(gorm.ErrForeignKeyViolated) {
		t.Error("ErrForeignKeyViolated 应判定为约束错误")
	}
	if IsConstraintViolation(gorm.ErrRecordNotFound) {
		t.Error("ErrRecordNotFound 不是约束错误")
	}
}
