package database

import (
	"errors"

	"gorm.io/gorm"
)

// IsConstraintViolation 唯一键或外键冲突
// 依赖 InitDB 打开的 TranslateError，驱动层错误已翻译成 gorm 标准错误
func IsConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated)
}
