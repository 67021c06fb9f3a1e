package model

import "time"

// User 系统用户（收银员/管理员）
// 历史库的角色外键列名就是 role，不是 role_id，这里保持一致
type User struct {
	UserID    int32     `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username  string    `gorm:"column:username;size:50;uniqueIndex:username" json:"username"`
	Password  string    `gorm:"column:password;size:255" json:"-"`
	FullName  string    `gorm:"column:full_name;size:100" json:"full_name"`
	RoleID    *int32    `gorm:"column:role;index:role" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Role *Role `gorm:"belongsTo;foreignKey:RoleID;references:RoleID;constraint:OnDelete:SET NULL" json:"-"`
}

func (User) TableName() string { return "users" }
