package model

// ==================== RBAC 角色/权限 ====================

// Role 角色
type Role struct {
	RoleID      int32  `gorm:"column:role_id;primaryKey" json:"role_id"`
	RoleName    string `gorm:"column:role_name;size:50;uniqueIndex:role_name" json:"role_name"`
	Description string `gorm:"column:description" json:"description"`
}

func (Role) TableName() string { return "roles" }

// Permission 权限点
// ActionKey 是代码侧引用的稳定标识，必须唯一
type Permission struct {
	PermissionID   int32  `gorm:"column:permission_id;primaryKey" json:"permission_id"`
	PermissionName string `gorm:"column:permission_name;size:100" json:"permission_name"`
	ActionKey      string `gorm:"column:action_key;size:50;uniqueIndex:action_key" json:"action_key"`
	Description    string `gorm:"column:description" json:"description"`
}

func (Permission) TableName() string { return "permissions" }

// RolePermission 角色-权限关联（复合主键）
// 删除任意一侧都级联清理关联行，关联不独占任何一侧
type RolePermission struct {
	RoleID       int32 `gorm:"column:role_id;primaryKey" json:"role_id"`
	PermissionID int32 `gorm:"column:permission_id;primaryKey;index:permission_id" json:"permission_id"`

	Role       *Role       `gorm:"belongsTo;foreignKey:RoleID;references:RoleID;constraint:OnDelete:CASCADE" json:"-"`
	Permission *Permission `gorm:"belongsTo;foreignKey:PermissionID;references:PermissionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RolePermission) TableName() string { return "role_permissions" }
