package model

// User 用户模型（users 表）
type User struct {
	ID           int64   `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string  `json:"username" gorm:"column:username;unique"`
	Email        string  `json:"email" gorm:"column:email;unique"`
	PasswordHash string  `json:"-" gorm:"column:password_hash"`
	DisplayName  string  `json:"display_name" gorm:"column:display_name"`
	Bio          *string `json:"bio" gorm:"column:bio"`
	IsAdmin      bool    `json:"is_admin" gorm:"column:is_admin"`
	IsActive     bool    `json:"is_active" gorm:"column:is_active"`
}

// TableName 表名
func (User) TableName() string {
	return "users"
}

// UserUpdate 资料更新字段，nil 表示不修改
type UserUpdate struct {
	DisplayName *string
	Bio         *string
	Password    *string // 明文，由仓库负责哈希
	IsAdmin     *bool
	IsActive    *bool
}

// Empty 没有任何可更新字段
func (u UserUpdate) Empty() bool {
	return u.DisplayName == nil && u.Bio == nil && u.Password == nil && u.IsAdmin == nil && u.IsActive == nil
}
