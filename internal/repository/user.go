package repository

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Forfeit-15/INF2003/internal/model"
)

// ErrDuplicateUser 用户名或邮箱违反唯一约束
var ErrDuplicateUser = errors.New("duplicate username or email")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户，新账号默认启用
func (r *UserRepository) Create(ctx context.Context, username, email, password, displayName string) (*model.User, error) {
	// 密码哈希
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		IsActive:     true,
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	return user, nil
}

// ExistsByUsernameOrEmail 用户名或邮箱是否已被占用
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

// FindByIdentifier 根据用户名或邮箱查找用户
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		Order("user_id").
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByID 根据 ID 查找用户
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// CheckPassword 验证密码
func (r *UserRepository) CheckPassword(user *model.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}

// Update 按非 nil 字段更新用户，密码在此哈希
func (r *UserRepository) Update(ctx context.Context, id int64, upd model.UserUpdate) error {
	fields := map[string]any{}
	if upd.DisplayName != nil {
		fields["display_name"] = *upd.DisplayName
	}
	if upd.Bio != nil {
		fields["bio"] = *upd.Bio
	}
	if upd.IsAdmin != nil {
		fields["is_admin"] = *upd.IsAdmin
	}
	if upd.IsActive != nil {
		fields["is_active"] = *upd.IsActive
	}
	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		fields["password_hash"] = string(hash)
	}
	if len(fields) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", id).Updates(fields).Error
}

// ListAll 获取所有用户列表
func (r *UserRepository) ListAll(ctx context.Context) ([]*model.User, error) {
	users := []*model.User{}
	err := r.db.WithContext(ctx).Order("user_id ASC").Find(&users).Error
	return users, err
}

// Delete 删除用户，不存在时不报错
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
