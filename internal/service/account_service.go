package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Forfeit-15/INF2003/internal/apperr"
	"github.com/Forfeit-15/INF2003/internal/model"
	"github.com/Forfeit-15/INF2003/internal/repository"
)

const msgIdentityTaken = "username or email already in use"

// AccountService 注册、登录与用户资料
type AccountService struct {
	users UserStore
}

// NewAccountService 创建账号服务
func NewAccountService(users UserStore) *AccountService {
	return &AccountService{users: users}
}

// RegisterInput 注册参数
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

// ProfileUpdate 用户自助修改资料，nil 表示请求中未出现
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	Password    *string
}

// Register 注册新用户，显示名缺省为用户名
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, apperr.Validation("username, email, and password are required")
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("account: check identity: %w", err)
	}
	if taken {
		return nil, apperr.Conflict(msgIdentityTaken)
	}

	displayName := strings.TrimSpace(in.DisplayName)
	if displayName == "" {
		displayName = username
	}

	user, err := s.users.Create(ctx, username, email, in.Password, displayName)
	if errors.Is(err, repository.ErrDuplicateUser) {
		return nil, apperr.Conflict(msgIdentityTaken)
	}
	if err != nil {
		return nil, fmt.Errorf("account: create user: %w", err)
	}
	return user, nil
}

// Login 用户名或邮箱登录；先校验密码再检查账号状态
func (s *AccountService) Login(ctx context.Context, identifier, password string) (*model.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, apperr.Validation("username/email and password are required")
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("account: find user: %w", err)
	}
	if user == nil || !s.users.CheckPassword(user, password) {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	if !user.IsActive {
		return nil, apperr.Forbidden("account is disabled")
	}
	return user, nil
}

// Profile 获取用户资料
func (s *AccountService) Profile(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account: find user %d: %w", id, err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

// UpdateProfile 修改自己的资料：空白显示名与空密码忽略，bio 出现即写入
func (s *AccountService) UpdateProfile(ctx context.Context, id int64, in ProfileUpdate) (*model.User, error) {
	var upd model.UserUpdate
	if in.DisplayName != nil {
		if name := strings.TrimSpace(*in.DisplayName); name != "" {
			upd.DisplayName = &name
		}
	}
	if in.Bio != nil {
		bio := strings.TrimSpace(*in.Bio)
		upd.Bio = &bio
	}
	if in.Password != nil && *in.Password != "" {
		upd.Password = in.Password
	}

	return s.apply(ctx, id, upd)
}

// ListUsers 管理员查看全部用户
func (s *AccountService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("account: list users: %w", err)
	}
	return users, nil
}

// AdminUpdate 管理员修改权限、状态或资料
func (s *AccountService) AdminUpdate(ctx context.Context, id int64, upd model.UserUpdate) (*model.User, error) {
	if upd.DisplayName != nil {
		name := strings.TrimSpace(*upd.DisplayName)
		upd.DisplayName = &name
	}
	if upd.Bio != nil {
		bio := strings.TrimSpace(*upd.Bio)
		upd.Bio = &bio
	}
	upd.Password = nil

	return s.apply(ctx, id, upd)
}

// DeleteUser 硬删除用户，关联的影评与片单保留
func (s *AccountService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("account: delete user %d: %w", id, err)
	}
	return nil
}

func (s *AccountService) apply(ctx context.Context, id int64, upd model.UserUpdate) (*model.User, error) {
	if upd.Empty() {
		return nil, apperr.Validation("nothing to update")
	}
	if err := s.users.Update(ctx, id, upd); err != nil {
		return nil, fmt.Errorf("account: update user %d: %w", id, err)
	}
	return s.Profile(ctx, id)
}
