package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"store_mgmt_v1_202510/internal/middleware"
	"store_mgmt_v1_202510/internal/model"
	"store_mgmt_v1_202510/internal/repository"
)

// ErrInvalidCredentials 用户名或密码错误
// 对外只给一个模糊错误，不区分是哪一项错
var ErrInvalidCredentials = errors.New("用户名或密码错误")

// AuthService 登录认证服务
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService 工厂方法
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// LoginResult 登录结果
type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        *model.User `json:"user"`
}

// Login 账号密码登录，通过后签发 Access Token
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 未分配角色的用户照常登录，角色位传 0
	var roleID int32
	if user.RoleID != nil {
		roleID = *user.RoleID
	}

	token, err := middleware.GenerateAccessToken(user.UserID, user.Username, roleID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, User: user}, nil
}
