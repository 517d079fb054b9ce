package service

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/model"
	"Wildsalt/internal/pkg/consts"
	"Wildsalt/internal/pkg/redis"
	"Wildsalt/internal/pkg/security"
	"Wildsalt/internal/repository"
	"context"
	"fmt"
	log "log/slog"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResult, error)
	Verify(ctx context.Context, userID string) (*dto.UserDTO, error)
	Logout(ctx context.Context, token string) error
	UpdateCredentials(ctx context.Context, userID string, d *dto.UpdateAdminDTO) (*dto.UserDTO, error)
}

func toUserDTO(user *model.User) *dto.UserDTO {
	var userDTO dto.UserDTO
	_ = copier.Copy(&userDTO, user)
	userDTO.ID = user.ID.Hex()
	return &userDTO
}

type authServiceImpl struct {
	userRepo repository.UserRepo
	verifier security.CredentialVerifier
	hasher   security.PasswordHasher
}

func NewAuthService(userRepo repository.UserRepo, verifier security.CredentialVerifier, hasher security.PasswordHasher) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		verifier: verifier,
		hasher:   hasher,
	}
}

// Login 管理员登录。用户不存在和密码错误返回同一个错误，不泄露账号是否存在。
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*dto.LoginResult, error) {
	user, err := s.userRepo.FindAdminByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !s.verifier.Verify(password, user.PasswordHash, user.Salt) {
		return nil, ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID.Hex(), user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("生成令牌失败: %w", err)
	}

	if err = s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		log.WarnContext(ctx, "更新最近登录时间失败", "username", username, "error", err)
	}

	return &dto.LoginResult{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

func (s *authServiceImpl) Verify(ctx context.Context, userID string) (*dto.UserDTO, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

// Logout 把令牌签名写入拒绝名单，剩余有效期内拒绝复用
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrUnauthorized
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, "1", security.JWTExpirationTime)
}

func (s *authServiceImpl) UpdateCredentials(ctx context.Context, userID string, d *dto.UpdateAdminDTO) (*dto.UserDTO, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !s.verifier.Verify(d.CurrentPassword, user.PasswordHash, user.Salt) {
		return nil, ErrInvalidCredentials
	}

	update := bson.M{}
	if d.NewUsername != "" && d.NewUsername != user.Username {
		existing, err := s.userRepo.FindByUsername(ctx, d.NewUsername)
		if err != nil {
			return nil, fmt.Errorf("查询用户名失败: %w", err)
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
		update["username"] = d.NewUsername
		user.Username = d.NewUsername
	}
	if d.NewEmail != "" {
		update["email"] = d.NewEmail
		user.Email = d.NewEmail
	}
	if d.NewPassword != "" {
		hash, salt, err := s.hasher.Hash(d.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("生成密码哈希失败: %w", err)
		}
		update["passwordHash"] = hash
		update["salt"] = salt
	}

	if len(update) > 0 {
		if err = s.userRepo.UpdateCredentials(ctx, oid, update); err != nil {
			return nil, fmt.Errorf("更新账号资料失败: %w", err)
		}
	}

	return toUserDTO(user), nil
}
