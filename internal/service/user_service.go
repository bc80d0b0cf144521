package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/dto"
	"github.com/noteful-labs/noteful-service/pkg/app"
	"github.com/noteful-labs/noteful-service/pkg/code"
	"github.com/noteful-labs/noteful-service/pkg/timex"
	"github.com/noteful-labs/noteful-service/pkg/util"

	"gorm.io/gorm"
)

// UserService 用户业务服务接口
type UserService interface {
	Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error)
	Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.AuthTokenDTO, error)
	Refresh(ctx context.Context, user *app.UserEntity) (*dto.AuthTokenDTO, error)
}

type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	config       UserServiceConfig
}

func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, cfg UserServiceConfig) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		config:       cfg,
	}
}

// Register 用户注册
// 校验顺序：必填 -> 类型 -> 首尾空白 -> 长度 -> 用户名唯一。
func (s *userService) Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error) {
	if !s.config.RegisterIsEnable {
		return nil, code.ErrorRegisterDisabled
	}

	fields := map[string]any{
		"fullname": params.Fullname,
		"username": params.Username,
		"password": params.Password,
	}

	for _, name := range []string{"username", "password"} {
		if fields[name] == nil {
			return nil, code.ErrorMissingField.WithArgs(name)
		}
	}

	strs := make(map[string]string, len(fields))
	for _, name := range []string{"fullname", "username", "password"} {
		v := fields[name]
		if v == nil {
			continue
		}
		str, ok := v.(string)
		if !ok {
			return nil, code.ErrorFieldNotString.WithArgs(name)
		}
		strs[name] = str
	}

	for _, name := range []string{"username", "password"} {
		if !util.IsTrimmed(strs[name]) {
			return nil, code.ErrorFieldNotTrimmed.WithArgs(name)
		}
	}

	if utf8.RuneCountInString(strs["username"]) < UsernameMinLength {
		return nil, code.ErrorFieldTooShort.WithArgs("username", UsernameMinLength)
	}
	if utf8.RuneCountInString(strs["password"]) < PasswordMinLength {
		return nil, code.ErrorFieldTooShort.WithArgs("password", PasswordMinLength)
	}
	if utf8.RuneCountInString(strs["password"]) > PasswordMaxLength {
		return nil, code.ErrorFieldTooLong.WithArgs("password", PasswordMaxLength)
	}

	hash, err := util.GeneratePasswordHash(strs["password"])
	if err != nil {
		return nil, code.ErrorServerInternal.WithDetails(err.Error())
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Fullname: strings.TrimSpace(strs["fullname"]),
		Username: strs["username"],
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorUsernameExists
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	return s.domainToDTO(user), nil
}

// Login 用户登录，成功后签发 JWT
func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest) (*dto.AuthTokenDTO, error) {
	if params.Username == "" || params.Password == "" {
		return nil, code.ErrorNoCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorInvalidCredentials.WithLocation("username")
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if !util.CheckPasswordHash(user.Password, params.Password) {
		return nil, code.ErrorInvalidCredentials.WithLocation("password")
	}

	return s.issueToken(user.UID, user.Username, user.Fullname)
}

// Refresh 用现有有效凭证换发新 JWT
func (s *userService) Refresh(ctx context.Context, user *app.UserEntity) (*dto.AuthTokenDTO, error) {
	if user == nil {
		return nil, code.ErrorInvalidJWT
	}
	return s.issueToken(user.UID, user.Username, user.Fullname)
}

func (s *userService) issueToken(uid int64, username, fullname string) (*dto.AuthTokenDTO, error) {
	token, err := s.tokenManager.Generate(app.UserEntity{
		UID:      uid,
		Username: username,
		Fullname: fullname,
	})
	if err != nil {
		return nil, code.ErrorTokenGenerate.WithDetails(err.Error())
	}
	return &dto.AuthTokenDTO{AuthToken: token}, nil
}

func (s *userService) domainToDTO(u *domain.User) *dto.UserDTO {
	if u == nil {
		return nil
	}
	return &dto.UserDTO{
		ID:        u.UID,
		Fullname:  u.Fullname,
		Username:  u.Username,
		CreatedAt: timex.Time(u.CreatedAt),
		UpdatedAt: timex.Time(u.UpdatedAt),
	}
}
