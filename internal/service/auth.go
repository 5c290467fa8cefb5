package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/auth"
	"github.com/REBCDR07/marketconnect/internal/config"
	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/model"
	"github.com/REBCDR07/marketconnect/internal/repository"
)

type AuthService interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	AdminLogin(ctx context.Context, password string) (*dto.AuthResponse, error)
	// Me resolves the session back to the stored account.
	Me(ctx context.Context, sess *auth.Session) (*dto.UserView, error)
	// SeedAdmin ensures the administrator account exists. Called once at
	// startup; a no-op when the row is already there.
	SeedAdmin(ctx context.Context) error
}

type authServiceImpl struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	authCfg  config.Auth
	adminCfg config.Admin
	logger   *zap.Logger
}

func NewAuthService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	authCfg config.Auth,
	adminCfg config.Admin,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		db:       db,
		userRepo: userRepo,
		authCfg:  authCfg,
		adminCfg: adminCfg,
		logger:   logger,
	}
}

func (s *authServiceImpl) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperr.Duplicate("email %s is already registered", req.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Storage(err, "look up email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           "user_" + uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleBuyer,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
	}
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		return nil, apperr.Storage(err, "create user")
	}

	return s.respond(user)
}

func (s *authServiceImpl) SignIn(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Auth("invalid credentials")
	}
	if err != nil {
		return nil, apperr.Storage(err, "look up email")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Auth("invalid credentials")
	}

	return s.respond(user)
}

func (s *authServiceImpl) AdminLogin(ctx context.Context, password string) (*dto.AuthResponse, error) {
	resp, err := s.SignIn(ctx, s.adminCfg.Email, password)
	if err != nil {
		return nil, err
	}
	if resp.User.Role != model.RoleAdmin {
		return nil, apperr.Auth("invalid credentials")
	}

	return resp, nil
}

func (s *authServiceImpl) Me(ctx context.Context, sess *auth.Session) (*dto.UserView, error) {
	user, err := s.userRepo.FindByID(ctx, sess.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Auth("account no longer exists")
	}
	if err != nil {
		return nil, apperr.Storage(err, "load account")
	}

	return &dto.UserView{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *authServiceImpl) SeedAdmin(ctx context.Context) error {
	_, err := s.userRepo.FindByEmail(ctx, s.adminCfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Storage(err, "look up admin account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &model.User{
		ID:           "admin_user",
		Email:        s.adminCfg.Email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		FirstName:    s.adminCfg.FirstName,
		LastName:     s.adminCfg.LastName,
	}
	if err := s.userRepo.Create(ctx, s.db, admin); err != nil {
		return apperr.Storage(err, "seed admin account")
	}

	s.logger.Info("seeded admin account", zap.String("email", admin.Email))
	return nil
}

func (s *authServiceImpl) respond(user *model.User) (*dto.AuthResponse, error) {
	token, err := auth.Issue(s.authCfg.JWTSecret, s.authCfg.TokenTTL, user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.UserView{
			ID:        user.ID,
			Email:     user.Email,
			Role:      user.Role,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, nil
}
