package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"
	"cinema-api/internal/dto/request"
	"cinema-api/internal/dto/response"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Refresh(ctx context.Context, req *request.RefreshRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, req *request.LogoutRequest) error
	LogoutAll(ctx context.Context, userID uuid.UUID) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates a regular user account. Staff accounts are provisioned
// out of band; registration never grants the staff role.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now().UTC(),
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return s.issueTokens(ctx, user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.issueTokens(ctx, user)
}

// Refresh rotates the refresh token: the presented token is revoked and a
// fresh pair is issued, so a leaked token works at most once.
func (s *authService) Refresh(ctx context.Context, req *request.RefreshRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	hash := utils.HashRefreshToken(req.RefreshToken)
	session, err := s.repo.AuthSession.FindValidByTokenHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.repo.AuthSession.Revoke(ctx, hash); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, req *request.LogoutRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return NewValidationError(errs)
	}

	return s.repo.AuthSession.Revoke(ctx, utils.HashRefreshToken(req.RefreshToken))
}

// LogoutAll revokes every active session of the user, so any stolen
// refresh token stops working immediately.
func (s *authService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.AuthSession.RevokeAllForUser(ctx, userID); err != nil {
		return err
	}

	s.log.Info("All sessions revoked", zap.String("user_id", userID.String()))
	return nil
}

func (s *authService) issueTokens(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	access, accessExp, err := utils.NewAccessToken(
		s.config.JWT.Secret, user.ID, string(user.Role), s.config.JWT.AccessTTLMin)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, refreshExp, err := utils.NewRefreshToken(s.config.JWT.RefreshTTLDays)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	session := &entity.AuthSession{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now().UTC(),
		},
		UserID:    user.ID,
		TokenHash: utils.HashRefreshToken(refresh),
		ExpiresAt: refreshExp,
	}

	if err := s.repo.AuthSession.Create(ctx, session); err != nil {
		return nil, err
	}

	return &response.AuthResponse{
		AccessToken:     access,
		AccessExpiresAt: accessExp,
		RefreshToken:    refresh,
		User:            response.UserToResponse(user),
	}, nil
}
