package auth

import (
	"context"
	"strings"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/shared/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (string, string, AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	acc, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("login unknown email", zap.String("email", email))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !acc.IsActive || acc.PasswordHash == "" {
		s.logger.Warn("login refused for inactive account", zap.String("employee_id", acc.ID.String()))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("employee_id", acc.ID.String()))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	access, refresh, err := s.issuePair(acc)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("employee_id", acc.ID.String()), zap.String("role", acc.Role))
	return access, refresh, toResponse(acc), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	sub, err := token.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(sub.UserID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	acc, err := s.repo.GetByID(ctx, userID)
	if err != nil || !acc.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	access, refresh, err := s.issuePair(acc)
	if err != nil {
		s.logger.Error("refresh token generation failed", zap.Error(err))
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return access, refresh, toResponse(acc), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	acc, err := s.repo.GetByID(ctx, id)
	if err != nil || !acc.IsActive {
		return nil, autherrors.ErrUserNotFound
	}

	resp := toResponse(acc)
	return &resp, nil
}

func (s *service) issuePair(acc *Account) (string, string, error) {
	// Employees are the only principals, so user_id and employee_id carry the same value.
	sub := token.Subject{UserID: acc.ID.String(), EmployeeID: acc.ID.String(), Role: acc.Role}

	access, err := token.Generate(sub, token.TypeAccess, token.AccessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := token.Generate(sub, token.TypeRefresh, token.RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func toResponse(acc *Account) AuthResponse {
	return AuthResponse{
		ID:            acc.ID.String(),
		EmployeeID:    acc.ID.String(),
		Email:         acc.Email,
		Name:          strings.TrimSpace(acc.FirstName + " " + acc.LastName),
		Role:          acc.Role,
		IsSystemAdmin: acc.IsSystemAdmin,
	}
}
