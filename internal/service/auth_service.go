package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"classboard/internal/config"
	"classboard/internal/model"
	"classboard/internal/repository"
)

// AuthService is the sign-up / sign-in half of the mutation engine. Passwords
// are stored and compared as plain opaque values; see the model.User doc.
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.SessionResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.SessionResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*model.User, error)
}

type authService struct {
	users   repository.UserRepository
	session repository.SessionRepository
	cfg     *config.Config
	logger  *slog.Logger
}

func NewAuthService(users repository.UserRepository, session repository.SessionRepository, cfg *config.Config, logger *slog.Logger) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{users: users, session: session, cfg: cfg, logger: logger}
}

func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.SessionResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, model.ErrInvalidInput
	}

	_, err := s.users.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, model.ErrDuplicateUsername
	}
	if !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Error checking username availability", "error", err, "username", req.Username)
		return nil, err
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Error creating user", "error", err, "username", req.Username)
		return nil, err
	}

	// Sign-up doubles as sign-in, matching the dashboard flow.
	return s.openSession(ctx, user)
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.SessionResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error("Error looking up user", "error", err, "username", req.Username)
		return nil, err
	}
	if user.Password != req.Password {
		return nil, model.ErrInvalidCredentials
	}
	return s.openSession(ctx, user)
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		s.logger.Error("Error clearing session", "error", err)
		return err
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context) (*model.User, error) {
	return s.session.Get(ctx)
}

func (s *authService) openSession(ctx context.Context, user *model.User) (*model.SessionResponse, error) {
	if err := s.session.Put(ctx, user); err != nil {
		s.logger.Error("Error persisting session user", "error", err, "user_id", user.ID)
		return nil, err
	}
	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("Error signing session token", "error", err, "user_id", user.ID)
		return nil, model.ErrInternalServer
	}
	return &model.SessionResponse{Token: token, User: model.NewUserResponse(user)}, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    config.AppName,
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.Session.TTLMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Session.Secret))
}
