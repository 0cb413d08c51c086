package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "hr-records/internal/auth/errors"
	"hr-records/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultSessionTTL = 12 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	// VerifySession returns the user id and role carried by a valid, unrevoked session token.
	VerifySession(ctx context.Context, token string) (userID, role string, err error)
	Logout(ctx context.Context, token string) error
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
}

type Config struct {
	Secret string
	TTL    time.Duration
}

type service struct {
	repo     Repository
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, sessions SessionStore, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &service{
		repo:     repo,
		sessions: sessions,
		secret:   []byte(cfg.Secret),
		ttl:      ttl,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
		}
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("login attempt for inactive user", zap.String("user_id", user.ID.String()))
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := s.generateToken(*user, expiresAt)
	if err != nil {
		s.logger.Error("sign session token failed", zap.Error(err))
		return LoginResult{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()), zap.String("role", user.Role))

	return LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      mapToResponse(*user),
	}, nil
}

func (s *service) VerifySession(ctx context.Context, token string) (string, string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", "", autherrors.ErrInvalidSession
	}

	revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("session revocation lookup failed", zap.Error(err))
		return "", "", autherrors.ErrInvalidSession
	}
	if revoked {
		return "", "", autherrors.ErrSessionRevoked
	}

	return claims.UserID, claims.Role, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		// nothing left to revoke
		return nil
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("revoke session failed", zap.String("user_id", claims.UserID), zap.Error(err))
		return err
	}

	s.logger.Info("logout success", zap.String("user_id", claims.UserID))
	return nil
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if !rbac.IsValidRole(role) {
		return UserResponse{}, autherrors.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	user := &User{
		ID:       uuid.New(),
		Username: strings.TrimSpace(req.Username),
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return UserResponse{}, autherrors.ErrUsernameTaken
		}
		return UserResponse{}, err
	}

	return mapToResponse(*user), nil
}

func (s *service) generateToken(user User, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *service) parseToken(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, autherrors.ErrInvalidSession
	}
	if claims.UserID == "" || claims.ID == "" {
		return nil, autherrors.ErrInvalidSession
	}
	return claims, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
