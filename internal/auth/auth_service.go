package auth

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	autherrors "github.com/gabrieldacena/emprega-sapezal/internal/auth/errors"
	"github.com/gabrieldacena/emprega-sapezal/internal/user"
	usererrors "github.com/gabrieldacena/emprega-sapezal/internal/user/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultTokenTTL = 7 * 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	RegisterCandidate(ctx context.Context, req RegisterCandidateRequest) (SessionResponse, error)
	RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (SessionResponse, error)
	Login(ctx context.Context, req LoginRequest) (SessionResponse, error)
	GetMe(ctx context.Context, userID string) (user.UserResponse, error)
}

type service struct {
	users  user.Repository
	logger *zap.Logger
}

func NewService(users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, logger: l}
}

func (s *service) RegisterCandidate(ctx context.Context, req RegisterCandidateRequest) (SessionResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
	if err != nil {
		return SessionResponse{}, err
	}

	u := &user.User{
		Nome:             req.Nome,
		Email:            req.Email,
		SenhaHash:        string(hash),
		Role:             user.RoleCandidato,
		Ativo:            true,
		Cidade:           req.Cidade,
		Estado:           req.Estado,
		Telefone:         req.Telefone,
		CandidateProfile: &user.CandidateProfile{},
	}

	return s.createSession(ctx, u)
}

func (s *service) RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (SessionResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
	if err != nil {
		return SessionResponse{}, err
	}

	u := &user.User{
		Nome:      req.Nome,
		Email:     req.Email,
		SenhaHash: string(hash),
		Role:      user.RoleEmpresa,
		Ativo:     true,
		Cidade:    req.Cidade,
		Estado:    req.Estado,
		Telefone:  req.Telefone,
		CompanyProfile: &user.CompanyProfile{
			NomeEmpresa: req.NomeEmpresa,
			Cnpj:        req.Cnpj,
			AreaAtuacao: req.AreaAtuacao,
		},
	}

	return s.createSession(ctx, u)
}

func (s *service) createSession(ctx context.Context, u *user.User) (SessionResponse, error) {
	if err := s.users.Create(ctx, u); err != nil {
		if isDuplicateEmail(err) {
			return SessionResponse{}, autherrors.ErrDuplicateEmail
		}
		s.logger.Error("register persist failed", zap.String("email", u.Email), zap.Error(err))
		return SessionResponse{}, err
	}

	token, err := GenerateToken(*u)
	if err != nil {
		s.logger.Error("token generation failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return SessionResponse{}, autherrors.ErrTokenGeneration
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID.String()),
		zap.String("role", string(u.Role)),
	)

	return SessionResponse{User: user.MapToResponse(*u), Token: token}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return SessionResponse{}, err
	}

	if !u.Ativo {
		return SessionResponse{}, autherrors.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(req.Senha)); err != nil {
		return SessionResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := GenerateToken(*u)
	if err != nil {
		s.logger.Error("token generation failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return SessionResponse{}, autherrors.ErrTokenGeneration
	}

	s.logger.Info("user logged in", zap.String("user_id", u.ID.String()))

	return SessionResponse{User: user.MapToResponse(*u), Token: token}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (user.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return user.UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserResponse{}, usererrors.ErrUserNotFound
		}
		return user.UserResponse{}, err
	}

	return user.MapToResponse(*u), nil
}

// GenerateToken signs the session claims. The signing secret is a startup-time
// requirement; a missing secret is a configuration error, not a runtime path.
func GenerateToken(u user.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not configured")
	}

	claims := jwt.MapClaims{
		"id":    u.ID.String(),
		"email": u.Email,
		"role":  string(u.Role),
		"nome":  u.Nome,
		"exp":   time.Now().Add(tokenTTL()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func tokenTTL() time.Duration {
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultTokenTTL
}

func isDuplicateEmail(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_user_email"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
