package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

// AuthService implements registration, login and user administration.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	policy domain.Policy
	tokens ports.TokenIssuer
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	policy domain.Policy,
	tokens ports.TokenIssuer,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, roles: roles, policy: policy, tokens: tokens, audit: audit, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	user, err := s.createUser(ctx, in)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Role, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("user registered")
	return token, user, nil
}

func (s *AuthService) RegisterByAdmin(ctx context.Context, actor ports.Claims, in ports.RegisterInput, meta ports.RequestMeta) (*domain.User, error) {
	user, err := s.createUser(ctx, in)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.LogEntry{
		UserID:    actor.UserID,
		Username:  actor.Username,
		Role:      actor.Role,
		Action:    domain.ActionUserRegistered,
		Details:   fmt.Sprintf("Created new user: %s (%s)", user.Username, user.Role),
		Timestamp: time.Now().UTC(),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Str("created_by", actor.Username).Msg("user registered by admin")
	return user, nil
}

// createUser validates the payload against the live registry and persists
// the account with a hashed password.
func (s *AuthService) createUser(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	registry, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	if !contains(s.policy.AssignableSlugs(registry), in.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}
	return s.users.Create(ctx, user)
}

// Login authenticates by exact username match. An unknown username and a
// wrong password both surface as ErrInvalidCredentials so the API cannot be
// used for username enumeration.
func (s *AuthService) Login(ctx context.Context, username, password string, meta ports.RequestMeta) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.audit.Record(domain.LogEntry{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Action:    domain.ActionLogin,
		Details:   "User logged in successfully",
		Timestamp: time.Now().UTC(),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, actor ports.Claims, meta ports.RequestMeta) {
	s.audit.Record(domain.LogEntry{
		UserID:    actor.UserID,
		Username:  actor.Username,
		Role:      actor.Role,
		Action:    domain.ActionLogout,
		Details:   "User logged out",
		Timestamp: time.Now().UTC(),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
