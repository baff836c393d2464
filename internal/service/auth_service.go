package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"peerskill/api/internal/config"
	"peerskill/api/internal/ids"
	"peerskill/api/internal/models"
	"peerskill/api/internal/repository"
	"peerskill/api/internal/security"
)

type AuthService struct {
	users UserDirectory
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users UserDirectory, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

type SignupInput struct {
	Name      string
	Email     string
	Contact   string
	Password  string
	Teach     []string
	Learn     []string
	StudyYear string
	Branch    string
	AvatarURL string
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (models.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return models.User{}, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	// The configured admin identity is not a directory account and cannot
	// be claimed by signup.
	if s.cfg.AdminEnabled() && strings.EqualFold(input.Email, s.cfg.Security.AdminEmail) {
		return models.User{}, repository.ErrEmailTaken
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return models.User{}, repository.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return models.User{}, err
	}

	passwordHash, err := security.HashPassword(input.Password, s.cfg.Security.BcryptCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        input.Email,
		Name:         input.Name,
		Contact:      input.Contact,
		PasswordHash: passwordHash,
		Teach:        input.Teach,
		Learn:        input.Learn,
		StudyYear:    input.StudyYear,
		Branch:       input.Branch,
		Role:         models.UserRoleUser,
	}
	if input.AvatarURL != "" {
		user.AvatarURL = &input.AvatarURL
	}

	if err := s.users.Create(ctx, user); err != nil {
		return models.User{}, err
	}

	s.log.Info().Str("email", user.Email).Msg("user signed up")
	return user, nil
}

type LoginResult struct {
	Name  string
	Email string
	Role  models.UserRole
	Token string
}

// Login resolves the caller. The configured admin pair is checked before any
// store lookup; regular accounts match their email case-insensitively.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	if s.cfg.AdminEnabled() && strings.EqualFold(email, s.cfg.Security.AdminEmail) {
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Security.AdminPassword)) != 1 {
			return LoginResult{}, ErrInvalidCredentials
		}
		return s.issue(s.cfg.Security.AdminEmail, "Administrator", models.UserRoleAdmin)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	return s.issue(user.Email, user.Name, user.Role)
}

func (s *AuthService) issue(email, name string, role models.UserRole) (LoginResult, error) {
	token, err := security.GenerateToken(s.cfg.Security.JWTSecret, email, string(role), s.cfg.Security.JWTTTL)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{
		Name:  name,
		Email: email,
		Role:  role,
		Token: token,
	}, nil
}
