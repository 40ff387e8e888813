// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/audit"
	"github.com/openfab/printhub/internal/auth"
	"github.com/openfab/printhub/internal/config"
	"github.com/openfab/printhub/internal/domain"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/repository"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	auditRepo      repository.AuditLogRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	auditLogger    audit.Logger
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	auditRepo repository.AuditLogRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	auditLogger audit.Logger,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		auditRepo:      auditRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		auditLogger:    auditLogger,
		config:         config,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required,min=8"`
}

type SignupOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup registers a new user and issues a token.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if !auth.CheckStrength(input.Password) {
		return nil, fmt.Errorf("%w: password must contain a letter and a digit", domain.ErrInvalidInput)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email, user.Admin)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login verifies credentials and issues a token. Suspended accounts may not
// log in. Every successful login is audit logged for last-login reporting.
func (s *UserService) Login(ctx context.Context, input LoginInput, req *http.Request) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	if user.Suspended {
		return nil, domain.ErrAccountSuspended
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email, user.Admin)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogUserLogin, user.ID, audit.Refs{}, nil, nil, req); err != nil {
		return nil, fmt.Errorf("logging login: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

// UserListing is a user row decorated with counts for the admin listing.
type UserListing struct {
	*model.User
	Name      string     `json:"name"`
	ShopCount int64      `json:"shop_count"`
	JobCount  int64      `json:"job_count"`
	LastLogin *time.Time `json:"last_login"`
}

type ListMeta struct {
	Total  int64 `json:"total"`
	Count  int   `json:"count"`
	Offset int   `json:"offset"`
}

// ListUsers returns a decorated, paginated user listing. Global admins only.
func (s *UserService) ListUsers(ctx context.Context, principal *model.User, offset, limit int) ([]UserListing, *ListMeta, error) {
	if !principal.Admin {
		return nil, nil, domain.AccessDenied("admin only")
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	users, total, err := s.repo.FindAllPaginated(ctx, offset, limit)
	if err != nil {
		return nil, nil, err
	}

	listings := make([]UserListing, 0, len(users))
	for _, u := range users {
		shopCount, err := s.repo.CountShops(ctx, u.ID)
		if err != nil {
			return nil, nil, err
		}
		jobCount, err := s.repo.CountJobs(ctx, u.ID)
		if err != nil {
			return nil, nil, err
		}
		lastLogin, err := s.auditRepo.LastOfTypeForUser(ctx, u.ID, model.LogUserLogin)
		if err != nil {
			return nil, nil, err
		}

		listings = append(listings, UserListing{
			User:      u,
			Name:      u.Name(),
			ShopCount: shopCount,
			JobCount:  jobCount,
			LastLogin: lastLogin,
		})
	}

	meta := &ListMeta{Total: total, Count: len(listings), Offset: offset}
	return listings, meta, nil
}

// SetSuspended flips a user's suspension flag. Global admins only.
func (s *UserService) SetSuspended(ctx context.Context, principal *model.User, userID uuid.UUID, suspended bool, req *http.Request) (*model.User, error) {
	if !principal.Admin {
		return nil, domain.AccessDenied("admin only")
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	before := *user
	user.Suspended = suspended
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.auditLogger.LogEvent(ctx, model.LogUserSuspended, principal.ID, audit.Refs{}, &before, user, req); err != nil {
		return nil, fmt.Errorf("logging suspension: %w", err)
	}

	return user, nil
}
