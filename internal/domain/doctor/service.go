package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medicopilot/api/internal/platform/auth"
)

const minPasswordLen = 8

type Service struct {
	repo   Repository
	tokens *auth.TokenIssuer
}

func NewService(repo Repository, tokens *auth.TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// SignUp registers a doctor and signs them in.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Name == "" || in.Email == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if !strings.Contains(in.Email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	d := &Doctor{
		Name:           in.Name,
		Email:          in.Email,
		Specialization: in.Specialization,
		PasswordHash:   string(hash),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(d.ID.String(), d.Email, d.Name)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: token, Doctor: d}, nil
}

// SignIn validates credentials and issues a token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, in SignInInput) (*AuthResult, error) {
	d, err := s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(in.Email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(d.ID.String(), d.Email, d.Name)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: token, Doctor: d}, nil
}

func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (*Doctor, error) {
	if in.Name == nil && in.Specialization == nil {
		return nil, ErrNoUpdateFields
	}
	return s.repo.UpdateProfile(ctx, id, in)
}
