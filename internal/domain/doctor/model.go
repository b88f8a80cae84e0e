package doctor

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned for lookups of unknown doctors.
	ErrNotFound = errors.New("doctor not found")
	// ErrEmailTaken is returned when signup reuses a registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for failed sign-ins. The message is
	// deliberately the same for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoUpdateFields is returned when a profile update carries nothing.
	ErrNoUpdateFields = errors.New("no fields to update")
)

// Doctor is a practitioner account. PasswordHash never leaves the API.
type Doctor struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Specialization *string   `db:"specialization" json:"specialization,omitempty"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// SignUpInput is the registration payload.
type SignUpInput struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	Specialization *string `json:"specialization,omitempty"`
}

// SignInInput is the login payload.
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult pairs a signed token with the doctor it belongs to.
type AuthResult struct {
	AccessToken string  `json:"access_token"`
	Doctor      *Doctor `json:"doctor"`
}

// UpdateProfileInput carries a partial profile update.
type UpdateProfileInput struct {
	Name           *string `json:"name,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
}
