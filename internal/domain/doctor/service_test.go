package doctor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/medicopilot/api/internal/platform/auth"
)

type mockRepo struct {
	doctors map[uuid.UUID]*Doctor
	byEmail map[string]*Doctor
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		doctors: make(map[uuid.UUID]*Doctor),
		byEmail: make(map[string]*Doctor),
	}
}

func (m *mockRepo) Create(_ context.Context, d *Doctor) error {
	if _, taken := m.byEmail[d.Email]; taken {
		return ErrEmailTaken
	}
	d.ID = uuid.New()
	m.doctors[d.ID] = d
	m.byEmail[d.Email] = d
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*Doctor, error) {
	d, ok := m.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *mockRepo) UpdateProfile(_ context.Context, id uuid.UUID, in UpdateProfileInput) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Specialization != nil {
		d.Specialization = in.Specialization
	}
	return d, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	tokens := auth.NewTokenIssuer("test-secret-that-is-long-enough!!", 60)
	return NewService(repo, tokens), repo
}

func TestSignUpAndSignIn(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.SignUp(context.Background(), SignUpInput{
		Name: "Dr. Roe", Email: "Roe@Example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("expected access token on signup")
	}
	if result.Doctor.Email != "roe@example.com" {
		t.Errorf("email not normalized: %q", result.Doctor.Email)
	}
	if result.Doctor.PasswordHash == "correct horse" {
		t.Fatal("password stored in plain text")
	}

	signin, err := svc.SignIn(context.Background(), SignInInput{
		Email: "roe@example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if signin.Doctor.ID != result.Doctor.ID {
		t.Error("signin must return the registered doctor")
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	in := SignUpInput{Name: "Dr. Roe", Email: "roe@example.com", Password: "long enough"}

	if _, err := svc.SignUp(context.Background(), in); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestSignUpWeakPassword(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.SignUp(context.Background(), SignUpInput{
		Name: "Dr. Roe", Email: "roe@example.com", Password: "short",
	})
	if err == nil || !strings.Contains(err.Error(), "at least") {
		t.Errorf("err = %v, want password length error", err)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.SignUp(context.Background(), SignUpInput{
		Name: "Dr. Roe", Email: "roe@example.com", Password: "long enough",
	}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	_, err := svc.SignIn(context.Background(), SignInInput{Email: "roe@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.SignIn(context.Background(), SignInInput{Email: "ghost@example.com", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	result, err := svc.SignUp(context.Background(), SignUpInput{
		Name: "Dr. Roe", Email: "roe@example.com", Password: "long enough",
	})
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if _, err := svc.UpdateProfile(context.Background(), result.Doctor.ID, UpdateProfileInput{}); !errors.Is(err, ErrNoUpdateFields) {
		t.Errorf("empty update: err = %v, want ErrNoUpdateFields", err)
	}

	spec := "Cardiology"
	d, err := svc.UpdateProfile(context.Background(), result.Doctor.ID, UpdateProfileInput{Specialization: &spec})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if d.Specialization == nil || *d.Specialization != "Cardiology" {
		t.Errorf("specialization = %v", d.Specialization)
	}
}
