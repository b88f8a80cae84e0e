package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient
	links    map[string]bool
	recent   []*SearchResult
	searched string
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		patients: make(map[uuid.UUID]*Patient),
		links:    make(map[string]bool),
	}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) UpdateAllergies(_ context.Context, id uuid.UUID, allergies *string) error {
	p, ok := m.patients[id]
	if !ok {
		return ErrNotFound
	}
	p.Allergies = allergies
	return nil
}

func (m *mockRepo) Search(_ context.Context, query string, limit int) ([]*SearchResult, error) {
	m.searched = query
	var out []*SearchResult
	for _, p := range m.patients {
		if len(out) >= limit {
			break
		}
		out = append(out, &SearchResult{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

func (m *mockRepo) Recent(_ context.Context, limit int) ([]*SearchResult, error) {
	if limit < len(m.recent) {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

func (m *mockRepo) LinkDoctor(_ context.Context, doctorID, patientID uuid.UUID) error {
	m.links[doctorID.String()+":"+patientID.String()] = true
	return nil
}

func (m *mockRepo) ListForDoctor(_ context.Context, _ uuid.UUID, _, _ int) ([]*Patient, error) {
	return nil, nil
}

func TestRegisterPatientLinksDoctor(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	doctorID := uuid.New()

	p := &Patient{Name: "Jane Roe", CreatedBy: doctorID}
	if err := svc.RegisterPatient(context.Background(), p); err != nil {
		t.Fatalf("RegisterPatient: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Fatal("expected patient ID to be assigned")
	}
	if !repo.links[doctorID.String()+":"+p.ID.String()] {
		t.Error("expected doctor link to be created")
	}
}

func TestRegisterPatientValidation(t *testing.T) {
	svc := NewService(newMockRepo())

	if err := svc.RegisterPatient(context.Background(), &Patient{CreatedBy: uuid.New()}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := svc.RegisterPatient(context.Background(), &Patient{Name: "X"}); err == nil {
		t.Error("expected error for missing created_by")
	}
	bad := 200
	if err := svc.RegisterPatient(context.Background(), &Patient{Name: "X", CreatedBy: uuid.New(), Age: &bad}); err == nil {
		t.Error("expected error for out-of-range age")
	}
}

func TestSearchBlankQueryReturnsRecent(t *testing.T) {
	repo := newMockRepo()
	repo.recent = []*SearchResult{{ID: uuid.New(), Name: "Recent One"}}
	svc := NewService(repo)

	results, err := svc.Search(context.Background(), "   ", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Recent One" {
		t.Errorf("expected recent patients for blank query, got %+v", results)
	}
	if repo.searched != "" {
		t.Error("blank query must not hit the search path")
	}
}

func TestSearchLowercasesQuery(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	if _, err := svc.Search(context.Background(), "  ALICE ", 10); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if repo.searched != "alice" {
		t.Errorf("searched = %q, want %q", repo.searched, "alice")
	}
}

func TestUpdateAllergies(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := &Patient{Name: "Jane Roe", CreatedBy: uuid.New()}
	if err := svc.RegisterPatient(context.Background(), p); err != nil {
		t.Fatalf("RegisterPatient: %v", err)
	}

	allergies := "penicillin"
	if err := svc.UpdateAllergies(context.Background(), p.ID, &allergies); err != nil {
		t.Fatalf("UpdateAllergies: %v", err)
	}
	got, _ := svc.GetPatient(context.Background(), p.ID)
	if got.Allergies == nil || *got.Allergies != "penicillin" {
		t.Errorf("allergies not persisted: %+v", got.Allergies)
	}

	if err := svc.UpdateAllergies(context.Background(), p.ID, nil); err != nil {
		t.Fatalf("UpdateAllergies clear: %v", err)
	}
	got, _ = svc.GetPatient(context.Background(), p.ID)
	if got.Allergies != nil {
		t.Error("expected allergies cleared with nil")
	}
}

func TestLinkDoctorUnknownPatient(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.LinkDoctor(context.Background(), uuid.New(), uuid.New()); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
