package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func setupHandler(repo Repository) (*echo.Echo, *Handler) {
	e := echo.New()
	h := NewHandler(NewService(repo))
	h.RegisterRoutes(e.Group("/api"))
	return e, h
}

func TestSearchPatientsEmptyRendersArray(t *testing.T) {
	e, _ := setupHandler(newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/search/patients?query=nobody", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want empty array", got)
	}
}

func TestGetPatientNotFound(t *testing.T) {
	e, _ := setupHandler(newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/search/patients/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetPatientInvalidID(t *testing.T) {
	e, _ := setupHandler(newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/search/patients/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateAllergiesEndpoint(t *testing.T) {
	repo := newMockRepo()
	p := &Patient{Name: "Jane Roe", CreatedBy: uuid.New()}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	e, _ := setupHandler(repo)

	body := `{"allergies":"sulfa drugs"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/search/patients/"+p.ID.String()+"/allergies", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["success"] != true {
		t.Errorf("success = %v, want true", resp["success"])
	}
	if repo.patients[p.ID].Allergies == nil || *repo.patients[p.ID].Allergies != "sulfa drugs" {
		t.Error("allergies not updated through handler")
	}
}

func TestRegisterPatientEndpoint(t *testing.T) {
	repo := newMockRepo()
	e, _ := setupHandler(repo)

	body := `{"name":"John Smith","age":42,"created_by":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if len(repo.patients) != 1 {
		t.Errorf("patients stored = %d, want 1", len(repo.patients))
	}
}
