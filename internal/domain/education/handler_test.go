package education

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

func setupHandler(repo Repository) *echo.Echo {
	e := echo.New()
	NewHandler(NewService(repo)).RegisterRoutes(e.Group("/api"))
	return e
}

func seedEducation(t *testing.T, repo *mockRepo) *PatientEducation {
	t.Helper()
	edu := &PatientEducation{
		EncounterID: uuid.New(),
		PatientID:   uuid.New(),
		DoctorID:    uuid.New(),
		Title:       "Understanding Your Diagnosis: Flu",
		Content:     "Rest and fluids.",
		Status:      StatusPending,
	}
	if err := repo.InsertEducation(context.Background(), edu); err != nil {
		t.Fatalf("seed education: %v", err)
	}
	return edu
}

func TestListEducationForDoctorEmpty(t *testing.T) {
	e := setupHandler(newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/patient-education/doctor/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var list EducationList
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if list.EducationList == nil || list.Total != 0 {
		t.Errorf("list = %+v, want empty array with total 0", list)
	}
}

func TestListEducationInvalidDoctorID(t *testing.T) {
	e := setupHandler(newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/patient-education/doctor/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSendEducationEndpoint(t *testing.T) {
	repo := newMockRepo()
	edu := seedEducation(t, repo)
	e := setupHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/patient-education/"+edu.ID.String()+"/send", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if repo.education[edu.ID].Status != StatusSent {
		t.Errorf("status = %q, want sent", repo.education[edu.ID].Status)
	}
}

func TestUpdateEducationNoFields(t *testing.T) {
	repo := newMockRepo()
	edu := seedEducation(t, repo)
	e := setupHandler(repo)

	req := httptest.NewRequest(http.MethodPut, "/api/patient-education/"+edu.ID.String(), strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for empty update", rec.Code)
	}
}

func TestGetSummaryByEncounterNotFound(t *testing.T) {
	e := setupHandler(newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/patient-education/summary/encounter/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
