package patient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const defaultSearchLimit = 10

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/patients", h.RegisterPatient)
	g.GET("/search/patients", h.SearchPatients)
	g.GET("/search/patients/:id", h.GetPatient)
	g.PATCH("/search/patients/:id/allergies", h.UpdateAllergies)
}

type registerPatientRequest struct {
	Name        string  `json:"name"`
	Age         *int    `json:"age"`
	Gender      *string `json:"gender"`
	ContactInfo *string `json:"contact_info"`
	Allergies   *string `json:"allergies"`
	Email       *string `json:"email"`
	CreatedBy   string  `json:"created_by"`
}

func (h *Handler) RegisterPatient(c echo.Context) error {
	var req registerPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	createdBy, err := uuid.Parse(req.CreatedBy)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid created_by")
	}
	p := &Patient{
		Name:        req.Name,
		Age:         req.Age,
		Gender:      req.Gender,
		ContactInfo: req.ContactInfo,
		Allergies:   req.Allergies,
		Email:       req.Email,
		CreatedBy:   createdBy,
	}
	if err := h.svc.RegisterPatient(c.Request().Context(), p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) SearchPatients(c echo.Context) error {
	limit := defaultSearchLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	results, err := h.svc.Search(c.Request().Context(), c.QueryParam("query"), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if results == nil {
		results = []*SearchResult{}
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	p, err := h.svc.GetPatient(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateAllergies(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req UpdateAllergiesInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.UpdateAllergies(c.Request().Context(), id, req.Allergies); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Allergies updated successfully",
		"patient_id": id,
	})
}
