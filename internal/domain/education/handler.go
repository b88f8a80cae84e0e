package education

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medicopilot/api/pkg/pagination"
)

const (
	defaultPatientSummaryLimit = 50
	maxPatientSummaryLimit     = 100
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	edu := g.Group("/patient-education")
	edu.GET("/doctor/:doctorID", h.ListForDoctor)
	edu.GET("/encounter/:encounterID", h.GetByEncounter)
	edu.GET("/summary/doctor/:doctorID", h.ListSummariesForDoctor)
	edu.GET("/summary/encounter/:encounterID", h.GetSummaryByEncounter)
	edu.GET("/summary/patient/:patientID", h.ListSummariesForPatient)
	edu.GET("/:id", h.GetByID)
	edu.PUT("/:id", h.Update)
	edu.POST("/:id/send", h.Send)
}

func (h *Handler) ListForDoctor(c echo.Context) error {
	doctorID, err := uuid.Parse(c.Param("doctorID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid doctor ID format")
	}
	p := pagination.FromContext(c)
	list, err := h.svc.ListEducationForDoctor(c.Request().Context(), doctorID, c.QueryParam("status"), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetByEncounter(c echo.Context) error {
	encounterID, err := uuid.Parse(c.Param("encounterID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid encounter ID format")
	}
	edu, err := h.svc.GetEducationByEncounter(c.Request().Context(), encounterID)
	if err != nil {
		if errors.Is(err, ErrEducationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Patient education not found for this encounter")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, edu)
}

func (h *Handler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid education ID format")
	}
	edu, err := h.svc.GetEducation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrEducationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Patient education not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, edu)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid education ID format")
	}
	var in UpdateEducationInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.UpdateEducation(c.Request().Context(), id, in); err != nil {
		switch {
		case errors.Is(err, ErrNoUpdateFields):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrEducationNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Patient education not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Patient education updated successfully",
	})
}

func (h *Handler) Send(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid education ID format")
	}
	if err := h.svc.SendEducation(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrEducationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Patient education not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Patient education sent successfully",
	})
}

func (h *Handler) ListSummariesForDoctor(c echo.Context) error {
	doctorID, err := uuid.Parse(c.Param("doctorID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid doctor ID format")
	}
	p := pagination.FromContext(c)
	list, err := h.svc.ListSummariesForDoctor(c.Request().Context(), doctorID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetSummaryByEncounter(c echo.Context) error {
	encounterID, err := uuid.Parse(c.Param("encounterID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid encounter ID format")
	}
	sum, err := h.svc.GetSummaryByEncounter(c.Request().Context(), encounterID)
	if err != nil {
		if errors.Is(err, ErrSummaryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Patient summary not found for this encounter")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) ListSummariesForPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid patient ID format")
	}
	limit := defaultPatientSummaryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPatientSummaryLimit {
		limit = maxPatientSummaryLimit
	}
	list, err := h.svc.ListSummariesForPatient(c.Request().Context(), patientID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, list)
}
