package encounter

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medicopilot/api/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/encounters", h.SaveEncounter)
	api.GET("/encounters", h.ListEncounters)
	api.GET("/encounters/doctor/:doctorID", h.ListForDoctor)
	api.GET("/encounters/case/:caseID", h.CaseHistory)
	api.GET("/encounters/:id", h.GetEncounter)
}

func (h *Handler) SaveEncounter(c echo.Context) error {
	var input CreateOrContinueInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.CreateOrContinue(c.Request().Context(), input)
	switch {
	case errors.Is(err, ErrPatientNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	case errors.Is(err, ErrCaseNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "parent case not found")
	case errors.Is(err, ErrVisitConflict):
		return echo.NewHTTPError(http.StatusConflict, "concurrent follow-up for this case, retry the request")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) GetEncounter(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid encounter id")
	}
	enc, err := h.svc.GetEncounter(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "encounter not found")
	}
	return c.JSON(http.StatusOK, enc)
}

func (h *Handler) CaseHistory(c echo.Context) error {
	caseID, err := uuid.Parse(c.Param("caseID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid case id")
	}
	encs, err := h.svc.CaseHistory(c.Request().Context(), caseID)
	if errors.Is(err, ErrCaseNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "case not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, encs)
}

func (h *Handler) ListForDoctor(c echo.Context) error {
	doctorID, err := uuid.Parse(c.Param("doctorID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}
	pg := pagination.FromContext(c)
	encs, err := h.svc.ListForDoctor(c.Request().Context(), doctorID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if encs == nil {
		encs = []*EncounterWithPatient{}
	}
	return c.JSON(http.StatusOK, encs)
}

func (h *Handler) ListEncounters(c echo.Context) error {
	pg := pagination.FromContext(c)
	encs, err := h.svc.ListAll(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if encs == nil {
		encs = []*EncounterWithPatient{}
	}
	return c.JSON(http.StatusOK, encs)
}
