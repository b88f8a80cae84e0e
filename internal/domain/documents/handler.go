package documents

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	docs := g.Group("/documents")
	docs.POST("/upload", h.Upload)
	docs.GET("/encounter/:encounterID", h.ListByEncounter)
	docs.DELETE("/:id", h.Delete)
}

type uploadRequest struct {
	EncounterID   string  `json:"encounter_id"`
	FileURL       string  `json:"file_url"`
	DocumentType  string  `json:"document_type"`
	ExtractedText *string `json:"extracted_text,omitempty"`
}

func (h *Handler) Upload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	encounterID, err := uuid.Parse(req.EncounterID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid encounter ID format")
	}
	doc, err := h.svc.Upload(c.Request().Context(), UploadInput{
		EncounterID:   encounterID,
		FileURL:       req.FileURL,
		DocumentType:  req.DocumentType,
		ExtractedText: req.ExtractedText,
	})
	if err != nil {
		if errors.Is(err, ErrEncounterNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Encounter not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success":  true,
		"message":  "Document uploaded successfully",
		"document": doc,
	})
}

func (h *Handler) ListByEncounter(c echo.Context) error {
	encounterID, err := uuid.Parse(c.Param("encounterID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid encounter ID format")
	}
	docs, err := h.svc.ListByEncounter(c.Request().Context(), encounterID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if docs == nil {
		docs = []*Document{}
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid document ID format")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Document not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Document deleted successfully",
	})
}
