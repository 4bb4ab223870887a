package symptom

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carebridge/carebridge/internal/platform/auth"
	"github.com/carebridge/carebridge/internal/platform/translate"
	"github.com/carebridge/carebridge/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers symptom endpoints on the authenticated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/symptoms/analyze", h.Analyze)
	g.POST("/symptoms/transcribe", h.Transcribe)
	g.POST("/symptoms/:id/translate", h.Translate)
	g.GET("/symptoms", h.List)
}

type analyzeRequest struct {
	Symptoms string `json:"symptoms"`
}

func (h *Handler) Analyze(c echo.Context) error {
	email := auth.EmailFromContext(c.Request().Context())

	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.svc.Analyze(c.Request().Context(), email, req.Symptoms)
	if errors.Is(err, ErrEmptySymptoms) {
		return echo.NewHTTPError(http.StatusBadRequest, "please describe your symptoms before analyzing")
	}
	if errors.Is(err, ErrGenerationFailed) {
		return echo.NewHTTPError(http.StatusBadGateway, ErrGenerationFailed.Error()).SetInternal(err)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) Transcribe(c echo.Context) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "audio file is required")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "audio file could not be read")
	}
	defer src.Close()
	audio, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "audio file could not be read")
	}

	transcript, err := h.svc.Transcribe(c.Request().Context(), file.Filename, audio)
	if errors.Is(err, ErrTranscriptionFailed) {
		return echo.NewHTTPError(http.StatusBadGateway, ErrTranscriptionFailed.Error()).SetInternal(err)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"transcript": transcript})
}

type translateRequest struct {
	Language string `json:"language"`
}

func (h *Handler) Translate(c echo.Context) error {
	email := auth.EmailFromContext(c.Request().Context())

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.svc.Translate(c.Request().Context(), email, id, req.Language)
	if errors.Is(err, translate.ErrUnsupportedLanguage) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "symptom entry not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "translation is temporarily unavailable").SetInternal(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) List(c echo.Context) error {
	email := auth.EmailFromContext(c.Request().Context())
	pg := pagination.FromContext(c)

	items, total, err := h.svc.List(c.Request().Context(), email, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*SymptomEntry{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
