package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carebridge/carebridge/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers profile endpoints on the authenticated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.PUT("/profile", h.UpsertProfile)
	g.GET("/profile", h.GetProfile)
}

func (h *Handler) UpsertProfile(c echo.Context) error {
	email := auth.EmailFromContext(c.Request().Context())

	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	stored, err := h.svc.UpsertProfile(c.Request().Context(), email, &p)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, stored)
}

func (h *Handler) GetProfile(c echo.Context) error {
	email := auth.EmailFromContext(c.Request().Context())

	p, err := h.svc.GetProfile(c.Request().Context(), email)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}
