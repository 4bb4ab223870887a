package contact

import (
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

// RegisterRoutes registers contact endpoints on the authenticated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/contacts", h.Add)
	g.GET("/contacts", h.List)
}

func (h *Handler) Add(c echo.Context) error {
	email := auth.EmailFromContext(c.Request().Context())

	var body Contact
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.Add(c.Request().Context(), email, &body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, body)
}

func (h *Handler) List(c echo.Context) error {
	email := auth.EmailFromContext(c.Request().Context())

	items, err := h.svc.List(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Contact{}
	}
	return c.JSON(http.StatusOK, items)
}
