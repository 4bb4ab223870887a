package emergency

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carebridge/carebridge/internal/platform/auth"
	"github.com/carebridge/carebridge/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers emergency endpoints on the authenticated group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/emergency/activate", h.Activate)
	g.GET("/emergency/events", h.ListEvents)
}

func (h *Handler) Activate(c echo.Context) error {
	email := auth.EmailFromContext(c.Request().Context())

	result, err := h.svc.Activate(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "emergency activation failed").SetInternal(err)
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) ListEvents(c echo.Context) error {
	email := auth.EmailFromContext(c.Request().Context())
	pg := pagination.FromContext(c)

	items, total, err := h.svc.ListEvents(c.Request().Context(), email, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*EmergencyEvent{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
