package emergency

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carebridge/carebridge/internal/platform/auth"
	"github.com/carebridge/carebridge/internal/platform/notification"
)

func newTestContext(e *echo.Echo, method string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", nil)
	req = req.WithContext(auth.WithEmail(req.Context(), "jordan@example.com"))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Activate(t *testing.T) {
	svc := newTestService(&mockRepo{}, &mockContacts{}, &mockProfiles{}, &notification.MockAlertSender{})
	h := NewHandler(svc)
	e := echo.New()

	c, rec := newTestContext(e, http.MethodPost)
	if err := h.Activate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"contacts_alerted":0`) {
		t.Errorf("response should carry the event: %s", rec.Body.String())
	}
}

func TestHandler_ListEvents(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo, &mockContacts{}, &mockProfiles{}, &notification.MockAlertSender{})
	h := NewHandler(svc)
	e := echo.New()

	c, _ := newTestContext(e, http.MethodPost)
	if err := h.Activate(c); err != nil {
		t.Fatal(err)
	}

	c, rec := newTestContext(e, http.MethodGet)
	if err := h.ListEvents(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":1`) {
		t.Errorf("expected one event in history: %s", rec.Body.String())
	}
}

func TestHandler_ListEvents_Empty(t *testing.T) {
	svc := newTestService(&mockRepo{}, &mockContacts{}, &mockProfiles{}, &notification.MockAlertSender{})
	h := NewHandler(svc)
	e := echo.New()

	c, rec := newTestContext(e, http.MethodGet)
	if err := h.ListEvents(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("empty history should serialize as an empty array: %s", rec.Body.String())
	}
}
