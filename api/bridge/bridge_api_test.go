package bridge

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"shopwidget.GO/api"
	bridgepkg "shopwidget.GO/bridge"
	"shopwidget.GO/session"
)

const hostOrigin = "https://shop.example.com"

func newTestServer() (*echo.Echo, *api.Deps) {
	deps := &api.Deps{
		Sessions: session.NewManager(),
		Bridge:   bridgepkg.New([]string{hostOrigin}, func() int { return 900 }),
	}
	e := echo.New()
	RegisterBridgeRoutes(e, deps)
	return e, deps
}

func TestMessage_HeightRequestAnswered(t *testing.T) {
	e, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/bridge/message",
		strings.NewReader(`{"type":"GET_CONTENT_HEIGHT"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Origin", hostOrigin)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var reply bridgepkg.Message
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatal(err)
	}
	if reply.Type != bridgepkg.TypeResizeIframe || reply.Height != 900 {
		t.Errorf("reply = %+v", reply)
	}
}

func TestMessage_UnlistedOriginGetsNothing(t *testing.T) {
	e, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/bridge/message",
		strings.NewReader(`{"type":"GET_CONTENT_HEIGHT"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestEvents_DrainsPerSession(t *testing.T) {
	e, deps := newTestServer()
	deps.Bridge.QueueScrollToTop("sess-1", "/review")

	req := httptest.NewRequest(http.MethodGet, "/bridge/events", nil)
	req.Header.Set("Origin", hostOrigin)
	req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: "sess-1"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Events []bridgepkg.Message `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Events) != 1 || body.Events[0].Type != bridgepkg.TypeScrollToTop || body.Events[0].Path != "/review" {
		t.Fatalf("events = %+v", body.Events)
	}

	// Second poll: drained.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/bridge/events", nil)
	req.Header.Set("Origin", hostOrigin)
	req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: "sess-1"})
	e.ServeHTTP(rec, req)
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Events) != 0 {
		t.Errorf("second drain = %+v, want empty", body.Events)
	}
}

func TestEvents_UnlistedOriginGetsNothing(t *testing.T) {
	e, deps := newTestServer()
	deps.Bridge.QueueScrollToTop("sess-1", "/")

	req := httptest.NewRequest(http.MethodGet, "/bridge/events", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: "sess-1"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	// The queue is untouched for the real host.
	if msgs := deps.Bridge.Drain("sess-1"); len(msgs) != 1 {
		t.Errorf("queue = %v, want intact", msgs)
	}
}
