package api

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"shopwidget.GO/config"
	"shopwidget.GO/flow"
	"shopwidget.GO/session"
)

// SessionCookie names the cookie binding a browser to its widget session.
const SessionCookie = "widget_session"

// controllers maps session id -> *flow.Controller. Controllers carry the
// workflow state and the one-shot confirmation handoff, so they must live
// exactly as long as their session; DropController is wired to the session
// manager's sweep.
var controllers sync.Map

// SessionID returns the request's session id, minting one (and setting the
// cookie) on first contact. SameSite=None because the widget lives inside a
// foreign page's iframe; that requires Secure, so debug builds drop to Lax so
// the cookie survives plain-HTTP local serving.
func SessionID(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	id := session.NewID()
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	if config.AppConfig != nil && config.AppConfig.Debug {
		cookie.Secure = false
		cookie.SameSite = http.SameSiteLaxMode
	}
	c.SetCookie(cookie)
	return id
}

// ControllerFor returns the flow controller for a session, creating both the
// session and the controller as needed. State entries are forwarded to the
// bridge as scroll-to-top signals.
func (d *Deps) ControllerFor(id string) *flow.Controller {
	store := d.Sessions.GetOrCreate(id)
	if v, ok := controllers.Load(id); ok {
		ctl := v.(*flow.Controller)
		if ctl.Store() == store {
			return ctl
		}
		// Session was swept and recreated under the same id; start fresh.
	}
	ctl := flow.NewController(store, d.Searcher)
	if d.Bridge != nil {
		sessionID := id
		ctl.OnEnter(func(_ flow.State, path string) {
			d.Bridge.QueueScrollToTop(sessionID, path)
		})
	}
	controllers.Store(id, ctl)
	return ctl
}

// DropController releases the controller for a swept session.
func DropController(id string) {
	controllers.Delete(id)
}
