package bridge

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopwidget.GO/api"
	bridgepkg "shopwidget.GO/bridge"
)

func init() {
	api.RegisterRoute(RegisterBridgeRoutes)
}

// RegisterBridgeRoutes exposes the host-page message channel. These routes
// are hit cross-origin by the embedding document, so the Origin header is
// the trust boundary: unlisted origins get 204 and nothing else.
func RegisterBridgeRoutes(e *echo.Echo, deps *api.Deps) {
	// POST /bridge/message — inbound host message, e.g. GET_CONTENT_HEIGHT.
	e.POST("/bridge/message", func(c echo.Context) error {
		var msg bridgepkg.Message
		if err := c.Bind(&msg); err != nil {
			return c.NoContent(http.StatusNoContent)
		}
		reply, ok := deps.Bridge.HandleInbound(c.Request().Header.Get("Origin"), msg)
		if !ok {
			// Silently dropped: unlisted origin or unknown type.
			return c.NoContent(http.StatusNoContent)
		}
		return c.JSON(http.StatusOK, reply)
	})

	// GET /bridge/events — drain queued outbound signals (SCROLL_TO_TOP).
	e.GET("/bridge/events", func(c echo.Context) error {
		if !deps.Bridge.OriginAllowed(c.Request().Header.Get("Origin")) {
			return c.NoContent(http.StatusNoContent)
		}
		msgs := deps.Bridge.Drain(api.SessionID(c))
		if msgs == nil {
			msgs = []bridgepkg.Message{}
		}
		return c.JSON(http.StatusOK, echo.Map{"events": msgs})
	})
}
