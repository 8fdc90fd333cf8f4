package widget

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopwidget.GO/api"
	"shopwidget.GO/flow"
	"shopwidget.GO/model"
)

func init() {
	api.RegisterModule(RegisterWidgetRoutes)
}

// SearchRequest is the search page's query. Lat/Lng come from the host page
// when it resolved the requester's location; absent means unknown distances.
type SearchRequest struct {
	UPC string   `json:"upc"`
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// CheckoutRequest is the checkout form submission.
type CheckoutRequest struct {
	Quantity  int    `json:"quantity"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	State     string `json:"state"`
}

// RegisterWidgetRoutes sets up the order-workflow JSON API under /api/widget.
func RegisterWidgetRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/widget")

	// POST /api/widget/search — run a UPC search; empty UPC clears it.
	g.POST("/search", func(c echo.Context) error {
		var body SearchRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		ctl := deps.ControllerFor(api.SessionID(c))

		var near *model.GeoPoint
		if body.Lat != nil && body.Lng != nil {
			near = &model.GeoPoint{Lat: *body.Lat, Lng: *body.Lng}
		}

		hits, err := ctl.Search(c.Request().Context(), body.UPC, near)
		if err != nil {
			// Recovered locally: empty results plus a neutral message.
			log.Printf("widget: search %q failed: %v", body.UPC, err)
		}
		resp := echo.Map{"query": body.UPC, "hits": hits}
		if len(hits) == 0 && body.UPC != "" {
			resp["message"] = "No results found"
		}
		if len(hits) > 0 {
			resp["product_info"] = hits[0]
		}
		return c.JSON(http.StatusOK, resp)
	})

	// GET /api/widget/session — session snapshot (host-page debugging).
	g.GET("/session", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		return c.JSON(http.StatusOK, ctl.Store().Snapshot())
	})

	// POST /api/widget/checkout/:id — pick a candidate from the last results.
	g.POST("/checkout/:id", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		cand, err := ctl.SelectCandidate(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusConflict, echo.Map{"redirect": "/"})
		}
		snap := ctl.Store().Snapshot()
		return c.JSON(http.StatusOK, echo.Map{
			"product":      cand,
			"quantity":     snap.Quantity,
			"max_quantity": cand.MaxQuantity(),
		})
	})

	// POST /api/widget/checkout — submit quantity + contact, move to review.
	g.POST("/checkout", func(c echo.Context) error {
		var body CheckoutRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		ctl := deps.ControllerFor(api.SessionID(c))
		form := model.ContactForm{
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Email:     body.Email,
			Phone:     body.Phone,
			State:     body.State,
		}
		fieldErrs, err := ctl.SubmitCheckout(form, body.Quantity)
		if err != nil {
			return c.JSON(http.StatusConflict, echo.Map{"redirect": "/"})
		}
		if len(fieldErrs) > 0 {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fieldErrs})
		}
		return c.JSON(http.StatusOK, echo.Map{"redirect": "/review"})
	})

	// GET /api/widget/review — guarded review data with totals.
	g.GET("/review", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		snap, err := ctl.EnterReview()
		if err != nil {
			return c.JSON(http.StatusConflict, echo.Map{"redirect": "/"})
		}
		total := snap.Product.Price() * float64(snap.Quantity)
		return c.JSON(http.StatusOK, echo.Map{
			"product":  snap.Product,
			"quantity": snap.Quantity,
			"contact":  snap.Contact,
			"total":    total,
		})
	})

	// POST /api/widget/confirm — review → confirmation.
	g.POST("/confirm", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		rec, err := ctl.Confirm()
		if err != nil {
			return c.JSON(http.StatusConflict, echo.Map{"redirect": "/"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"order_id": rec.OrderID,
			"redirect": "/confirmation",
		})
	})

	// GET /api/widget/confirmation — consume the one-shot record. A reload
	// after consumption redirects back to search.
	g.GET("/confirmation", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		rec, err := ctl.EnterConfirmation()
		if errors.Is(err, flow.ErrNoConfirmation) {
			return c.JSON(http.StatusConflict, echo.Map{"redirect": "/"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"order_id": rec.OrderID,
			"product":  rec.Product,
			"quantity": rec.Quantity,
			"contact":  rec.Contact,
			"total":    rec.Total(),
		})
	})
}
