package html

import (
	"html/template"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopwidget.GO/api"
	"shopwidget.GO/config"
	"shopwidget.GO/model"
)

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// RegisterWidgetHTMLRoutes registers the four workflow pages. Visual design
// is deliberately plain; the host page styles the iframe.
func RegisterWidgetHTMLRoutes(e *echo.Echo, deps *api.Deps) {
	// GET / — search page. The UPC is mirrored in the query string so a
	// shared link reproduces the search; no param falls back to the
	// session's last query.
	e.GET("/", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		snap := ctl.EnterSearch()

		upc := c.QueryParam("upc")
		if upc == "" && c.QueryParams().Has("upc") {
			// An explicit empty upc= is the clear-search action.
			_, _ = ctl.Search(c.Request().Context(), "", nil)
			snap = ctl.Store().Snapshot()
		} else if upc != "" && upc != snap.LastQuery {
			if _, err := ctl.Search(c.Request().Context(), upc, nil); err != nil {
				log.Printf("html: search %q failed: %v", upc, err)
			}
			snap = ctl.Store().Snapshot()
		}
		message := ""
		if snap.LastQuery != "" && len(snap.LastResults) == 0 {
			message = "No results found"
		}

		var productInfo *model.Candidate
		if len(snap.LastResults) > 0 {
			productInfo = &snap.LastResults[0]
		}
		return c.Render(http.StatusOK, "search.html", map[string]interface{}{
			"Brand":       config.AppConfig.BrandName,
			"Query":       snap.LastQuery,
			"Results":     snap.LastResults,
			"ProductInfo": productInfo,
			"Message":     message,
		})
	})

	// GET /checkout/:id — checkout page; redirect home when no product.
	e.GET("/checkout/:id", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		snap, err := ctl.EnterCheckout(c.Param("id"))
		if err != nil {
			return c.Redirect(http.StatusFound, "/")
		}
		maxQty := snap.Product.MaxQuantity()
		options := make([]int, 0, maxQty)
		for i := 1; i <= maxQty; i++ {
			options = append(options, i)
		}
		return c.Render(http.StatusOK, "checkout.html", map[string]interface{}{
			"Product":  snap.Product,
			"Quantity": snap.Quantity,
			"Options":  options,
			"Contact":  snap.Contact,
			"States":   model.USStates,
			"Total":    snap.Product.Price() * float64(snap.Quantity),
		})
	})

	// POST /checkout — form submission from the checkout page.
	e.POST("/checkout", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		quantity, _ := strconv.Atoi(c.FormValue("quantity"))
		form := model.ContactForm{
			FirstName: c.FormValue("first_name"),
			LastName:  c.FormValue("last_name"),
			Email:     c.FormValue("email"),
			Phone:     c.FormValue("phone"),
			State:     c.FormValue("state"),
		}
		fieldErrs, err := ctl.SubmitCheckout(form, quantity)
		if err != nil {
			return c.Redirect(http.StatusFound, "/")
		}
		if len(fieldErrs) > 0 {
			snap := ctl.Store().Snapshot()
			maxQty := snap.Product.MaxQuantity()
			options := make([]int, 0, maxQty)
			for i := 1; i <= maxQty; i++ {
				options = append(options, i)
			}
			return c.Render(http.StatusUnprocessableEntity, "checkout.html", map[string]interface{}{
				"Product":  snap.Product,
				"Quantity": snap.Quantity,
				"Options":  options,
				"Contact":  &form,
				"States":   model.USStates,
				"Total":    snap.Product.Price() * float64(snap.Quantity),
				"Errors":   fieldErrs,
			})
		}
		return c.Redirect(http.StatusSeeOther, "/review")
	})

	// POST /confirm — review page confirmation.
	e.POST("/confirm", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		if _, err := ctl.Confirm(); err != nil {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.Redirect(http.StatusSeeOther, "/confirmation")
	})

	// GET /review — guarded: incomplete order data redirects, never a
	// partial render.
	e.GET("/review", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		snap, err := ctl.EnterReview()
		if err != nil {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.Render(http.StatusOK, "review.html", map[string]interface{}{
			"Product":  snap.Product,
			"Quantity": snap.Quantity,
			"Contact":  snap.Contact,
			"Total":    snap.Product.Price() * float64(snap.Quantity),
		})
	})

	// GET /confirmation — one-shot record; a reload redirects home.
	e.GET("/confirmation", func(c echo.Context) error {
		ctl := deps.ControllerFor(api.SessionID(c))
		rec, err := ctl.EnterConfirmation()
		if err != nil {
			return c.Redirect(http.StatusFound, "/")
		}
		return c.Render(http.StatusOK, "confirmation.html", map[string]interface{}{
			"Record": rec,
			"Total":  rec.Total(),
		})
	})
}
