package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"shopwidget.GO/core/registry"
)

func resetAPIRegistry() {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryAPI)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryAPI, nil)
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryRoutes)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryRoutes, nil)
}

func TestApplyModules_InvokesRegistered(t *testing.T) {
	defer resetAPIRegistry()

	called := false
	RegisterModule(func(g *echo.Group, deps *Deps) {
		called = true
		g.GET("/probe", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})
	})

	e := echo.New()
	ApplyModules(e.Group("/api"), &Deps{})
	if !called {
		t.Fatal("registered module was not invoked")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/probe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("probe status = %d", rec.Code)
	}
}

func TestRegisterModule_AfterApplyPanics(t *testing.T) {
	defer resetAPIRegistry()

	ApplyModules(echo.New().Group("/api"), &Deps{})

	defer func() {
		if recover() == nil {
			t.Error("RegisterModule after ApplyModules should panic")
		}
	}()
	RegisterModule(func(g *echo.Group, deps *Deps) {})
}

func TestRegisterGET_ServedFromRoot(t *testing.T) {
	defer resetAPIRegistry()

	RegisterGET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	e := echo.New()
	ApplyRoutes(e, &Deps{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Errorf("ping = %d %q", rec.Code, rec.Body.String())
	}
}

func TestRegisterRoute_AfterApplyPanics(t *testing.T) {
	defer resetAPIRegistry()

	ApplyRoutes(echo.New(), &Deps{})

	defer func() {
		if recover() == nil {
			t.Error("RegisterRoute after ApplyRoutes should panic")
		}
	}()
	RegisterRoute(func(e *echo.Echo, deps *Deps) {})
}
