package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func rbacContext(role string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/logs/recent", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != "" {
		c.Set("role", role)
	}
	return c
}

func TestRequireRole_Allows(t *testing.T) {
	mw := RequireRole("admin")

	var reached bool
	err := mw(func(echo.Context) error {
		reached = true
		return nil
	})(rbacContext("admin"))
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !reached {
		t.Fatalf("next handler not called")
	}
}

func TestRequireRole_Rejects(t *testing.T) {
	mw := RequireRole("admin")

	for _, role := range []string{"marketer", "hr", "employee", ""} {
		err := mw(func(echo.Context) error { return nil })(rbacContext(role))
		assertHTTPError(t, err, http.StatusForbidden, "Admin access required")
	}
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	mw := RequireRole("admin", "hr")

	if err := mw(func(echo.Context) error { return nil })(rbacContext("hr")); err != nil {
		t.Fatalf("hr should pass: %v", err)
	}
	err := mw(func(echo.Context) error { return nil })(rbacContext("employee"))
	assertHTTPError(t, err, http.StatusForbidden, "Admin access required")
}
