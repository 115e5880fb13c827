package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, target string, header string, override string) string {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set(UserIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	h := UserIdentityMiddleware()(func(c echo.Context) error {
		got = UserID(c, override)
		return nil
	})
	require.NoError(t, h(c))
	return got
}

func TestUserIdentityResolution(t *testing.T) {
	assert.Equal(t, "demo", resolve(t, "/deck", "", ""))
	assert.Equal(t, "a@example.com", resolve(t, "/deck?user_id=a@example.com", "", ""))
	assert.Equal(t, "b@example.com", resolve(t, "/deck", "b@example.com", ""))
	assert.Equal(t, "a@example.com", resolve(t, "/deck?user_id=a@example.com", "b@example.com", ""))
	assert.Equal(t, "c@example.com", resolve(t, "/deck?user_id=a@example.com", "", "c@example.com"))
	assert.Equal(t, "demo", resolve(t, "/deck?user_id=%20%20", "", " "))
}
