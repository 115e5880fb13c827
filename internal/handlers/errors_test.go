package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/anonto42/cinelog/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorMapping(t *testing.T) {
	cases := map[error]int{
		fmt.Errorf("%w: bad limit", services.ErrValidation): http.StatusBadRequest,
		fmt.Errorf("%w: user", services.ErrNotFound):        http.StatusNotFound,
		fmt.Errorf("%w: swiped", services.ErrConflict):      http.StatusConflict,
		fmt.Errorf("%w: blocked", services.ErrForbidden):    http.StatusForbidden,
		fmt.Errorf("%w: timeout", services.ErrUpstream):     http.StatusBadGateway,
		errors.New("disk on fire"):                          http.StatusInternalServerError,
	}
	for in, code := range cases {
		var he *echo.HTTPError
		require.ErrorAs(t, httpError(in), &he)
		assert.Equal(t, code, he.Code, in.Error())
	}
}
