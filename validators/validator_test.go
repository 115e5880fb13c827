package validators

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	MovieID  int64    `json:"movie_id" validate:"required,gt=0"`
	Decision string   `json:"decision" validate:"required,oneof=like nope"`
	Rating   *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

func TestMapUsesJSONNames(t *testing.T) {
	v := NewValidator()
	high := 7.5

	m := v.Map(sample{Decision: "maybe", Rating: &high})

	assert.Equal(t, "is required", m["movie_id"])
	assert.Equal(t, "must be one of like nope", m["decision"])
	assert.Equal(t, "must be <= 5", m["rating"])
}

func TestValidPassesThrough(t *testing.T) {
	v := NewValidator()
	assert.Nil(t, v.Map(sample{MovieID: 550, Decision: "like"}))
	assert.NoError(t, v.Validate(sample{MovieID: 550, Decision: "like"}))
}

func TestValidateReturnsBadRequest(t *testing.T) {
	err := NewValidator().Validate(sample{})

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
