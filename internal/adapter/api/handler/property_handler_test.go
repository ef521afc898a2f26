package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestListPropertiesRejectsBadNumericParams(t *testing.T) {
	e := echo.New()
	h := NewPropertyHandler(nil, nil)

	params := []string{
		"min_price=abc",
		"max_price=1,200",
		"min_bedrooms=two",
		"max_bedrooms=2.5",
		"min_bathrooms=x",
	}
	for _, param := range params {
		req := httptest.NewRequest(http.MethodGet, "/v1/properties?"+param, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if assert.NoError(t, h.ListProperties(c)) {
			assert.Equal(t, http.StatusBadRequest, rec.Code, param)
		}
	}
}
