package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(target string) PaginationParams {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return GetPaginationParams(e.NewContext(req, rec))
}

func TestPaginationDefaults(t *testing.T) {
	p := paramsFor("/")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 0, p.Offset)
}

func TestPaginationExplicit(t *testing.T) {
	p := paramsFor("/?page=3&limit=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 20, p.Offset)
}

func TestPaginationClampsBadInput(t *testing.T) {
	p := paramsFor("/?page=-2&limit=9999")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)

	p = paramsFor("/?page=abc&limit=xyz")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
}
