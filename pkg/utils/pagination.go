package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PaginationParams carries the page window parsed from the query string.
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams reads `page` and `limit` from the request. Bad input
// never errors: non-numeric, zero or negative values fall back to page 1,
// and a limit above 100 is clamped back to the default of 20 so a client
// cannot request an unbounded page.
func GetPaginationParams(c echo.Context) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   offset,
	}
}
