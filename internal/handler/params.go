package handler

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// parseDateQuery reads an optional YYYY-MM-DD query parameter as a UTC
// calendar date.
func parseDateQuery(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%s must be in YYYY-MM-DD format", name)
	}
	return &parsed, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
