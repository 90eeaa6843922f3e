package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"shiftbook/internal/pagination"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "rfc3339 with zone",
			value: "2024-05-02T20:00:00Z",
			want:  time.Date(2024, 5, 2, 20, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with fractional seconds",
			value: "2024-05-02T20:00:00.000Z",
			want:  time.Date(2024, 5, 2, 20, 0, 0, 0, time.UTC),
		},
		{
			name:  "zoneless timestamp",
			value: "2024-02-17T18:39:00",
			want:  time.Date(2024, 2, 17, 18, 39, 0, 0, time.UTC),
		},
		{
			name:  "bare date",
			value: "2024-02-17",
			want:  time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimestamp(tt.value)

			assert.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	_, err := parseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestParseOptionalTimestamp(t *testing.T) {
	got, err := parseOptionalTimestamp(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = parseOptionalTimestamp(&empty)
	assert.NoError(t, err)
	assert.Nil(t, got)

	value := "2024-05-02T20:00:00Z"
	got, err = parseOptionalTimestamp(&value)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 2, 20, 0, 0, 0, time.UTC), got.UTC())
}

func newQueryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestPageParams(t *testing.T) {
	c := newQueryContext(t, "page=3&size=25")
	page, size := pageParams(c)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, size)

	c = newQueryContext(t, "")
	page, size = pageParams(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, pagination.DefaultSize, size)

	c = newQueryContext(t, "page=abc&size=xyz")
	page, size = pageParams(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, pagination.DefaultSize, size)
}

func TestDateQueryParam(t *testing.T) {
	c := newQueryContext(t, "start_date=2024-02-17")
	got, err := dateQueryParam(c, "start_date")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC), got.UTC())

	c = newQueryContext(t, "")
	got, err = dateQueryParam(c, "start_date")
	assert.NoError(t, err)
	assert.Nil(t, got)

	c = newQueryContext(t, "start_date=not-a-date")
	_, err = dateQueryParam(c, "start_date")
	var he *echo.HTTPError
	assert.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
}
