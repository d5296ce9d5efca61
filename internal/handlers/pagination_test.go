package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", query: "", wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "explicit values", query: "page=3&pageSize=10", wantPage: 3, wantPageSize: 10},
		{name: "zero page clamps to 1", query: "page=0", wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "negative page clamps to 1", query: "page=-2", wantPage: 1, wantPageSize: DefaultPageSize},
		{name: "oversized pageSize clamps to max", query: "pageSize=100000", wantPage: 1, wantPageSize: MaxPageSize},
		{name: "garbage is ignored", query: "page=abc&pageSize=xyz", wantPage: 1, wantPageSize: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := pageParams(contextWithQuery(tt.query))
			if page != tt.wantPage || pageSize != tt.wantPageSize {
				t.Errorf("pageParams() = (%d, %d), want (%d, %d)", page, pageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestCreatePaginatedResponse(t *testing.T) {
	c := contextWithQuery("page=2&pageSize=10")
	data := []string{"a", "b"}

	resp := CreatePaginatedResponse(c, data, 25)
	if resp.CurrentPage != 2 || resp.PageSize != 10 {
		t.Errorf("page/pageSize = %d/%d, want 2/10", resp.CurrentPage, resp.PageSize)
	}
	if resp.TotalRows != 25 || resp.TotalPages != 3 {
		t.Errorf("totals = %d rows / %d pages, want 25/3", resp.TotalRows, resp.TotalPages)
	}
}

func TestCreatePaginatedResponseEmpty(t *testing.T) {
	resp := CreatePaginatedResponse(contextWithQuery(""), nil, 0)
	if resp.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0 for empty result", resp.TotalPages)
	}
}
