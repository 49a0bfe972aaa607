package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationInfo(t *testing.T) {
	testCases := []struct {
		name       string
		totalItems int64
		page       int
		size       int
		wantPage   int
		wantPages  int
		wantSize   int
	}{
		{name: "exact single page", totalItems: 10, page: 1, size: 10, wantPage: 1, wantPages: 1, wantSize: 10},
		{name: "partial last page", totalItems: 11, page: 2, size: 10, wantPage: 2, wantPages: 2, wantSize: 10},
		{name: "empty result keeps one page", totalItems: 0, page: 1, size: 10, wantPage: 1, wantPages: 1, wantSize: 10},
		{name: "page clamped to total", totalItems: 5, page: 9, size: 10, wantPage: 1, wantPages: 1, wantSize: 10},
		{name: "zero size falls back to default", totalItems: 25, page: 1, size: 0, wantPage: 1, wantPages: 3, wantSize: DefaultPageSize},
		{name: "zero page falls back to first", totalItems: 25, page: 0, size: 10, wantPage: 1, wantPages: 3, wantSize: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := NewPaginationInfo(tc.totalItems, tc.page, tc.size)
			assert.Equal(t, tc.wantPage, info.CurrentPage)
			assert.Equal(t, tc.wantPages, info.TotalPages)
			assert.Equal(t, tc.wantSize, info.PageSize)
			assert.Equal(t, tc.totalItems, info.TotalItems)
		})
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{name: "defaults", query: "", wantPage: 1, wantSize: DefaultPageSize},
		{name: "explicit values", query: "page=3&size=25", wantPage: 3, wantSize: 25},
		{name: "garbage falls back", query: "page=abc&size=xyz", wantPage: 1, wantSize: DefaultPageSize},
		{name: "negative page falls back", query: "page=-1", wantPage: 1, wantSize: DefaultPageSize},
		{name: "oversized page size capped", query: "size=5000", wantPage: 1, wantSize: DefaultPageSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest("GET", "/teachers?"+tc.query, nil)

			page, size := ParsePaginationParams(ctx)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantSize, size)
		})
	}
}
