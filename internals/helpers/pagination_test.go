package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveVia(t *testing.T, target string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	p := resolveVia(t, "/list")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)

	p = resolveVia(t, "/list?page=3&per_page=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)

	// limit alias
	p = resolveVia(t, "/list?limit=5")
	assert.Equal(t, 5, p.PerPage)

	// normalization
	p = resolveVia(t, "/list?page=-2&per_page=0")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)

	// cap
	p = resolveVia(t, "/list?per_page=9999")
	assert.Equal(t, 100, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	meta := BuildPagination(Paging{Page: 2, PerPage: 10}, 35, 10)
	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	assert.Equal(t, 10, meta.Count)

	last := BuildPagination(Paging{Page: 4, PerPage: 10}, 35, 5)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := BuildPagination(Paging{Page: 1, PerPage: 10}, 0, 0)
	assert.Zero(t, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
