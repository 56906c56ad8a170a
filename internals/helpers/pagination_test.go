package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOn(t *testing.T, target string, opt Options) Params {
	t.Helper()

	app := fiber.New()
	var got Params
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ParseFiber(c, opt)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseFiber_Defaults(t *testing.T) {
	p := parseOn(t, "/x", PublicOpts)
	assert.Equal(t, Params{Page: 1, PerPage: 12}, p)

	p = parseOn(t, "/x", AdminOpts)
	assert.Equal(t, Params{Page: 1, PerPage: 20}, p)
}

func TestParseFiber_Clamps(t *testing.T) {
	// limit di atas max dipotong
	p := parseOn(t, "/x?page=2&limit=9999", PublicOpts)
	assert.Equal(t, Params{Page: 2, PerPage: 100}, p)

	// page/limit tidak valid balik ke default
	p = parseOn(t, "/x?page=-3&limit=abc", PublicOpts)
	assert.Equal(t, Params{Page: 1, PerPage: 12}, p)

	// alias per_page
	p = parseOn(t, "/x?per_page=30", AdminOpts)
	assert.Equal(t, 30, p.PerPage)
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 20}
	assert.Equal(t, 20, p.Limit())
	assert.Equal(t, 40, p.Offset())
}

func TestBuildMeta_PagesCeil(t *testing.T) {
	meta := BuildMeta(45, Params{Page: 2, PerPage: 20})
	assert.Equal(t, 3, meta.Pages)
	assert.Equal(t, int64(45), meta.Total)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	// halaman terakhir
	meta = BuildMeta(45, Params{Page: 3, PerPage: 20})
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	// page melebihi total: valid, cuma kosong
	meta = BuildMeta(45, Params{Page: 4, PerPage: 20})
	assert.Equal(t, 3, meta.Pages)
	assert.False(t, meta.HasNext)
}

func TestBuildMeta_Empty(t *testing.T) {
	meta := BuildMeta(0, Params{Page: 1, PerPage: 20})
	assert.Equal(t, 0, meta.Pages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
