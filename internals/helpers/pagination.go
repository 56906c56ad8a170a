// file: internals/helpers/pagination.go
package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var (
	PublicOpts = Options{DefaultPerPage: 12, MaxPerPage: 100}
	AdminOpts  = Options{DefaultPerPage: 20, MaxPerPage: 200}
)

type Params struct {
	Page    int
	PerPage int
}

// ParseFiber: baca ?page= & ?limit= (alias ?per_page=) lalu normalisasi.
// Page 1-indexed; page di luar jangkauan bukan error — hasilnya list kosong.
func ParseFiber(c *fiber.Ctx, opt Options) Params {
	page := atoiDefault(strings.TrimSpace(c.Query("page")), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	perRaw := strings.TrimSpace(firstNonEmpty(c.Query("limit"), c.Query("per_page")))
	per := opt.DefaultPerPage
	if n, err := strconv.Atoi(perRaw); err == nil && n > 0 {
		per = n
	}
	if opt.MaxPerPage > 0 && per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}

	return Params{Page: page, PerPage: per}
}

func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

// Meta untuk response
type Meta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// BuildMeta: pages = ceil(total/limit)
func BuildMeta(total int64, p Params) Meta {
	pages := 0
	if total > 0 && p.PerPage > 0 {
		pages = int(math.Ceil(float64(total) / float64(p.PerPage)))
	}
	return Meta{
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   total,
		Pages:   pages,
		HasPrev: p.Page > 1,
		HasNext: pages > 0 && p.Page < pages,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
