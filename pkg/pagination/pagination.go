package pagination

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type Page struct {
	Number int
	Limit  int
}

// Meta is the pagination block returned next to a page of rows.
type Meta struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// Parse reads raw query values. Anything that is not a positive integer falls
// back to the defaults. The page number is clamped so that Offset never
// overflows.
func Parse(page, limit string) Page {
	p := Page{
		Number: positiveOr(page, DefaultPage),
		Limit:  positiveOr(limit, DefaultLimit),
	}
	p.Number = min(p.Number, math.MaxInt/p.Limit)
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

func (p Page) Meta(totalItems int) Meta {
	pages := totalItems / p.Limit
	if totalItems%p.Limit != 0 {
		pages++
	}

	return Meta{
		CurrentPage:  p.Number,
		TotalPages:   pages,
		TotalItems:   totalItems,
		ItemsPerPage: p.Limit,
	}
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
