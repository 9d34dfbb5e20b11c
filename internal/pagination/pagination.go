package pagination

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "lexfeed/internal/errors"
)

// Page describes one slice of an ordered collection plus the navigation
// links around it. Prev and Next are empty when there is no such page.
type Page struct {
	Number  int
	PerPage int
	Count   int64
	Prev    string
	Next    string
}

// PageParam reads the page query parameter, defaulting to 1. Non-numeric
// values fall back to the default as well; range checking happens in New.
func PageParam(c echo.Context) int {
	raw := c.QueryParam("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// New validates the requested page against the collection size and builds
// navigation links off selfURL. A page beyond the last one is ErrNotFound;
// page 1 of an empty collection is valid and empty.
func New(total int64, page, perPage int, selfURL string) (*Page, error) {
	if page < 1 || perPage < 1 {
		return nil, apperrors.ErrNotFound
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if page > pages && !(page == 1 && total == 0) {
		return nil, apperrors.ErrNotFound
	}

	p := &Page{
		Number:  page,
		PerPage: perPage,
		Count:   total,
	}
	if page > 1 {
		p.Prev = pageURL(selfURL, page-1)
	}
	if page < pages {
		p.Next = pageURL(selfURL, page+1)
	}
	return p, nil
}

// Offset returns the store offset for this page.
func (p *Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// Envelope assembles the response body: count, the keyed item list, and
// prev/next only when they exist.
func (p *Page) Envelope(key string, items interface{}) map[string]interface{} {
	body := map[string]interface{}{
		"count": p.Count,
		key:     items,
	}
	if p.Prev != "" {
		body["prev"] = p.Prev
	}
	if p.Next != "" {
		body["next"] = p.Next
	}
	return body
}

func pageURL(selfURL string, page int) string {
	return fmt.Sprintf("%s?page=%d", selfURL, page)
}
