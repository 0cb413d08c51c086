package listing

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Page is one page of a filtered, ordered collection plus the navigation
// state a list view needs.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Number      int   `json:"number"`
	NumPages    int   `json:"num_pages"`
	Count       int64 `json:"count"`
	PageSize    int   `json:"page_size"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`

	// NextPage and PreviousPage are 0 when there is no such page.
	NextPage     int `json:"next_page,omitempty"`
	PreviousPage int `json:"previous_page,omitempty"`
}

// NumPages never returns less than one: an empty collection still has a single, empty page.
func NumPages(count int64, size int) int {
	if size < 1 || count <= 0 {
		return 1
	}
	return int((count + int64(size) - 1) / int64(size))
}

// ClampPage moves an out-of-range page number to the nearest valid page.
func ClampPage(number, numPages int) int {
	if number < 1 {
		return 1
	}
	if number > numPages {
		return numPages
	}
	return number
}

// ParsePage reads a raw page query value; anything that is not an integer means page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return n
}

func NewPage[T any](items []T, number int, count int64, size int) Page[T] {
	if items == nil {
		items = []T{}
	}
	numPages := NumPages(count, size)
	p := Page[T]{
		Items:       items,
		Number:      number,
		NumPages:    numPages,
		Count:       count,
		PageSize:    size,
		HasNext:     number < numPages,
		HasPrevious: number > 1,
	}
	if p.HasNext {
		p.NextPage = number + 1
	}
	if p.HasPrevious {
		p.PreviousPage = number - 1
	}
	return p
}

// MapPage converts page items while keeping the navigation state.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Page[R]{
		Items:        items,
		Number:       p.Number,
		NumPages:     p.NumPages,
		Count:        p.Count,
		PageSize:     p.PageSize,
		HasNext:      p.HasNext,
		HasPrevious:  p.HasPrevious,
		NextPage:     p.NextPage,
		PreviousPage: p.PreviousPage,
	}
}

// Paginate counts the rows matched by query, clamps number and loads that page.
// query must already carry its filters and ordering; findScopes (selects,
// preloads) are applied to the page query only, never to the count.
func Paginate[T any](ctx context.Context, query *gorm.DB, number, size int, findScopes ...func(*gorm.DB) *gorm.DB) (Page[T], error) {
	if size < 1 {
		size = 1
	}
	query = query.WithContext(ctx).Session(&gorm.Session{})

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return Page[T]{}, err
	}

	number = ClampPage(number, NumPages(count, size))
	if count == 0 {
		return NewPage[T](nil, number, 0, size), nil
	}

	var items []T
	if err := query.Scopes(findScopes...).Offset((number - 1) * size).Limit(size).Find(&items).Error; err != nil {
		return Page[T]{}, err
	}

	return NewPage(items, number, count, size), nil
}
