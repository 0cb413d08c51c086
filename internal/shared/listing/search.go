package listing

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Params are the list query parameters shared by every list view.
type Params struct {
	Query string `form:"q"`
	Year  string `form:"year"`
	Month string `form:"month"`
	Page  string `form:"page"`
}

// Spec describes how one entity type is searched, filtered, ordered and paged.
// Column names are qualified with their table so joined queries stay unambiguous.
type Spec struct {
	Table        string
	Join         string
	SearchColumn string
	// StartColumn and EndColumn are empty for entities without a date span.
	StartColumn string
	EndColumn   string
	// IDColumn is the last ordering key, keeping pages stable between requests.
	IDColumn string
	PageSize int
}

func (s Spec) HasSpan() bool {
	return s.StartColumn != "" && s.EndColumn != ""
}

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// NormalizeQuery capitalizes the search term: first letter upper case, the rest lower case.
// Matching is case-insensitive anyway; the normalized form is what list views echo back.
func NormalizeQuery(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(q)
	return upper.String(q[:size]) + lower.String(q[size:])
}

// ParseYear returns 0 when raw is not a usable year.
func ParseYear(raw string) int {
	y, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || y < 1 || y > 9999 {
		return 0
	}
	return y
}

// ParseMonth returns 0 when raw is not a month number.
func ParseMonth(raw string) int {
	m, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || m < 1 || m > 12 {
		return 0
	}
	return m
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains keeps rows whose column contains term, ignoring case.
func Contains(column, term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where(
			"LOWER("+column+") LIKE LOWER(?) ESCAPE '\\'",
			"%"+likeEscaper.Replace(term)+"%",
		)
	}
}

// datePart extracts "year" or "month" from a date column in the connected dialect.
func datePart(db *gorm.DB, part, column string) string {
	if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		format := "%Y"
		if part == "month" {
			format = "%m"
		}
		return fmt.Sprintf("CAST(strftime('%s', %s) AS INTEGER)", format, column)
	}
	return fmt.Sprintf("EXTRACT(%s FROM %s)", strings.ToUpper(part), column)
}

// Period keeps rows whose start or end date falls in year and in month.
// A zero year or month disables that half of the filter.
func Period(spec Spec, year, month int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !spec.HasSpan() {
			return db
		}
		if year > 0 {
			db = db.Where(
				fmt.Sprintf("(%s = ? OR %s = ?)", datePart(db, "year", spec.StartColumn), datePart(db, "year", spec.EndColumn)),
				year, year,
			)
		}
		if month > 0 {
			db = db.Where(
				fmt.Sprintf("(%s = ? OR %s = ?)", datePart(db, "month", spec.StartColumn), datePart(db, "month", spec.EndColumn)),
				month, month,
			)
		}
		return db
	}
}

// Ordered sorts events newest first, then by the search column; entities
// without a span sort by the search column alone.
func Ordered(spec Spec) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if spec.HasSpan() {
			db = db.Order(spec.StartColumn + " DESC")
		}
		db = db.Order(spec.SearchColumn + " ASC")
		if spec.IDColumn != "" {
			db = db.Order(spec.IDColumn + " ASC")
		}
		return db
	}
}

// Search applies the text, year and month filters from params to the T
// collection described by spec and returns the requested page together with
// the normalized search term.
func Search[T any](ctx context.Context, db *gorm.DB, spec Spec, params Params, findScopes ...func(*gorm.DB) *gorm.DB) (Page[T], string, error) {
	term := NormalizeQuery(params.Query)

	query := db.WithContext(ctx).Model(new(T))
	if spec.Join != "" {
		query = query.Joins(spec.Join)
	}
	query = query.Scopes(
		Contains(spec.SearchColumn, term),
		Period(spec, ParseYear(params.Year), ParseMonth(params.Month)),
		Ordered(spec),
	)

	if spec.Table != "" {
		findScopes = append([]func(*gorm.DB) *gorm.DB{selectTable(spec.Table)}, findScopes...)
	}

	page, err := Paginate[T](ctx, query, ParsePage(params.Page), spec.PageSize, findScopes...)
	if err != nil {
		return Page[T]{}, term, err
	}
	return page, term, nil
}

func selectTable(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select(table + ".*")
	}
}
