package listing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hr-records/internal/shared/listing"
	"hr-records/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type person struct {
	ID       int `gorm:"primaryKey"`
	LastName string
}

func (person) TableName() string { return "persons" }

type trip struct {
	ID        int `gorm:"primaryKey"`
	PersonID  int
	StartDate time.Time `gorm:"type:date"`
	EndDate   time.Time `gorm:"type:date"`
}

func (trip) TableName() string { return "trips" }

var (
	personSpec = listing.Spec{
		Table:        "persons",
		SearchColumn: "persons.last_name",
		IDColumn:     "persons.id",
		PageSize:     10,
	}
	tripSpec = listing.Spec{
		Table:        "trips",
		Join:         "JOIN persons ON persons.id = trips.person_id",
		SearchColumn: "persons.last_name",
		StartColumn:  "trips.start_date",
		EndColumn:    "trips.end_date",
		IDColumn:     "trips.id",
		PageSize:     3,
	}
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedPersons(t *testing.T, db *gorm.DB, names ...string) {
	t.Helper()
	for i, name := range names {
		require.NoError(t, db.Create(&person{ID: i + 1, LastName: name}).Error)
	}
}

func lastNames(items []person) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.LastName)
	}
	return out
}

func tripIDs(items []trip) []int {
	out := make([]int, 0, len(items))
	for _, tr := range items {
		out = append(out, tr.ID)
	}
	return out
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "", listing.NormalizeQuery("   "))
	assert.Equal(t, "Smith", listing.NormalizeQuery(" smith "))
	assert.Equal(t, "Smith", listing.NormalizeQuery("sMITH"))
	assert.Equal(t, "Иванов", listing.NormalizeQuery("иВАНОВ"))
	assert.Equal(t, "О'нил", listing.NormalizeQuery("о'НИЛ"))
}

func TestParseYearMonth(t *testing.T) {
	assert.Equal(t, 2023, listing.ParseYear("2023"))
	assert.Equal(t, 0, listing.ParseYear("twenty"))
	assert.Equal(t, 0, listing.ParseYear("0"))
	assert.Equal(t, 12, listing.ParseMonth("12"))
	assert.Equal(t, 0, listing.ParseMonth("13"))
	assert.Equal(t, 0, listing.ParseMonth(""))
}

func TestSearch_TextFilter(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &person{})
	seedPersons(t, db, "Smithers", "Jones", "Smith", "Blacksmith", "Smalls")

	t.Run("case-insensitive substring, ordered by search field", func(t *testing.T) {
		page, term, err := listing.Search[person](ctx, db, personSpec, listing.Params{Query: "SMITH"})

		require.NoError(t, err)
		assert.Equal(t, "Smith", term)
		assert.Equal(t, []string{"Blacksmith", "Smith", "Smithers"}, lastNames(page.Items))
		assert.Equal(t, int64(3), page.Count)
	})

	t.Run("empty query keeps everything", func(t *testing.T) {
		page, term, err := listing.Search[person](ctx, db, personSpec, listing.Params{})

		require.NoError(t, err)
		assert.Equal(t, "", term)
		assert.Equal(t, []string{"Blacksmith", "Jones", "Smalls", "Smith", "Smithers"}, lastNames(page.Items))
	})

	t.Run("like wildcards are literal", func(t *testing.T) {
		page, _, err := listing.Search[person](ctx, db, personSpec, listing.Params{Query: "%"})

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.NumPages)
	})

	t.Run("year filter is ignored for entities without a span", func(t *testing.T) {
		page, _, err := listing.Search[person](ctx, db, personSpec, listing.Params{Year: "2023", Month: "1"})

		require.NoError(t, err)
		assert.Len(t, page.Items, 5)
	})
}

func TestSearch_Pagination(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &person{})

	names := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		names = append(names, fmt.Sprintf("Name%02d", i))
	}
	seedPersons(t, db, names...)

	tests := []struct {
		name       string
		page       string
		wantNumber int
		wantLen    int
		wantFirst  string
	}{
		{name: "first page", page: "", wantNumber: 1, wantLen: 10, wantFirst: "Name00"},
		{name: "middle page", page: "2", wantNumber: 2, wantLen: 10, wantFirst: "Name10"},
		{name: "last page holds the remainder", page: "3", wantNumber: 3, wantLen: 5, wantFirst: "Name20"},
		{name: "past the end clamps to last", page: "99", wantNumber: 3, wantLen: 5, wantFirst: "Name20"},
		{name: "below one clamps to first", page: "0", wantNumber: 1, wantLen: 10, wantFirst: "Name00"},
		{name: "garbage means first", page: "abc", wantNumber: 1, wantLen: 10, wantFirst: "Name00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, _, err := listing.Search[person](ctx, db, personSpec, listing.Params{Page: tt.page})

			require.NoError(t, err)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, 3, page.NumPages)
			assert.Equal(t, int64(25), page.Count)
			require.Len(t, page.Items, tt.wantLen)
			assert.Equal(t, tt.wantFirst, page.Items[0].LastName)
		})
	}
}

func TestSearch_PeriodFilters(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t, &person{}, &trip{})
	seedPersons(t, db, "Ivanov", "Petrov")

	trips := []trip{
		{ID: 1, PersonID: 1, StartDate: date("2022-12-28"), EndDate: date("2023-01-03")},
		{ID: 2, PersonID: 1, StartDate: date("2023-03-01"), EndDate: date("2023-03-05")},
		{ID: 3, PersonID: 2, StartDate: date("2023-01-10"), EndDate: date("2023-01-12")},
		{ID: 4, PersonID: 2, StartDate: date("2024-01-15"), EndDate: date("2024-01-20")},
	}
	require.NoError(t, db.Create(&trips).Error)

	tests := []struct {
		name   string
		params listing.Params
		want   []int
	}{
		{name: "no filter, newest start first", params: listing.Params{Page: "1"}, want: []int{4, 2, 3}},
		{name: "year matches start", params: listing.Params{Year: "2022"}, want: []int{1}},
		{name: "year matches start or end", params: listing.Params{Year: "2023"}, want: []int{2, 3, 1}},
		{name: "month matches end", params: listing.Params{Month: "1"}, want: []int{4, 3, 1}},
		{name: "month matches start", params: listing.Params{Month: "12"}, want: []int{1}},
		{name: "year and month combine", params: listing.Params{Year: "2023", Month: "1"}, want: []int{3, 1}},
		{name: "text filter on joined owner", params: listing.Params{Query: "petr"}, want: []int{4, 3}},
		{name: "invalid month is ignored", params: listing.Params{Month: "13", Year: "2024"}, want: []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, _, err := listing.Search[trip](ctx, db, tripSpec, tt.params)

			require.NoError(t, err)
			assert.Equal(t, tt.want, tripIDs(page.Items))
			for _, tr := range page.Items {
				assert.NotZero(t, tr.PersonID)
			}
		})
	}

	t.Run("second page of events", func(t *testing.T) {
		page, _, err := listing.Search[trip](ctx, db, tripSpec, listing.Params{Page: "2"})

		require.NoError(t, err)
		assert.Equal(t, []int{1}, tripIDs(page.Items))
		assert.False(t, page.HasNext)
		assert.True(t, page.HasPrevious)
	})
}
