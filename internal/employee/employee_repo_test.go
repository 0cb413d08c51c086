package employee_test

import (
	"context"
	"testing"
	"time"

	"hr-records/internal/employee"
	"hr-records/internal/shared/listing"
	"hr-records/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEmployee(id, lastName, email string) *employee.Employee {
	return &employee.Employee{
		EmployeeID:  id,
		LastName:    lastName,
		FirstName:   "Имя",
		Position:    "Инженер",
		HireDate:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:       email,
		PhoneNumber: "100",
	}
}

func TestRepository_CreateFindUpdate(t *testing.T) {
	db := testdb.Open(t, &employee.Employee{})
	repo := employee.NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, seedEmployee("E-1", "Иванов", "a@example.com")))

	got, err := repo.FindByID(ctx, "E-1")
	require.NoError(t, err)
	assert.Equal(t, "Иванов", got.LastName)
	assert.Equal(t, "2020-01-01", got.HireDate.Format(employee.DateLayout))

	got.Position = "Ведущий инженер"
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.FindByID(ctx, "E-1")
	require.NoError(t, err)
	assert.Equal(t, "Ведущий инженер", got.Position)
}

func TestRepository_Search(t *testing.T) {
	db := testdb.Open(t, &employee.Employee{})
	repo := employee.NewRepository(db)
	ctx := context.Background()

	for i, name := range []string{"Smith", "Jones", "Blacksmith"} {
		require.NoError(t, repo.Create(ctx, seedEmployee(string(rune('A'+i)), name, name+"@example.com")))
	}

	page, term, err := repo.Search(ctx, listingParams("sMiTh"))

	require.NoError(t, err)
	assert.Equal(t, "Smith", term)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Blacksmith", page.Items[0].LastName)
	assert.Equal(t, "Smith", page.Items[1].LastName)
	assert.Equal(t, employee.PageSize, page.PageSize)
}

func listingParams(q string) listing.Params {
	return listing.Params{Query: q}
}
