package record

import (
	"context"

	"hr-records/internal/shared/listing"

	"gorm.io/gorm"
)

// store hides the record type behind Entry so the service can work per Kind.
type store interface {
	withTx(tx *gorm.DB) store
	create(ctx context.Context, e Entry) error
	search(ctx context.Context, params listing.Params) (listing.Page[RecordResponse], string, error)
	pageForEmployee(ctx context.Context, employeeID string, number, size int) (listing.Page[RecordResponse], error)
	listForEmployee(ctx context.Context, employeeID string, order Order) ([]Entry, error)
}

type typedStore[T Entity] struct {
	repo  Repository[T]
	build func(Entry) T
}

func newStore[T Entity](repo Repository[T], build func(Entry) T) store {
	return &typedStore[T]{repo: repo, build: build}
}

func (s *typedStore[T]) withTx(tx *gorm.DB) store {
	return &typedStore[T]{repo: s.repo.WithTx(tx), build: s.build}
}

func (s *typedStore[T]) create(ctx context.Context, e Entry) error {
	rec := s.build(e)
	return s.repo.Create(ctx, &rec)
}

func (s *typedStore[T]) search(ctx context.Context, params listing.Params) (listing.Page[RecordResponse], string, error) {
	page, term, err := s.repo.Search(ctx, params)
	if err != nil {
		return listing.Page[RecordResponse]{}, term, err
	}
	return listing.MapPage(page, mapEntity[T]), term, nil
}

func (s *typedStore[T]) pageForEmployee(ctx context.Context, employeeID string, number, size int) (listing.Page[RecordResponse], error) {
	page, err := s.repo.PageForEmployee(ctx, employeeID, number, size)
	if err != nil {
		return listing.Page[RecordResponse]{}, err
	}
	return listing.MapPage(page, mapEntity[T]), nil
}

func (s *typedStore[T]) listForEmployee(ctx context.Context, employeeID string, order Order) ([]Entry, error) {
	items, err := s.repo.ListForEmployee(ctx, employeeID, order)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, item.Entry())
	}
	return entries, nil
}

func newStores(repos Repositories) map[Kind]store {
	return map[Kind]store{
		KindVacation:     newStore(repos.Vacations, newVacation),
		KindBusinessTrip: newStore(repos.BusinessTrips, newBusinessTrip),
		KindSickLeave:    newStore(repos.SickLeaves, newSickLeave),
	}
}
