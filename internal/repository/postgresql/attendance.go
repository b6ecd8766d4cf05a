package postgresql

import (
	"context"

	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
	"github.com/facade-tech/workforce-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) List(ctx context.Context) ([]attendance.AttendanceEntry, error) {
	q := GetQuerier(ctx, r.db)
	return loadCollection[attendance.AttendanceEntry](ctx, q, keyAttendance)
}

func (r *attendanceRepository) Insert(ctx context.Context, entry attendance.AttendanceEntry) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[attendance.AttendanceEntry](ctx, q, keyAttendance)
	if err != nil {
		return err
	}
	items = append(items, entry)
	return saveCollection(ctx, q, keyAttendance, items)
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	items, err := loadCollection[attendance.AttendanceEntry](ctx, q, keyAttendance)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, entry := range items {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(items) {
		return attendance.ErrAttendanceNotFound
	}
	return saveCollection(ctx, q, keyAttendance, kept)
}
