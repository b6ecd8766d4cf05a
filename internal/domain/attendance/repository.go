package attendance

import "context"

// AttendanceRepository is the attendance collection of the record store.
type AttendanceRepository interface {
	List(ctx context.Context) ([]AttendanceEntry, error)
	Insert(ctx context.Context, entry AttendanceEntry) error
	Delete(ctx context.Context, id string) error
}
