package memory

import (
	"context"
	"sync"

	"github.com/facade-tech/workforce-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu    sync.RWMutex
	items []attendance.AttendanceEntry
}

func NewAttendanceRepository(seed ...attendance.AttendanceEntry) *AttendanceRepository {
	return &AttendanceRepository{items: append([]attendance.AttendanceEntry(nil), seed...)}
}

func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.AttendanceEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]attendance.AttendanceEntry(nil), r.items...), nil
}

func (r *AttendanceRepository) Insert(ctx context.Context, entry attendance.AttendanceEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, entry)
	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}
