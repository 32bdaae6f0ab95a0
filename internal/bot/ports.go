package bot

import (
	"context"

	"github.com/DimitrisBelias/Personal-Secretary/internal/domain"
)

// RecordStore is the store surface the conversation flows depend on.
// Implemented by the notion adapter; tests substitute a fake.
type RecordStore interface {
	AddItem(ctx context.Context, d domain.ItemDraft) error
	AddCourse(ctx context.Context, d domain.CourseDraft) error
	ListItems(ctx context.Context, t domain.ItemType) ([]domain.WorkItem, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
	GetItem(ctx context.Context, t domain.ItemType, id string) (*domain.WorkItem, error)
	UpdateStatus(ctx context.Context, id string, s domain.Status) error
	UpdateDueDate(ctx context.Context, id, date string) error
	UpdateCourse(ctx context.Context, id, code string) error
	UpdateNotes(ctx context.Context, id, notes string) error
	Archive(ctx context.Context, id string) error
	Upcoming(ctx context.Context, days int) (*domain.UpcomingWork, error)
}
