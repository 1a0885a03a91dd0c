package visitor

import "context"

// Store persists VisitorRecords. Implementations never update or delete a record.
type Store interface {
	Insert(ctx context.Context, r *VisitorRecord) error
	FindByID(ctx context.Context, id string) (*VisitorRecord, error)
	Close(ctx context.Context) error
}
