package visitor

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

// ===== interfaces =====

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type IDGen interface {
	New() (string, error)
}

// ulidGen draws from ulid's process-wide monotonic entropy, which is safe for concurrent use.
type ulidGen struct{}

func (ulidGen) New() (string, error) { return ulid.Make().String(), nil }

// ===== Service =====

type Service struct {
	store Store
	clock Clock
	id    IDGen
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		clock: realClock{},
		id:    ulidGen{},
	}
}

// Submit validates the form, then persists it with a server-assigned id and creation time.
// Nothing is written when validation fails.
func (s *Service) Submit(ctx context.Context, in SubmitRequest) (*VisitorRecord, error) {
	f, err := validate(in)
	if err != nil {
		return nil, err
	}

	id, err := s.id.New()
	if err != nil {
		return nil, ErrInternal(err)
	}

	rec := &VisitorRecord{
		ID:            id,
		VisitorName:   f.VisitorName,
		NoOfPersons:   f.NoOfPersons,
		Purpose:       f.Purpose,
		ContactNumber: f.ContactNumber,
		VisitDate:     f.VisitDate,
		// millisecond precision is what both backends keep
		CreatedAt: s.clock.Now().UTC().Truncate(time.Millisecond),
	}

	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, ErrInternal(err)
	}
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id string) (*VisitorRecord, error) {
	if id == "" {
		return nil, ErrInvalid("id is required")
	}
	rec, err := s.store.FindByID(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		return nil, ErrNotFound("visitor not found")
	}
	if err != nil {
		return nil, ErrInternal(err)
	}
	return rec, nil
}
