package visitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqIDs struct{ n int }

func (g *seqIDs) New() (string, error) {
	g.n++
	return "01HZXVISITOR0000000000000" + string(rune('0'+g.n)), nil
}

type failingStore struct {
	*MemoryStore
	err error
}

func (s *failingStore) Insert(context.Context, *VisitorRecord) error { return s.err }

type ServiceSuite struct {
	suite.Suite
	store *MemoryStore
	svc   *Service
	now   time.Time
	ctx   context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 9, 30, 15, 123456789, time.FixedZone("IST", 5*3600+1800))
	s.store = NewMemoryStore()
	s.svc = NewService(s.store)
	s.svc.clock = fixedClock{t: s.now}
	s.svc.id = &seqIDs{}
}

func (s *ServiceSuite) TestSubmitPersists() {
	rec, err := s.svc.Submit(s.ctx, validRequest())
	s.Require().NoError(err)

	s.NotEmpty(rec.ID)
	s.Equal("Asha Rao", rec.VisitorName)
	s.Equal(2, rec.NoOfPersons)
	s.Equal(time.UTC, rec.CreatedAt.Location())
	s.True(rec.CreatedAt.Equal(s.now.Truncate(time.Millisecond)))
	s.Equal(1, s.store.Count())

	got, err := s.svc.Get(s.ctx, rec.ID)
	s.Require().NoError(err)
	s.Equal(*rec, *got)
}

func (s *ServiceSuite) TestSubmitInvalidWritesNothing() {
	req := validRequest()
	req.ContactNumber = Text("12345")

	_, err := s.svc.Submit(s.ctx, req)
	s.Require().Error(err)
	s.Equal(400, ToHTTPStatus(err))
	s.Equal(0, s.store.Count())
}

func (s *ServiceSuite) TestSubmitIDsAreUnique() {
	a, err := s.svc.Submit(s.ctx, validRequest())
	s.Require().NoError(err)
	b, err := s.svc.Submit(s.ctx, validRequest())
	s.Require().NoError(err)
	s.NotEqual(a.ID, b.ID)
	s.Equal(2, s.store.Count())
}

func (s *ServiceSuite) TestSubmitStoreFailure() {
	boom := errors.New("connection refused")
	svc := NewService(&failingStore{MemoryStore: NewMemoryStore(), err: boom})

	_, err := svc.Submit(s.ctx, validRequest())
	s.Require().ErrorIs(err, boom)
	s.Equal(500, ToHTTPStatus(err))

	var api *APIError
	s.Require().ErrorAs(err, &api)
	s.Equal(MsgServerError, api.Message)
}

func (s *ServiceSuite) TestGetUnknown() {
	_, err := s.svc.Get(s.ctx, "01HZXNOPE")
	s.Equal(404, ToHTTPStatus(err))

	_, err = s.svc.Get(s.ctx, "")
	s.Equal(400, ToHTTPStatus(err))
}

func (s *ServiceSuite) TestRealIDGen() {
	svc := NewService(s.store)
	rec, err := svc.Submit(s.ctx, validRequest())
	s.Require().NoError(err)
	s.Len(rec.ID, 26)
}
