package visitor

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// visitorDoc keeps the field names the original collection used.
type visitorDoc struct {
	ID            string    `bson:"_id"`
	VisitorName   string    `bson:"visitorName"`
	NoOfPersons   int       `bson:"noOfPersons"`
	Purpose       string    `bson:"purpose"`
	ContactNumber string    `bson:"contactNumber"`
	VisitDate     string    `bson:"visitDate"`
	CreatedAt     time.Time `bson:"createdAt"`
}

type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{client: client, coll: client.Database(database).Collection(collection)}
}

func (s *MongoStore) Insert(ctx context.Context, r *VisitorRecord) error {
	_, err := s.coll.InsertOne(ctx, toDoc(r))
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateID
	}
	return err
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*VisitorRecord, error) {
	var d visitorDoc
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return d.toRecord(), nil
}

func (s *MongoStore) Close(ctx context.Context) error { return s.client.Disconnect(ctx) }

func toDoc(r *VisitorRecord) visitorDoc {
	return visitorDoc{
		ID:            r.ID,
		VisitorName:   r.VisitorName,
		NoOfPersons:   r.NoOfPersons,
		Purpose:       r.Purpose,
		ContactNumber: r.ContactNumber,
		VisitDate:     r.VisitDate,
		CreatedAt:     r.CreatedAt.UTC(),
	}
}

func (d visitorDoc) toRecord() *VisitorRecord {
	return &VisitorRecord{
		ID:            d.ID,
		VisitorName:   d.VisitorName,
		NoOfPersons:   d.NoOfPersons,
		Purpose:       d.Purpose,
		ContactNumber: d.ContactNumber,
		VisitDate:     d.VisitDate,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}
