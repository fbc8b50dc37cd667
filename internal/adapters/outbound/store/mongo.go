package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abdidvp/polaxis/internal/domain"
)

const (
	defaultMongoDatabase = "polaxis"
	resultsCollection    = "results"
)

// MongoStore implements domain.ResultStore on a MongoDB collection.
type MongoStore struct {
	client  *mongo.Client // nil when the caller owns the connection
	results *mongo.Collection
}

// NewMongo uses an existing database handle. Close does not disconnect it.
func NewMongo(db *mongo.Database) *MongoStore {
	return &MongoStore{results: db.Collection(resultsCollection)}
}

// DialMongo connects to uri and checks the connection with a ping.
func DialMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = defaultMongoDatabase
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}
	s := NewMongo(client.Database(database))
	s.client = client
	return s, nil
}

func (s *MongoStore) Save(ctx context.Context, rec *domain.ResultRecord) error {
	_, err := s.results.InsertOne(ctx, rec)
	return err
}

func (s *MongoStore) Get(ctx context.Context, id string) (*domain.ResultRecord, error) {
	var rec domain.ResultRecord
	err := s.results.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}

func (s *MongoStore) ListCodes(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"code": 1}).SetSort(bson.M{"createdAt": 1})
	cur, err := s.results.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var codes []string
	for cur.Next(ctx) {
		var doc struct {
			Code string `bson:"code"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		codes = append(codes, doc.Code)
	}
	return codes, cur.Err()
}

func (s *MongoStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(context.Background())
}
