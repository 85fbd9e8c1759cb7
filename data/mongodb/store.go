// Package mongodb provides a MongoDB document store driver.
//
// This driver uses mongo-driver (go.mongodb.org/mongo-driver) as the
// underlying client. It registers itself when imported:
//
//	import _ "github.com/docubase/docursor/data/mongodb"
//
// Documents live in a single collection as {key, data} pairs with a unique
// ascending index on key. Pages are served with keyset pagination: cursors
// encode the ordering key they point at, and the key condition resumes the
// scan from there. One extra row past the page size is requested to decide
// continuation cursor presence without a second round trip.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/docubase/docursor/data"
	"github.com/docubase/docursor/data/config"
	"github.com/docubase/docursor/paging"
)

const (
	defaultDatabase   = "ledger"
	defaultCollection = "customers"
)

type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "mongodb"
}

// Open establishes a MongoDB connection using the provided configuration.
func (d *driver) Open(ctx context.Context, cfg *config.Config) (data.Store, error) {
	if cfg == nil || cfg.MongoDB == nil || cfg.MongoDB.URI == "" {
		return nil, errors.New("mongodb: uri configuration is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		return nil, fmt.Errorf("mongodb: connecting: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	database := cfg.MongoDB.Database
	if database == "" {
		database = defaultDatabase
	}
	collection := cfg.MongoDB.Collection
	if collection == "" {
		collection = defaultCollection
	}

	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

func init() {
	data.RegisterDriver(&driver{})
}

// Store is a MongoDB-backed document store.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// record is the collection's document shape.
type record struct {
	Key  int64    `bson:"key"`
	Data bson.Raw `bson:"data"`
}

// EnsureSchema creates the unique key index. Index creation is idempotent
// on the server side.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongodb: creating key index: %w", err)
	}
	return nil
}

// InsertMany writes a batch of documents. The unique key index rejects
// duplicates.
func (s *Store) InsertMany(ctx context.Context, docs []data.Document) error {
	models := make([]any, 0, len(docs))
	for _, d := range docs {
		var body bson.D
		if err := bson.UnmarshalExtJSON(d.Data, true, &body); err != nil {
			return fmt.Errorf("mongodb: document %d body: %w", d.Key, err)
		}
		models = append(models, bson.D{
			{Key: "key", Value: d.Key},
			{Key: "data", Value: body},
		})
	}

	if _, err := s.coll.InsertMany(ctx, models); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("mongodb: duplicate key in batch: %w", err)
		}
		return fmt.Errorf("mongodb: inserting batch: %w", err)
	}
	return nil
}

// GetByKey returns the document with the given key.
func (s *Store) GetByKey(ctx context.Context, key int64) (*data.Document, error) {
	var rec record
	err := s.coll.FindOne(ctx, bson.M{"key": key}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, data.ErrNotFound
		}
		return nil, fmt.Errorf("mongodb: finding key %d: %w", key, err)
	}
	return recordToDocument(rec)
}

// GetByKeys returns the documents matching any of the given keys, in key
// order. Missing keys are skipped.
func (s *Store) GetByKeys(ctx context.Context, keys []int64) ([]data.Document, error) {
	cursor, err := s.coll.Find(ctx,
		bson.M{"key": bson.M{"$in": keys}},
		options.Find().SetSort(bson.D{{Key: "key", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("mongodb: finding keys: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []data.Document
	for cursor.Next(ctx) {
		var rec record
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("mongodb: decoding record: %w", err)
		}
		doc, err := recordToDocument(rec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongodb: reading records: %w", err)
	}
	return docs, nil
}

// FetchPage serves one page of the key index. It satisfies paging.FetchFunc.
func (s *Store) FetchPage(ctx context.Context, req paging.Request) (*paging.RawPage, error) {
	size := req.Size
	if size <= 0 {
		size = paging.DefaultPageSize
	}

	filter, backward, err := pageFilter(req)
	if err != nil {
		return nil, err
	}

	sortDir := 1
	if backward {
		sortDir = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "key", Value: sortDir}}).
		SetLimit(int64(size) + 1)

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fetchError(err)
	}
	defer cursor.Close(ctx)

	var recs []record
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fetchError(err)
	}

	more := len(recs) > size
	if more {
		recs = recs[:size]
	}
	if backward {
		reverse(recs)
	}

	page := &paging.RawPage{}
	for _, rec := range recs {
		doc, err := recordToDocument(rec)
		if err != nil {
			return nil, err
		}
		page.Entries = append(page.Entries, paging.RawEntry{Key: doc.Key, Data: doc.Data})
	}
	if len(recs) == 0 {
		return page, nil
	}

	first, last := recs[0].Key, recs[len(recs)-1].Key
	if backward {
		if more {
			page.Before = paging.CursorAt(paging.EncodeCursor(first))
		}
		if req.Before != nil {
			page.After = paging.CursorAt(paging.EncodeCursor(last))
		}
	} else {
		if more {
			page.After = paging.CursorAt(paging.EncodeCursor(last))
		}
		if req.After != nil {
			page.Before = paging.CursorAt(paging.EncodeCursor(first))
		}
	}
	return page, nil
}

// Close disconnects from the server.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// pageFilter builds the keyset condition for one page request and reports
// whether the scan runs backward.
func pageFilter(req paging.Request) (bson.M, bool, error) {
	if req.After != nil && req.Before != nil {
		return nil, false, errors.New("mongodb: after and before cursors are mutually exclusive")
	}

	cond := bson.M{}
	if req.After != nil {
		key, err := paging.DecodeCursor(*req.After)
		if err != nil {
			return nil, false, err
		}
		cond["$gt"] = key
	}
	if req.Before != nil {
		key, err := paging.DecodeCursor(*req.Before)
		if err != nil {
			return nil, false, err
		}
		cond["$lt"] = key
	}
	if req.Bound != nil {
		key, err := paging.DecodeCursor(*req.Bound)
		if err != nil {
			return nil, false, err
		}
		cond["$lte"] = key
	}

	filter := bson.M{}
	if len(cond) > 0 {
		filter["key"] = cond
	}
	backward := req.Before != nil || (req.Reverse && req.After == nil)
	return filter, backward, nil
}

// fetchError classifies a query failure for the iterator: network and
// timeout failures are worth retrying, rejected requests are not.
func fetchError(err error) error {
	return &paging.FetchError{
		Transient: mongo.IsTimeout(err) || mongo.IsNetworkError(err),
		Err:       err,
	}
}

func recordToDocument(rec record) (*data.Document, error) {
	body, err := bson.MarshalExtJSON(rec.Data, false, false)
	if err != nil {
		return nil, fmt.Errorf("mongodb: encoding document %d body: %w", rec.Key, err)
	}
	return &data.Document{Key: rec.Key, Data: body}, nil
}

func reverse(recs []record) {
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}
}
