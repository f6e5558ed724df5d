// Package storage fronts the internal incident database: the incident
// collection consumed by downstream workers, the acknowledgement-email
// audit collection, and the blocklist collection backing the
// user-generated-domain exemption.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dcu-infosec/phishstory/internal/config"
)

// Lifecycle states of a local incident.
const (
	StatusOpen       = "OPEN"
	StatusPaused     = "PAUSED"
	StatusProcessing = "PROCESSING"
	StatusClosed     = "CLOSED"
)

// IncidentStore is the capability surface the engine and the admission
// policy need from the incident database. All operations are best-effort
// and surface failures to the caller; UserGenDomains is the exception and
// degrades to an empty set.
type IncidentStore interface {
	AddIncident(ctx context.Context, ticketID string, doc map[string]interface{}) error
	UpdateIncident(ctx context.Context, ticketID string, patch map[string]interface{}) error
	CloseIncident(ctx context.Context, ticketID string, fields map[string]interface{}) error
	GetIncident(ctx context.Context, ticketID string) (map[string]interface{}, error)
	FindIncidents(ctx context.Context, query map[string]interface{}, limit int64) ([]map[string]interface{}, error)
	AddEmailAck(ctx context.Context, source, email string) error
	UserGenDomains(ctx context.Context) map[string]struct{}
}

// MongoStore implements IncidentStore on a MongoDB database.
type MongoStore struct {
	incidents *mongo.Collection
	emails    *mongo.Collection
	blocklist *mongo.Collection
	logger    *slog.Logger

	mu      sync.RWMutex
	userGen map[string]struct{} // cached after the first successful load
}

// NewMongoStore connects to the configured database. The database name is
// taken from the path component of the Mongo URL.
func NewMongoStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("storage: connect: %w", err)
	}

	dbName, err := databaseFromURI(cfg.MongoURL)
	if err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &MongoStore{
		incidents: db.Collection(cfg.IncidentCollection),
		emails:    db.Collection(cfg.EmailCollection),
		blocklist: db.Collection(cfg.BlocklistCollection),
		logger:    logger,
	}, nil
}

func databaseFromURI(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("storage: parse mongo url: %w", err)
	}
	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return "", fmt.Errorf("storage: mongo url %q carries no database name", parsed.Host)
	}
	return name, nil
}

// AddIncident upserts the incident document keyed by ticket id.
func (s *MongoStore) AddIncident(ctx context.Context, ticketID string, doc map[string]interface{}) error {
	update := bson.M{
		"$set": bson.M(doc),
		"$setOnInsert": bson.M{
			"created":           time.Now().UTC(),
			"phishstory_status": StatusOpen,
		},
	}
	_, err := s.incidents.UpdateOne(ctx, bson.M{"ticketId": ticketID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("storage: add incident %s: %w", ticketID, err)
	}
	return nil
}

// UpdateIncident merge-patches fields of an existing incident.
func (s *MongoStore) UpdateIncident(ctx context.Context, ticketID string, patch map[string]interface{}) error {
	_, err := s.incidents.UpdateOne(ctx, bson.M{"ticketId": ticketID}, bson.M{"$set": bson.M(patch)})
	if err != nil {
		return fmt.Errorf("storage: update incident %s: %w", ticketID, err)
	}
	return nil
}

// CloseIncident marks the incident CLOSED, recording the supplied fields
// (close_reason) and the closure timestamp.
func (s *MongoStore) CloseIncident(ctx context.Context, ticketID string, fields map[string]interface{}) error {
	set := bson.M{
		"phishstory_status": StatusClosed,
		"closed":            time.Now().UTC(),
	}
	for k, v := range fields {
		set[k] = v
	}
	_, err := s.incidents.UpdateOne(ctx, bson.M{"ticketId": ticketID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("storage: close incident %s: %w", ticketID, err)
	}
	return nil
}

// GetIncident fetches a single incident; nil map when absent.
func (s *MongoStore) GetIncident(ctx context.Context, ticketID string) (map[string]interface{}, error) {
	var doc map[string]interface{}
	err := s.incidents.FindOne(ctx, bson.M{"ticketId": ticketID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: get incident %s: %w", ticketID, err)
	}
	return doc, nil
}

// FindIncidents runs an arbitrary filter with an explicit limit. Used by
// the domain-cap check with limit=5.
func (s *MongoStore) FindIncidents(ctx context.Context, query map[string]interface{}, limit int64) ([]map[string]interface{}, error) {
	cursor, err := s.incidents.Find(ctx, bson.M(query), options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("storage: find incidents: %w", err)
	}
	defer cursor.Close(ctx)

	var results []map[string]interface{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("storage: decode incidents: %w", err)
	}
	return results, nil
}

// AddEmailAck appends an acknowledgement address to the audit collection.
func (s *MongoStore) AddEmailAck(ctx context.Context, source, email string) error {
	_, err := s.emails.InsertOne(ctx, bson.M{
		"source":  source,
		"email":   email,
		"created": time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("storage: add email ack for %s: %w", source, err)
	}
	return nil
}

// UserGenDomains returns the blocklist entities categorized user_gen.
// Loaded on first call and cached indefinitely once a load succeeds; a
// failed load logs and yields an empty set so admission control proceeds
// without the exemption.
func (s *MongoStore) UserGenDomains(ctx context.Context) map[string]struct{} {
	s.mu.RLock()
	cached := s.userGen
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}

	cursor, err := s.blocklist.Find(ctx, bson.M{"category": "user_gen"})
	if err != nil {
		s.logger.Error("unable to load user gen domains from blocklist", "error", err)
		return map[string]struct{}{}
	}
	defer cursor.Close(ctx)

	var records []struct {
		Entity string `bson:"entity"`
	}
	if err := cursor.All(ctx, &records); err != nil {
		s.logger.Error("unable to decode user gen domains", "error", err)
		return map[string]struct{}{}
	}

	domains := make(map[string]struct{}, len(records))
	for _, r := range records {
		if r.Entity != "" {
			domains[r.Entity] = struct{}{}
		}
	}

	s.mu.Lock()
	s.userGen = domains
	s.mu.Unlock()
	return domains
}

var _ IncidentStore = (*MongoStore)(nil)
