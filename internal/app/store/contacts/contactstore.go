// internal/app/store/contacts/contactstore.go
package contacts

import (
	"context"
	"time"

	"github.com/dalemusser/orsonvision/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the name of the collection holding contact submissions.
const Collection = "contact_submissions"

// Store provides access to the contact_submissions collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new contacts store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Insert stores sub, assigning an ID and creation time when unset, and
// returns the stored document.
func (s *Store) Insert(ctx context.Context, sub models.ContactSubmission) (models.ContactSubmission, error) {
	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, sub); err != nil {
		return models.ContactSubmission{}, err
	}
	return sub, nil
}

// CountSince counts submissions created at or after t. The health check
// reports it for the last day.
func (s *Store) CountSince(ctx context.Context, t time.Time) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": t}})
}
