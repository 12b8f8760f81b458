package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/theme"
)

// Collection names.
const (
	collProjects = "projects"
	collThemes   = "themes"
)

// Connect opens a MongoDB connection and verifies it with a ping.
// The caller owns the returned database's client and should disconnect
// it on shutdown.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect to mongodb")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "ping mongodb")
	}

	return client.Database(dbName), nil
}

// MongoProjectStore stores projects in a MongoDB collection.
type MongoProjectStore struct {
	coll *mongo.Collection
}

// Ensure MongoProjectStore implements ProjectStore.
var _ ProjectStore = (*MongoProjectStore)(nil)

// NewMongoProjectStore creates a project store backed by the given database.
func NewMongoProjectStore(db *mongo.Database) *MongoProjectStore {
	return &MongoProjectStore{coll: db.Collection(collProjects)}
}

// EnsureIndexes creates the indexes the store relies on. Safe to call
// on every startup.
func (s *MongoProjectStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "updated_at", Value: -1}}},
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create project indexes")
	}
	return nil
}

// Save implements ProjectStore.
func (s *MongoProjectStore) Save(ctx context.Context, p *Project) error {
	exists, err := s.Exists(ctx, p.ProjectID)
	if err != nil {
		return err
	}
	if exists {
		return errors.New(errors.ErrCodeProjectExists, "project %s is already saved", p.ProjectID)
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Status = StatusActive
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New(errors.ErrCodeProjectExists, "project %s is already saved", p.ProjectID)
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "insert project")
	}
	return nil
}

// Get implements ProjectStore.
func (s *MongoProjectStore) Get(ctx context.Context, projectID string) (*Project, error) {
	var p Project
	err := s.coll.FindOne(ctx, bson.M{"project_id": projectID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeProjectNotFound, "project %s not found", projectID)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "find project")
	}
	return &p, nil
}

// Update implements ProjectStore.
func (s *MongoProjectStore) Update(ctx context.Context, projectID string, content ProjectContent, title string) (*Project, error) {
	set := bson.M{
		"content":    content,
		"updated_at": time.Now().UTC(),
	}
	if title != "" {
		set["title"] = title
	}

	var p Project
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"project_id": projectID, "status": StatusActive},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeProjectNotFound, "project %s not found", projectID)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "update project")
	}
	return &p, nil
}

// List implements ProjectStore.
func (s *MongoProjectStore) List(ctx context.Context, status Status) ([]Project, error) {
	cur, err := s.coll.Find(ctx,
		bson.M{"status": status},
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list projects")
	}
	defer cur.Close(ctx)

	var projects []Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode projects")
	}
	return projects, nil
}

// Trash implements ProjectStore.
func (s *MongoProjectStore) Trash(ctx context.Context, id string) (*Project, error) {
	return s.setStatus(ctx, id, StatusDeleted)
}

// Restore implements ProjectStore.
func (s *MongoProjectStore) Restore(ctx context.Context, id string) (*Project, error) {
	return s.setStatus(ctx, id, StatusActive)
}

func (s *MongoProjectStore) setStatus(ctx context.Context, id string, status Status) (*Project, error) {
	var p Project
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeProjectNotFound, "project %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "update project status")
	}
	return &p, nil
}

// Delete implements ProjectStore.
func (s *MongoProjectStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete project")
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeProjectNotFound, "project %s not found", id)
	}
	return nil
}

// Exists implements ProjectStore.
func (s *MongoProjectStore) Exists(ctx context.Context, projectID string) (bool, error) {
	count, err := s.coll.CountDocuments(ctx,
		bson.M{"project_id": projectID, "status": StatusActive},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "check project")
	}
	return count > 0, nil
}

// Recent implements ProjectStore.
func (s *MongoProjectStore) Recent(ctx context.Context, n int) ([]Project, error) {
	cur, err := s.coll.Find(ctx,
		bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "updated_at", Value: -1}}).
			SetLimit(int64(n)),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list recent projects")
	}
	defer cur.Close(ctx)

	var projects []Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode projects")
	}
	return projects, nil
}

// MongoThemeStore reads the theme catalog from a MongoDB collection.
type MongoThemeStore struct {
	coll *mongo.Collection
}

// Ensure MongoThemeStore implements ThemeStore.
var _ ThemeStore = (*MongoThemeStore)(nil)

// NewMongoThemeStore creates a theme store backed by the given database.
func NewMongoThemeStore(db *mongo.Database) *MongoThemeStore {
	return &MongoThemeStore{coll: db.Collection(collThemes)}
}

// ListActive implements ThemeStore.
func (s *MongoThemeStore) ListActive(ctx context.Context) ([]theme.Theme, error) {
	cur, err := s.coll.Find(ctx,
		bson.M{"is_active": true},
		options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list themes")
	}
	defer cur.Close(ctx)

	var themes []theme.Theme
	if err := cur.All(ctx, &themes); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode themes")
	}
	return themes, nil
}

// Get implements ThemeStore.
func (s *MongoThemeStore) Get(ctx context.Context, slug string) (*theme.Theme, error) {
	var t theme.Theme
	err := s.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeThemeNotFound, "theme %q not found", slug)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "find theme")
	}
	return &t, nil
}
