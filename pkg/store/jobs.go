package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/slide"
)

// JobStatus is the lifecycle state of a generation job.
type JobStatus string

// Generation job states, in order of progression. Failed jobs keep the
// error message for the client.
const (
	JobPending    JobStatus = "pending"
	JobGenerating JobStatus = "generating"
	JobImages     JobStatus = "image creation"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// Job tracks one asynchronous deck generation request. Clients poll the
// job until it completes, then read the generated slides.
type Job struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	ThemeSlug  string        `json:"theme_slug" bson:"theme_slug"`
	Mode       string        `json:"mode" bson:"mode"`
	SlideCount int           `json:"slide_count" bson:"slide_count"`
	Prompt     string        `json:"prompt,omitempty" bson:"prompt,omitempty"`
	Outline    []string      `json:"outline,omitempty" bson:"outline,omitempty"`
	Status     JobStatus     `json:"status" bson:"status"`
	Slides     []slide.Slide `json:"slides,omitempty" bson:"slides,omitempty"`
	Error      string        `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}

// JobStore is the interface for generation job storage backends.
type JobStore interface {
	// Create stores a new job in the pending state and assigns its ID.
	Create(ctx context.Context, j *Job) error

	// Get retrieves a job by ID.
	// Returns ErrCodeProjectNotFound if no job matches.
	Get(ctx context.Context, id string) (*Job, error)

	// SetStatus transitions a job. Slides and errMsg may be empty
	// depending on the target status.
	SetStatus(ctx context.Context, id string, status JobStatus, slides []slide.Slide, errMsg string) error

	// Last returns the most recently created job.
	Last(ctx context.Context) (*Job, error)
}

// MongoJobStore stores jobs in a MongoDB collection.
type MongoJobStore struct {
	coll *mongo.Collection
}

// Ensure MongoJobStore implements JobStore.
var _ JobStore = (*MongoJobStore)(nil)

const collJobs = "generation_jobs"

// NewMongoJobStore creates a job store backed by the given database.
func NewMongoJobStore(db *mongo.Database) *MongoJobStore {
	return &MongoJobStore{coll: db.Collection(collJobs)}
}

// Create implements JobStore.
func (s *MongoJobStore) Create(ctx context.Context, j *Job) error {
	now := time.Now().UTC()
	j.ID = uuid.NewString()
	j.Status = JobPending
	j.CreatedAt = now
	j.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, j); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "insert job")
	}
	return nil
}

// Get implements JobStore.
func (s *MongoJobStore) Get(ctx context.Context, id string) (*Job, error) {
	var j Job
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeProjectNotFound, "job %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "find job")
	}
	return &j, nil
}

// SetStatus implements JobStore.
func (s *MongoJobStore) SetStatus(ctx context.Context, id string, status JobStatus, slides []slide.Slide, errMsg string) error {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if slides != nil {
		set["slides"] = slides
	}
	if errMsg != "" {
		set["error"] = errMsg
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "update job")
	}
	if res.MatchedCount == 0 {
		return errors.New(errors.ErrCodeProjectNotFound, "job %s not found", id)
	}
	return nil
}

// Last implements JobStore.
func (s *MongoJobStore) Last(ctx context.Context) (*Job, error) {
	var j Job
	err := s.coll.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	).Decode(&j)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeProjectNotFound, "no jobs found")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "find last job")
	}
	return &j, nil
}

// MemoryJobStore is an in-memory JobStore for development and tests.
type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// Ensure MemoryJobStore implements JobStore.
var _ JobStore = (*MemoryJobStore)(nil)

// NewMemoryJobStore creates an empty in-memory job store.
func NewMemoryJobStore() *MemoryJobStore {
	return &MemoryJobStore{jobs: make(map[string]*Job)}
}

// Create implements JobStore.
func (s *MemoryJobStore) Create(_ context.Context, j *Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	j.ID = uuid.NewString()
	j.Status = JobPending
	j.CreatedAt = now
	j.UpdatedAt = now

	stored := *j
	s.jobs[j.ID] = &stored
	return nil
}

// Get implements JobStore.
func (s *MemoryJobStore) Get(_ context.Context, id string) (*Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeProjectNotFound, "job %s not found", id)
	}
	copied := *j
	return &copied, nil
}

// SetStatus implements JobStore.
func (s *MemoryJobStore) SetStatus(_ context.Context, id string, status JobStatus, slides []slide.Slide, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return errors.New(errors.ErrCodeProjectNotFound, "job %s not found", id)
	}
	j.Status = status
	if slides != nil {
		j.Slides = slides
	}
	if errMsg != "" {
		j.Error = errMsg
	}
	j.UpdatedAt = time.Now().UTC()
	return nil
}

// Last implements JobStore.
func (s *MemoryJobStore) Last(_ context.Context) (*Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var last *Job
	for _, j := range s.jobs {
		if last == nil || j.CreatedAt.After(last.CreatedAt) {
			last = j
		}
	}
	if last == nil {
		return nil, errors.New(errors.ErrCodeProjectNotFound, "no jobs found")
	}
	copied := *last
	return &copied, nil
}
