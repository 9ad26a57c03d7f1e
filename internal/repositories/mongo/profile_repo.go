package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hirelens/hirelens/internal/models"
	"github.com/hirelens/hirelens/internal/query"
)

// UpsertOutcome reports what an Insert did. Duplicates are an expected
// outcome, not an error: the first write wins and later writers are
// told AlreadyExists.
type UpsertOutcome int

const (
	Inserted UpsertOutcome = iota
	AlreadyExists
	Failed
)

const searchLimit = 100

type ProfileRepository interface {
	Search(ctx context.Context, q query.Compound) ([]models.PersonProfile, error)
	Insert(ctx context.Context, p *models.PersonProfile) (UpsertOutcome, error)
	Replace(ctx context.Context, p *models.PersonProfile) error
	SetProfilePic(ctx context.Context, profileURL, picURL string) error
	EnsureIndexes(ctx context.Context) error
}

type profileRepo struct {
	col       *mongo.Collection
	searchIdx string
}

func NewProfileRepo(db *mongo.Database, collection, searchIdx string) ProfileRepository {
	return &profileRepo{col: db.Collection(collection), searchIdx: searchIdx}
}

// EnsureIndexes creates the unique index on the profile URL. Creation
// is idempotent: an index that already exists is not an error.
func (r *profileRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "linkedin_profile_url", Value: 1}},
		Options: options.Index().
			SetName("uniq_linkedin_profile_url").
			SetUnique(true),
	})
	return err
}

func (r *profileRepo) Search(ctx context.Context, q query.Compound) ([]models.PersonProfile, error) {
	pipeline := query.Pipeline(r.searchIdx, q, searchLimit)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PersonProfile
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *profileRepo) Insert(ctx context.Context, p *models.PersonProfile) (UpsertOutcome, error) {
	if p.LastUpdated.IsZero() {
		p.LastUpdated = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, p)
	return insertOutcome(err)
}

// insertOutcome maps an InsertOne error to an UpsertOutcome. A unique
// index violation means another writer got there first; that is
// AlreadyExists, not a failure.
func insertOutcome(err error) (UpsertOutcome, error) {
	if err == nil {
		return Inserted, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return AlreadyExists, nil
	}
	return Failed, err
}

// Replace swaps the stored document for the given profile, inserting
// when absent. Used by the freshness sweep to re-persist a re-hydrated
// record over its stale copy.
func (r *profileRepo) Replace(ctx context.Context, p *models.PersonProfile) error {
	if p.LastUpdated.IsZero() {
		p.LastUpdated = time.Now().UTC()
	}
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"linkedin_profile_url": p.LinkedinProfileURL},
		p,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *profileRepo) SetProfilePic(ctx context.Context, profileURL, picURL string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"linkedin_profile_url": profileURL},
		bson.M{"$set": bson.M{"profile_pic_url": picURL}},
	)
	return err
}
