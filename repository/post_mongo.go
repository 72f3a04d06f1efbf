package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ashutoshmishr0/Blogify-backend/apperr"
	"github.com/ashutoshmishr0/Blogify-backend/models"
)

type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewMongoPostRepository(coll *mongo.Collection) *MongoPostRepository {
	return &MongoPostRepository{coll: coll}
}

func (r *MongoPostRepository) Create(ctx context.Context, p *models.Post) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return apperr.Wrap(apperr.Unknown, "failed to create post", err)
	}
	return nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var p models.Post
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "failed to fetch post", err)
	}
	return &p, nil
}

func (r *MongoPostRepository) UpdateByID(ctx context.Context, id string, fields map[string]any) (*models.Post, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Post
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "failed to update post", err)
	}
	return &p, nil
}

func (r *MongoPostRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperr.Wrap(apperr.Unknown, "failed to delete post", err)
	}
	if result.DeletedCount == 0 {
		return apperr.New(apperr.NotFound, "post not found")
	}
	return nil
}

func postFilterQuery(f PostFilter) bson.M {
	switch {
	case f.Username != "":
		return bson.M{"username": f.Username}
	case f.Category != "":
		return bson.M{"categories": bson.M{"$in": []string{f.Category}}}
	default:
		return bson.M{}
	}
}

// Find returns every matching post. There is no pagination; callers get the
// full result set.
func (r *MongoPostRepository) Find(ctx context.Context, f PostFilter) ([]models.Post, error) {
	cursor, err := r.coll.Find(ctx, postFilterQuery(f))
	if err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "failed to fetch posts", err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "failed to decode posts", err)
	}
	return posts, nil
}

func (r *MongoPostRepository) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"username": username})
	if err != nil {
		return 0, apperr.Wrap(apperr.Unknown, "failed to delete posts", err)
	}
	return result.DeletedCount, nil
}
