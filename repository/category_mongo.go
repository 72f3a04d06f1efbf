package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ashutoshmishr0/Blogify-backend/apperr"
	"github.com/ashutoshmishr0/Blogify-backend/models"
)

type MongoCategoryRepository struct {
	coll *mongo.Collection
}

func NewMongoCategoryRepository(coll *mongo.Collection) *MongoCategoryRepository {
	return &MongoCategoryRepository{coll: coll}
}

func (r *MongoCategoryRepository) Create(ctx context.Context, c *models.Category) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return apperr.Wrap(apperr.Unknown, "failed to create category", err)
	}
	return nil
}

func (r *MongoCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "failed to fetch categories", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "failed to decode categories", err)
	}
	return categories, nil
}
