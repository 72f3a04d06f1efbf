package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections groups the handles the repositories are built on. A
// *mongo.Collection is safe for concurrent use, so one set is shared by all
// requests.
type Collections struct {
	Users      *mongo.Collection
	Posts      *mongo.Collection
	Categories *mongo.Collection
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB successfully")
	return client, nil
}

// NewCollections binds the collection handles for the given database.
func NewCollections(client *mongo.Client, dbName string) Collections {
	db := client.Database(dbName)
	return Collections{
		Users:      db.Collection("users"),
		Posts:      db.Collection("posts"),
		Categories: db.Collection("categories"),
	}
}

// EnsureIndexes creates the unique indexes backing username/email uniqueness.
// Duplicate inserts surface as duplicate-key errors the repositories map to
// conflicts.
func EnsureIndexes(ctx context.Context, c Collections) error {
	unique := options.Index().SetUnique(true)
	_, err := c.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = c.Posts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
	})
	return err
}

// Disconnect closes the client, tolerating a nil handle during failed startup.
func Disconnect(client *mongo.Client) error {
	if client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
