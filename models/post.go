package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ashutoshmishr0/Blogify-backend/storage"
)

type Post struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Author reference by value. Posts are tied to their author through
	// username equality, not a normalized foreign key.
	Username    string `bson:"username" json:"username"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"desc" json:"desc"`

	Photo     string `bson:"photo,omitempty" json:"photo,omitempty"`
	SecureURL string `bson:"secureUrl,omitempty" json:"secureUrl,omitempty"`
	PhotoID   string `bson:"photoId,omitempty" json:"-"`

	Categories []string `bson:"categories,omitempty" json:"categories,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PhotoRef resolves the MediaRef of the attached image, falling back to URL
// parsing for records written before public IDs were stored.
func (p Post) PhotoRef() (storage.MediaRef, bool) {
	if p.Photo == "" {
		return storage.MediaRef{}, false
	}
	ref := storage.MediaRef{URL: p.Photo, SecureURL: p.SecureURL, PublicID: p.PhotoID}
	if ref.PublicID == "" {
		ref.PublicID = storage.PublicIDFromURL(p.Photo)
	}
	return ref, ref.PublicID != ""
}
