package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ashutoshmishr0/Blogify-backend/storage"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`

	ProfilePic       string `bson:"profilePic,omitempty" json:"profilePic,omitempty"`
	SecureProfilePic string `bson:"secureProfilePic,omitempty" json:"secureProfilePic,omitempty"`
	// Cloudinary public ID of the current profile picture. Older records may
	// lack it, in which case cleanup falls back to parsing the URL.
	ProfilePicID string `bson:"profilePicId,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Sanitized returns a copy with the password hash cleared. The json tag
// already hides it, but callers should never hold the hash past the lookup.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// ProfilePicRef resolves the MediaRef of the attached profile picture.
// Reports false when the user has none.
func (u User) ProfilePicRef() (storage.MediaRef, bool) {
	if u.ProfilePic == "" {
		return storage.MediaRef{}, false
	}
	ref := storage.MediaRef{URL: u.ProfilePic, SecureURL: u.SecureProfilePic, PublicID: u.ProfilePicID}
	if ref.PublicID == "" {
		ref.PublicID = storage.PublicIDFromURL(u.ProfilePic)
	}
	return ref, ref.PublicID != ""
}
