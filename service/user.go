package service

import (
	"context"
	"io"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ashutoshmishr0/Blogify-backend/apperr"
	"github.com/ashutoshmishr0/Blogify-backend/models"
	"github.com/ashutoshmishr0/Blogify-backend/repository"
	"github.com/ashutoshmishr0/Blogify-backend/storage"
)

type UserService struct {
	users repository.UserRepository
	posts repository.PostRepository
	store storage.AssetStore
	guard AccessGuard
}

func NewUserService(users repository.UserRepository, posts repository.PostRepository, store storage.AssetStore, guard AccessGuard) *UserService {
	return &UserService{users: users, posts: posts, store: store, guard: guard}
}

// UserPatch is a partial update; nil fields are left untouched. A non-nil
// password is re-hashed before it is written.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
}

// Register creates an account with a bcrypt-hashed password. Username/email
// collisions surface as conflicts via the unique indexes.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperr.New(apperr.Validation, "username, email and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "failed to hash password", err)
	}

	now := time.Now()
	user := &models.User{
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Authenticate checks the credentials and returns the account on success.
// Lookup misses and password mismatches report the same forbidden error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return nil, apperr.New(apperr.Forbidden, "wrong credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.New(apperr.Forbidden, "wrong credentials")
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Update applies a partial update to the caller's own account. A new profile
// picture replaces the old one: the old asset is deleted best-effort, then
// the new file is uploaded before the record is written.
func (s *UserService) Update(ctx context.Context, id, actingUserID string, patch UserPatch, file io.Reader) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.guard.OwnsUser(actingUserID, user) {
		return nil, apperr.New(apperr.Forbidden, "you can update only your account")
	}

	fields := map[string]any{}
	if patch.Username != nil {
		fields["username"] = *patch.Username
	}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Wrap(apperr.Unknown, "failed to hash password", err)
		}
		fields["password"] = string(hashed)
	}

	if file != nil {
		if ref, ok := user.ProfilePicRef(); ok {
			if err := s.store.Delete(ctx, ref.PublicID); err != nil {
				log.Printf("UpdateUser %s: failed to delete old profile picture %s: %v", id, ref.PublicID, err)
			}
		}

		ref, err := s.store.Upload(ctx, file, storage.ProfileImageOptions)
		if err != nil {
			return nil, err
		}
		fields["profilePic"] = ref.URL
		fields["secureProfilePic"] = ref.SecureURL
		fields["profilePicId"] = ref.PublicID
	}

	if len(fields) == 0 {
		sanitized := user.Sanitized()
		return &sanitized, nil
	}

	updated, err := s.users.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	sanitized := updated.Sanitized()
	return &sanitized, nil
}

// Delete removes the caller's own account. The profile picture is deleted
// best-effort, then every post authored by the account is removed before the
// user record itself. The cascade and the record delete are not atomic; a
// failure midway leaves already-deleted posts gone.
func (s *UserService) Delete(ctx context.Context, id, actingUserID string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.guard.OwnsUser(actingUserID, user) {
		return apperr.New(apperr.Forbidden, "you can delete only your account")
	}

	if ref, ok := user.ProfilePicRef(); ok {
		if err := s.store.Delete(ctx, ref.PublicID); err != nil {
			log.Printf("DeleteUser %s: failed to delete profile picture %s: %v", id, ref.PublicID, err)
		}
	}

	deleted, err := s.posts.DeleteByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if deleted > 0 {
		log.Printf("DeleteUser %s: removed %d posts by %s", id, deleted, user.Username)
	}

	return s.users.DeleteByID(ctx, id)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}
