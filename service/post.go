// Package service coordinates entity records with their remotely hosted
// images. The database and the asset store share no transaction, so each
// mutation is an ordered sequence of steps: uploads happen before the record
// is written, old-asset cleanup is best-effort and never fails the request.
package service

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/ashutoshmishr0/Blogify-backend/apperr"
	"github.com/ashutoshmishr0/Blogify-backend/models"
	"github.com/ashutoshmishr0/Blogify-backend/repository"
	"github.com/ashutoshmishr0/Blogify-backend/storage"
)

type PostService struct {
	posts repository.PostRepository
	store storage.AssetStore
	guard AccessGuard
}

func NewPostService(posts repository.PostRepository, store storage.AssetStore, guard AccessGuard) *PostService {
	return &PostService{posts: posts, store: store, guard: guard}
}

type PostDraft struct {
	Username    string
	Title       string
	Description string
	Categories  []string
}

// PostPatch is a partial update; nil fields are left untouched.
type PostPatch struct {
	Title       *string
	Description *string
	Categories  []string
}

// Create uploads the image first when one is given, then persists the post.
// If the insert fails after a successful upload the asset is orphaned; there
// is no compensating delete.
func (s *PostService) Create(ctx context.Context, draft PostDraft, file io.Reader) (*models.Post, error) {
	if draft.Username == "" || draft.Title == "" {
		return nil, apperr.New(apperr.Validation, "username and title are required")
	}

	now := time.Now()
	post := &models.Post{
		Username:    draft.Username,
		Title:       draft.Title,
		Description: draft.Description,
		Categories:  draft.Categories,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if file != nil {
		ref, err := s.store.Upload(ctx, file, storage.PostImageOptions)
		if err != nil {
			return nil, err
		}
		post.Photo = ref.URL
		post.SecureURL = ref.SecureURL
		post.PhotoID = ref.PublicID
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies a partial update to the caller's own post. When a new image
// is supplied the old one is deleted best-effort before the new upload; a
// failed cleanup is logged and the update proceeds.
func (s *PostService) Update(ctx context.Context, id, actingUsername string, patch PostPatch, file io.Reader) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.guard.OwnsPost(actingUsername, post) {
		return nil, apperr.New(apperr.Forbidden, "you can update only your post")
	}

	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["desc"] = *patch.Description
	}
	if patch.Categories != nil {
		fields["categories"] = patch.Categories
	}

	if file != nil {
		if ref, ok := post.PhotoRef(); ok {
			if err := s.store.Delete(ctx, ref.PublicID); err != nil {
				log.Printf("UpdatePost %s: failed to delete old image %s: %v", id, ref.PublicID, err)
			}
		}

		ref, err := s.store.Upload(ctx, file, storage.PostImageOptions)
		if err != nil {
			return nil, err
		}
		fields["photo"] = ref.URL
		fields["secureUrl"] = ref.SecureURL
		fields["photoId"] = ref.PublicID
	}

	if len(fields) == 0 {
		return post, nil
	}
	return s.posts.UpdateByID(ctx, id, fields)
}

// Delete removes the caller's own post, deleting its image best-effort first.
func (s *PostService) Delete(ctx context.Context, id, actingUsername string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.guard.OwnsPost(actingUsername, post) {
		return apperr.New(apperr.Forbidden, "you can delete only your post")
	}

	if ref, ok := post.PhotoRef(); ok {
		if err := s.store.Delete(ctx, ref.PublicID); err != nil {
			log.Printf("DeletePost %s: failed to delete image %s: %v", id, ref.PublicID, err)
		}
	}

	return s.posts.DeleteByID(ctx, id)
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) List(ctx context.Context, filter repository.PostFilter) ([]models.Post, error) {
	return s.posts.Find(ctx, filter)
}
