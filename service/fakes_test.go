package service_test

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ashutoshmishr0/Blogify-backend/apperr"
	"github.com/ashutoshmishr0/Blogify-backend/models"
	"github.com/ashutoshmishr0/Blogify-backend/repository"
	"github.com/ashutoshmishr0/Blogify-backend/storage"
)

// fakeStore records uploads and delete attempts. Failures are injected per
// call path to exercise the best-effort cleanup behavior.
type fakeStore struct {
	uploads        []storage.MediaRef
	deleted        []string
	deleteAttempts []string
	uploadErr      error
	deleteErr      error
	seq            int
}

func (f *fakeStore) Upload(_ context.Context, file io.Reader, opts storage.UploadOptions) (storage.MediaRef, error) {
	if f.uploadErr != nil {
		return storage.MediaRef{}, f.uploadErr
	}
	f.seq++
	ref := storage.MediaRef{
		URL:       fmt.Sprintf("http://res.cloudinary.test/%s/img%d.jpg", opts.Folder, f.seq),
		SecureURL: fmt.Sprintf("https://res.cloudinary.test/%s/img%d.jpg", opts.Folder, f.seq),
		PublicID:  fmt.Sprintf("%s/%simg%d", opts.Folder, opts.PublicIDPrefix, f.seq),
	}
	f.uploads = append(f.uploads, ref)
	return ref, nil
}

func (f *fakeStore) Delete(_ context.Context, publicID string) error {
	f.deleteAttempts = append(f.deleteAttempts, publicID)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, publicID)
	return nil
}

type fakePostRepo struct {
	posts     map[string]*models.Post
	createErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*models.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, p *models.Post) error {
	if r.createErr != nil {
		return r.createErr
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	r.posts[p.ID.Hex()] = &cp
	return nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id string) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) UpdateByID(_ context.Context, id string, fields map[string]any) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}
	for k, v := range fields {
		switch k {
		case "title":
			p.Title = v.(string)
		case "desc":
			p.Description = v.(string)
		case "categories":
			p.Categories = v.([]string)
		case "photo":
			p.Photo = v.(string)
		case "secureUrl":
			p.SecureURL = v.(string)
		case "photoId":
			p.PhotoID = v.(string)
		}
	}
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return apperr.New(apperr.NotFound, "post not found")
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) Find(_ context.Context, f repository.PostFilter) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range r.posts {
		switch {
		case f.Username != "":
			if p.Username != f.Username {
				continue
			}
		case f.Category != "":
			found := false
			for _, c := range p.Categories {
				if c == f.Category {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePostRepo) DeleteByUsername(_ context.Context, username string) (int64, error) {
	var n int64
	for id, p := range r.posts {
		if p.Username == username {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return apperr.New(apperr.Conflict, "username or email already in use")
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	cp := *u
	r.users[u.ID.Hex()] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "user not found")
}

func (r *fakeUserRepo) UpdateByID(_ context.Context, id string, fields map[string]any) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	for k, v := range fields {
		switch k {
		case "username":
			u.Username = v.(string)
		case "email":
			u.Email = v.(string)
		case "password":
			u.Password = v.(string)
		case "profilePic":
			u.ProfilePic = v.(string)
		case "secureProfilePic":
			u.SecureProfilePic = v.(string)
		case "profilePicId":
			u.ProfilePicID = v.(string)
		}
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return apperr.New(apperr.NotFound, "user not found")
	}
	delete(r.users, id)
	return nil
}
