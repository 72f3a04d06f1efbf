package service

import "github.com/ashutoshmishr0/Blogify-backend/models"

// AccessGuard decides whether the acting identity owns the entity it is
// trying to mutate. Users are owned by id, posts by author username.
type AccessGuard interface {
	OwnsUser(actingUserID string, u *models.User) bool
	OwnsPost(actingUsername string, p *models.Post) bool
}

type OwnershipGuard struct{}

func (OwnershipGuard) OwnsUser(actingUserID string, u *models.User) bool {
	return actingUserID != "" && actingUserID == u.ID.Hex()
}

func (OwnershipGuard) OwnsPost(actingUsername string, p *models.Post) bool {
	return actingUsername != "" && actingUsername == p.Username
}
