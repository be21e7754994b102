package repo

import "github.com/grocery-tracker/grocery-tracker/internal/models"

type UserRepository interface {
	CreateUser(u models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
	GetByID(id string) (models.User, error)
}
