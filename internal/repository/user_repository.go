package repository

import (
	"github.com/daontrade/exportdesk/internal/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&u).Error
	return &u, err
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("email = ? AND deleted_at IS NULL", email).First(&u).Error
	return &u, err
}

func (r *UserRepository) Update(u *entity.User) error {
	return r.db.Save(u).Error
}
