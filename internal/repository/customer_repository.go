package repository

import (
	"github.com/daontrade/exportdesk/internal/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&c).Error
	return &c, err
}

func (r *CustomerRepository) GetByEmail(email string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.Where("email = ? AND deleted_at IS NULL", email).First(&c).Error
	return &c, err
}

func (r *CustomerRepository) Update(c *entity.Customer) error {
	return r.db.Save(c).Error
}

func (r *CustomerRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entity.Customer{}).Error
}

type CustomerListParams struct {
	Country string
	Source  string
	Keyword string
	Page    int
	Size    int
}

func (r *CustomerRepository) List(params CustomerListParams) ([]entity.Customer, int64, error) {
	query := r.db.Model(&entity.Customer{}).Where("deleted_at IS NULL")
	if params.Country == entity.CountryFilterEU {
		query = query.Where("country IN ?", entity.EUCountries)
	} else if params.Country != "" {
		query = query.Where("country = ?", params.Country)
	}
	if params.Source != "" {
		query = query.Where("acquisition_source = ?", params.Source)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR contact_person ILIKE ? OR email ILIKE ?", kw, kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var customers []entity.Customer
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&customers).Error
	return customers, total, err
}

// ListAll returns every live customer, for exports.
func (r *CustomerRepository) ListAll() ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.Where("deleted_at IS NULL").Order("created_at DESC").Find(&customers).Error
	return customers, err
}

// Countries returns the distinct countries in use, for the filter
// dropdown.
func (r *CustomerRepository) Countries() ([]string, error) {
	var countries []string
	err := r.db.Model(&entity.Customer{}).
		Where("deleted_at IS NULL AND country <> ''").
		Distinct().Order("country").Pluck("country", &countries).Error
	return countries, err
}
