package repository

import (
	"github.com/daontrade/exportdesk/internal/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&p).Error
	return &p, err
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entity.Product{}).Error
}

type ProductListParams struct {
	Keyword    string
	IncludeOEM bool
	Page       int
	Size       int
}

func (r *ProductRepository) List(params ProductListParams) ([]entity.Product, int64, error) {
	query := r.db.Model(&entity.Product{}).Where("deleted_at IS NULL")
	if !params.IncludeOEM {
		query = query.Where("is_oem = false")
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name_kr ILIKE ? OR name_en ILIKE ? OR barcode ILIKE ?", kw, kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var products []entity.Product
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&products).Error
	return products, total, err
}

// ListAll returns every live catalog product, for exports. OEM
// synthesized rows stay out of the catalog export.
func (r *ProductRepository) ListAll() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Where("deleted_at IS NULL AND is_oem = false").
		Order("created_at DESC").Find(&products).Error
	return products, err
}
