package repository

import (
	"github.com/daontrade/exportdesk/internal/entity"
	"gorm.io/gorm"
)

type ExhibitionRepository struct {
	db *gorm.DB
}

func NewExhibitionRepository(db *gorm.DB) *ExhibitionRepository {
	return &ExhibitionRepository{db: db}
}

func (r *ExhibitionRepository) Create(e *entity.Exhibition) error {
	return r.db.Create(e).Error
}

func (r *ExhibitionRepository) GetByID(id string) (*entity.Exhibition, error) {
	var e entity.Exhibition
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&e).Error
	return &e, err
}

func (r *ExhibitionRepository) Update(e *entity.Exhibition) error {
	return r.db.Save(e).Error
}

func (r *ExhibitionRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entity.Exhibition{}).Error
}

func (r *ExhibitionRepository) List() ([]entity.Exhibition, error) {
	var exhibitions []entity.Exhibition
	err := r.db.Where("deleted_at IS NULL").
		Order("start_date DESC").Find(&exhibitions).Error
	return exhibitions, err
}

// --- Consultation logs ---

func (r *ExhibitionRepository) CreateLog(l *entity.ConsultationLog) error {
	return r.db.Create(l).Error
}

func (r *ExhibitionRepository) GetLogByID(id string) (*entity.ConsultationLog, error) {
	var l entity.ConsultationLog
	err := r.db.Where("id = ?", id).First(&l).Error
	return &l, err
}

func (r *ExhibitionRepository) UpdateLog(l *entity.ConsultationLog) error {
	return r.db.Save(l).Error
}

func (r *ExhibitionRepository) DeleteLog(id string) error {
	return r.db.Where("id = ?", id).Delete(&entity.ConsultationLog{}).Error
}

func (r *ExhibitionRepository) ListLogs(exhibitionID string) ([]entity.ConsultationLog, error) {
	var logs []entity.ConsultationLog
	err := r.db.Where("exhibition_id = ?", exhibitionID).
		Order("created_at DESC").Find(&logs).Error
	return logs, err
}
