package entity

import (
	"time"
)

// Exhibition is a trade fair the business attends. Each exhibition
// publishes a QR code that opens a lead intake form for that event.
type Exhibition struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string     `json:"name" gorm:"size:200;not null"`
	Location  string     `json:"location" gorm:"size:200"`
	StartDate string     `json:"start_date" gorm:"size:10"`
	EndDate   string     `json:"end_date" gorm:"size:10"`
	Notes     string     `json:"notes" gorm:"type:text"`
	CreatedBy string     `json:"created_by" gorm:"size:64"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Logs []ConsultationLog `json:"logs,omitempty" gorm:"foreignKey:ExhibitionID"`
}

func (Exhibition) TableName() string {
	return "exhibitions"
}

// ConsultationLog records one booth consultation with a prospect.
type ConsultationLog struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ExhibitionID string    `json:"exhibition_id" gorm:"type:uuid;not null;index"`
	CustomerID   string    `json:"customer_id" gorm:"type:uuid;index"`
	CompanyName  string    `json:"company_name" gorm:"size:200"`
	ContactName  string    `json:"contact_name" gorm:"size:100"`
	Email        string    `json:"email" gorm:"size:100"`
	Phone        string    `json:"phone" gorm:"size:30"`
	Country      string    `json:"country" gorm:"size:100"`
	Interest     string    `json:"interest" gorm:"type:text"`
	Notes        string    `json:"notes" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ConsultationLog) TableName() string {
	return "consultation_logs"
}
