package entity

import (
	"time"
)

// CompanySettings is a singleton row (ID=1) holding the exporter
// identity printed on every trade document, plus both bank accounts
// the invoice can reference.
type CompanySettings struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	CompanyName string `json:"company_name" gorm:"size:200"`
	Address     string `json:"address" gorm:"size:500"`
	PhoneNumber string `json:"phone_number" gorm:"size:30"`
	Email       string `json:"company_email" gorm:"column:company_email;size:100"`

	Bank1Name    string `json:"bank1_name" gorm:"size:100"`
	Bank1Address string `json:"bank1_address" gorm:"size:300"`
	Bank1Account string `json:"bank1_account" gorm:"size:100"`
	Bank1Swift   string `json:"bank1_swift" gorm:"size:50"`

	Bank2Name    string `json:"bank2_name" gorm:"size:100"`
	Bank2Address string `json:"bank2_address" gorm:"size:300"`
	Bank2Account string `json:"bank2_account" gorm:"size:100"`
	Bank2Swift   string `json:"bank2_swift" gorm:"size:50"`

	CompanyStampURL string `json:"company_stamp_url" gorm:"size:500"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanySettings) TableName() string {
	return "company_settings"
}

// Bank returns one bank block by choice ("bank1" or "bank2").
func (s CompanySettings) Bank(choice string) (name, address, account, swift string) {
	if choice == "bank2" {
		return s.Bank2Name, s.Bank2Address, s.Bank2Account, s.Bank2Swift
	}
	return s.Bank1Name, s.Bank1Address, s.Bank1Account, s.Bank1Swift
}
