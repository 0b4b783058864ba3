package entity

import (
	"time"
)

// Acquisition sources. Exhibition-sourced customers carry the
// exhibition ID as a suffix so reports can resolve the event name.
const (
	SourceAdminManual        = "ADMIN_MANUAL_ENTRY"
	SourceExhibitionPrefix   = "EXHIBITION_QUICK_ENTRY_"
	SourceQRExhibitionPrefix = "QR_EXHIBITION_"
)

// DepartmentEmailCC is copied on outbound customer mail.
const DepartmentEmailCC = "export@daontrade.co.kr"

// CountryFilterEU selects every EU member state in list filters.
const CountryFilterEU = "eu"

// AllCountries backs the country dropdowns on customer, order, and
// consultation forms.
var AllCountries = []string{
	"South Korea", "Japan", "China", "Taiwan", "Hong Kong", "Singapore",
	"Vietnam", "Thailand", "Indonesia", "Malaysia", "Philippines", "India",
	"United States", "Canada", "Mexico", "Brazil", "Chile",
	"United Kingdom", "Norway", "Switzerland", "Turkey",
	"United Arab Emirates", "Saudi Arabia", "Israel",
	"Australia", "New Zealand", "Russia", "Kazakhstan", "Mongolia",
	"Austria", "Belgium", "Bulgaria", "Croatia", "Cyprus", "Czechia",
	"Denmark", "Estonia", "Finland", "France", "Germany", "Greece",
	"Hungary", "Ireland", "Italy", "Latvia", "Lithuania", "Luxembourg",
	"Malta", "Netherlands", "Poland", "Portugal", "Romania", "Slovakia",
	"Slovenia", "Spain", "Sweden",
}

// EUCountries is the EU member subset of AllCountries.
var EUCountries = []string{
	"Austria", "Belgium", "Bulgaria", "Croatia", "Cyprus", "Czechia",
	"Denmark", "Estonia", "Finland", "France", "Germany", "Greece",
	"Hungary", "Ireland", "Italy", "Latvia", "Lithuania", "Luxembourg",
	"Malta", "Netherlands", "Poland", "Portugal", "Romania", "Slovakia",
	"Slovenia", "Spain", "Sweden",
}

// IsEUCountry reports whether country is an EU member state.
func IsEUCountry(country string) bool {
	for _, c := range EUCountries {
		if c == country {
			return true
		}
	}
	return false
}

// Customer is a buyer the trading desk exports to.
type Customer struct {
	ID                string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name              string     `json:"name" gorm:"size:200;not null"`
	ContactPerson     string     `json:"contact_person" gorm:"size:100"`
	Email             string     `json:"email" gorm:"size:100;uniqueIndex"`
	Phone             string     `json:"phone" gorm:"size:30"`
	Country           string     `json:"country" gorm:"size:100;index"`
	Address           string     `json:"address" gorm:"size:500"`
	HasBusinessCard   bool       `json:"has_business_card" gorm:"default:false"`
	AcquisitionSource string     `json:"acquisition_source" gorm:"size:100"`
	Notes             string     `json:"notes" gorm:"type:text"`
	CreatedBy         string     `json:"created_by" gorm:"size:64"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	DeletedAt         *time.Time `json:"deleted_at" gorm:"index"`
}

func (Customer) TableName() string {
	return "customers"
}
