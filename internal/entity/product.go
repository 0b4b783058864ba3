package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a catalog item. OEM products are created on the fly from
// order entry and carry IsOEM=true so catalog views can filter them out.
type Product struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	NameKR       string `json:"name_kr" gorm:"size:200;not null"`
	NameEN       string `json:"name_en" gorm:"size:200"`
	Manufacturer string `json:"manufacturer" gorm:"size:200"`
	HSCode       string `json:"hs_code" gorm:"size:30"`
	Barcode      string `json:"barcode" gorm:"size:50"`
	Volume       string `json:"volume" gorm:"size:50"`

	RetailPrice float64 `json:"retail_price" gorm:"type:decimal(14,2);default:0"`
	SupplyPrice float64 `json:"supply_price" gorm:"type:decimal(14,2);default:0"`
	ExportPrice float64 `json:"export_price" gorm:"type:decimal(14,2);default:0"`
	BoxPrice    float64 `json:"box_price" gorm:"type:decimal(14,2);default:0"`
	SamplePrice float64 `json:"sample_price" gorm:"type:decimal(14,2);default:0"`

	InboxQuantity  float64 `json:"inbox_quantity" gorm:"type:decimal(10,2);default:0"`
	OutboxQuantity float64 `json:"outbox_quantity" gorm:"type:decimal(10,2);default:0"`
	OutboxSize     string  `json:"outbox_size" gorm:"size:100"`
	CBM            float64 `json:"cbm" gorm:"column:cbm;type:decimal(10,4);default:0"`
	GrossWeight    float64 `json:"gross_weight" gorm:"type:decimal(10,3);default:0"`
	NetWeight      float64 `json:"net_weight" gorm:"type:decimal(10,3);default:0"`

	ImageURL     string            `json:"image_url" gorm:"size:500"`
	IsOEM        bool              `json:"is_oem" gorm:"column:is_oem;default:false"`
	CustomFields datatypes.JSONMap `json:"custom_fields" gorm:"type:jsonb"`

	CreatedBy string     `json:"created_by" gorm:"size:64"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
