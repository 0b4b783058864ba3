package entity

import "gorm.io/gorm"

// AutoMigrate migrates every table the back office uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Customer{},
		&Product{},
		&Order{},
		&OrderItem{},
		&Exhibition{},
		&ConsultationLog{},
		&CompanySettings{},
	)
}
