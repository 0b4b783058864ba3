package repository

import "gorm.io/gorm"

// Repositories bundles every data access object.
type Repositories struct {
	User       *UserRepository
	Customer   *CustomerRepository
	Product    *ProductRepository
	Order      *OrderRepository
	Exhibition *ExhibitionRepository
	Settings   *SettingsRepository
	Analytics  *AnalyticsRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Customer:   NewCustomerRepository(db),
		Product:    NewProductRepository(db),
		Order:      NewOrderRepository(db),
		Exhibition: NewExhibitionRepository(db),
		Settings:   NewSettingsRepository(db),
		Analytics:  NewAnalyticsRepository(db),
	}
}
