package service

import (
	"github.com/daontrade/exportdesk/internal/repository"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
)

// Services bundles the business layer.
type Services struct {
	Auth       *AuthService
	Customer   *CustomerService
	Product    *ProductService
	Order      *OrderService
	Workflow   *WorkflowService
	Analytics  *AnalyticsService
	Document   *DocumentService
	Exhibition *ExhibitionService
	Settings   *SettingsService
	Asset      *AssetService
}

// Options carries the external dependencies services need beyond
// the repositories.
type Options struct {
	Redis       *redis.Client
	Minio       *minio.Client
	MinioBucket string
	JWTSecret   string
	JWTExpireH  int
	IntakeBase  string
}

func NewServices(repos *repository.Repositories, opts Options) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, opts.JWTSecret, opts.JWTExpireH),
		Customer:   NewCustomerService(repos.Customer, repos.Exhibition),
		Product:    NewProductService(repos.Product),
		Order:      NewOrderService(repos.Order, repos.Customer, repos.Product),
		Workflow:   NewWorkflowService(repos.Order),
		Analytics:  NewAnalyticsService(repos.Analytics, opts.Redis),
		Document:   NewDocumentService(repos.Order, repos.Settings),
		Exhibition: NewExhibitionService(repos.Exhibition, repos.Customer, opts.IntakeBase),
		Settings:   NewSettingsService(repos.Settings),
		Asset:      NewAssetService(opts.Minio, opts.MinioBucket),
	}
}
