package service

import (
	"fmt"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/repository"
)

type SettingsService struct {
	settings *repository.SettingsRepository
}

func NewSettingsService(settings *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

func (s *SettingsService) Get() (*entity.CompanySettings, error) {
	return s.settings.Get()
}

type UpdateSettingsRequest struct {
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"company_email"`

	Bank1Name    string `json:"bank1_name"`
	Bank1Address string `json:"bank1_address"`
	Bank1Account string `json:"bank1_account"`
	Bank1Swift   string `json:"bank1_swift"`

	Bank2Name    string `json:"bank2_name"`
	Bank2Address string `json:"bank2_address"`
	Bank2Account string `json:"bank2_account"`
	Bank2Swift   string `json:"bank2_swift"`

	CompanyStampURL string `json:"company_stamp_url"`
}

func (s *SettingsService) Update(req *UpdateSettingsRequest) (*entity.CompanySettings, error) {
	settings := &entity.CompanySettings{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,

		Bank1Name:    req.Bank1Name,
		Bank1Address: req.Bank1Address,
		Bank1Account: req.Bank1Account,
		Bank1Swift:   req.Bank1Swift,

		Bank2Name:    req.Bank2Name,
		Bank2Address: req.Bank2Address,
		Bank2Account: req.Bank2Account,
		Bank2Swift:   req.Bank2Swift,

		CompanyStampURL: req.CompanyStampURL,
	}
	if err := s.settings.Upsert(settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
