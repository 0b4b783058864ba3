package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/repository"
)

type ExhibitionService struct {
	exhibitions *repository.ExhibitionRepository
	customers   *repository.CustomerRepository

	// intakeBase is the public URL prefix the QR code points at,
	// e.g. https://desk.example.com/intake.
	intakeBase string
}

func NewExhibitionService(exhibitions *repository.ExhibitionRepository, customers *repository.CustomerRepository, intakeBase string) *ExhibitionService {
	return &ExhibitionService{exhibitions: exhibitions, customers: customers, intakeBase: intakeBase}
}

type ExhibitionRequest struct {
	Name      string `json:"name" binding:"required"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

func (s *ExhibitionService) Create(req *ExhibitionRequest, createdBy string) (*entity.Exhibition, error) {
	e := &entity.Exhibition{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
		CreatedBy: createdBy,
	}
	if err := s.exhibitions.Create(e); err != nil {
		return nil, fmt.Errorf("create exhibition: %w", err)
	}
	return e, nil
}

func (s *ExhibitionService) Get(id string) (*entity.Exhibition, error) {
	return s.exhibitions.GetByID(id)
}

func (s *ExhibitionService) Update(id string, req *ExhibitionRequest) (*entity.Exhibition, error) {
	e, err := s.exhibitions.GetByID(id)
	if err != nil {
		return nil, err
	}
	e.Name = strings.TrimSpace(req.Name)
	e.Location = req.Location
	e.StartDate = req.StartDate
	e.EndDate = req.EndDate
	e.Notes = req.Notes
	if err := s.exhibitions.Update(e); err != nil {
		return nil, fmt.Errorf("update exhibition: %w", err)
	}
	return e, nil
}

func (s *ExhibitionService) Delete(id string) error {
	return s.exhibitions.Delete(id)
}

func (s *ExhibitionService) List() ([]entity.Exhibition, error) {
	return s.exhibitions.List()
}

// IntakeURL is the address the exhibition's QR code opens.
func (s *ExhibitionService) IntakeURL(exhibitionID string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.intakeBase, "/"), exhibitionID)
}

// QRCodePNG renders the intake URL as a PNG for booth signage.
func (s *ExhibitionService) QRCodePNG(exhibitionID string, size int) ([]byte, error) {
	if _, err := s.exhibitions.GetByID(exhibitionID); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(s.IntakeURL(exhibitionID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

type ConsultationLogRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
	Interest    string `json:"interest"`
	Notes       string `json:"notes"`

	// CreateCustomer also files the prospect as a customer sourced
	// from this exhibition.
	CreateCustomer bool `json:"create_customer"`
}

// AddLog records a booth consultation, optionally creating a customer
// tagged with the exhibition's quick-entry source.
func (s *ExhibitionService) AddLog(exhibitionID string, req *ConsultationLogRequest, createdBy string) (*entity.ConsultationLog, error) {
	if _, err := s.exhibitions.GetByID(exhibitionID); err != nil {
		return nil, err
	}

	log := &entity.ConsultationLog{
		ID:           uuid.New().String(),
		ExhibitionID: exhibitionID,
		CompanyName:  strings.TrimSpace(req.CompanyName),
		ContactName:  req.ContactName,
		Email:        strings.TrimSpace(req.Email),
		Phone:        req.Phone,
		Country:      req.Country,
		Interest:     req.Interest,
		Notes:        req.Notes,
	}

	if req.CreateCustomer {
		customer := &entity.Customer{
			ID:                uuid.New().String(),
			Name:              log.CompanyName,
			ContactPerson:     log.ContactName,
			Email:             log.Email,
			Phone:             log.Phone,
			Country:           log.Country,
			Notes:             log.Interest,
			AcquisitionSource: entity.SourceExhibitionPrefix + exhibitionID,
			CreatedBy:         createdBy,
		}
		if err := s.customers.Create(customer); err != nil {
			if !isUniqueViolation(err) {
				return nil, fmt.Errorf("create customer: %w", err)
			}
			if existing, lookupErr := s.customers.GetByEmail(log.Email); lookupErr == nil {
				customer = existing
			}
		}
		log.CustomerID = customer.ID
	}

	if err := s.exhibitions.CreateLog(log); err != nil {
		return nil, fmt.Errorf("create log: %w", err)
	}
	return log, nil
}

func (s *ExhibitionService) UpdateLog(logID string, req *ConsultationLogRequest) (*entity.ConsultationLog, error) {
	log, err := s.exhibitions.GetLogByID(logID)
	if err != nil {
		return nil, err
	}
	log.CompanyName = strings.TrimSpace(req.CompanyName)
	log.ContactName = req.ContactName
	log.Email = strings.TrimSpace(req.Email)
	log.Phone = req.Phone
	log.Country = req.Country
	log.Interest = req.Interest
	log.Notes = req.Notes
	if err := s.exhibitions.UpdateLog(log); err != nil {
		return nil, fmt.Errorf("update log: %w", err)
	}
	return log, nil
}

func (s *ExhibitionService) DeleteLog(logID string) error {
	return s.exhibitions.DeleteLog(logID)
}

func (s *ExhibitionService) Logs(exhibitionID string) ([]entity.ConsultationLog, error) {
	return s.exhibitions.ListLogs(exhibitionID)
}

// IntakeRequest is the public lead form behind the QR code.
type IntakeRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
	Interest    string `json:"interest"`
}

// Intake files a self-registered lead from the QR form as a customer
// sourced from the exhibition, plus a consultation log entry.
func (s *ExhibitionService) Intake(exhibitionID string, req *IntakeRequest) (*entity.Customer, error) {
	if _, err := s.exhibitions.GetByID(exhibitionID); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(req.CompanyName),
		ContactPerson:     req.ContactName,
		Email:             strings.TrimSpace(req.Email),
		Phone:             req.Phone,
		Country:           req.Country,
		Notes:             req.Interest,
		AcquisitionSource: entity.SourceQRExhibitionPrefix + exhibitionID,
	}
	if err := s.customers.Create(customer); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	log := &entity.ConsultationLog{
		ID:           uuid.New().String(),
		ExhibitionID: exhibitionID,
		CustomerID:   customer.ID,
		CompanyName:  customer.Name,
		ContactName:  customer.ContactPerson,
		Email:        customer.Email,
		Phone:        customer.Phone,
		Country:      customer.Country,
		Interest:     req.Interest,
	}
	if err := s.exhibitions.CreateLog(log); err != nil {
		return nil, fmt.Errorf("create log: %w", err)
	}
	return customer, nil
}
