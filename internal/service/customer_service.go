package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xuri/excelize/v2"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/repository"
)

// ErrDuplicateEmail reports a customer email that is already on file.
var ErrDuplicateEmail = errors.New("a customer with this email already exists")

type CustomerService struct {
	customers   *repository.CustomerRepository
	exhibitions *repository.ExhibitionRepository
}

func NewCustomerService(customers *repository.CustomerRepository, exhibitions *repository.ExhibitionRepository) *CustomerService {
	return &CustomerService{customers: customers, exhibitions: exhibitions}
}

type CreateCustomerRequest struct {
	Name              string `json:"name" binding:"required"`
	ContactPerson     string `json:"contact_person"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Country           string `json:"country"`
	Address           string `json:"address"`
	HasBusinessCard   bool   `json:"has_business_card"`
	AcquisitionSource string `json:"acquisition_source"`
	Notes             string `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name            *string `json:"name"`
	ContactPerson   *string `json:"contact_person"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Country         *string `json:"country"`
	Address         *string `json:"address"`
	HasBusinessCard *bool   `json:"has_business_card"`
	Notes           *string `json:"notes"`
}

func (s *CustomerService) Create(req *CreateCustomerRequest, createdBy string) (*entity.Customer, error) {
	source := req.AcquisitionSource
	if source == "" {
		source = entity.SourceAdminManual
	}
	c := &entity.Customer{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(req.Name),
		ContactPerson:     req.ContactPerson,
		Email:             strings.TrimSpace(req.Email),
		Phone:             req.Phone,
		Country:           req.Country,
		Address:           req.Address,
		HasBusinessCard:   req.HasBusinessCard,
		AcquisitionSource: source,
		Notes:             req.Notes,
		CreatedBy:         createdBy,
	}
	if err := s.customers.Create(c); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

func (s *CustomerService) Get(id string) (*entity.Customer, error) {
	return s.customers.GetByID(id)
}

func (s *CustomerService) Update(id string, req *UpdateCustomerRequest) (*entity.Customer, error) {
	c, err := s.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.ContactPerson != nil {
		c.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Country != nil {
		c.Country = *req.Country
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.HasBusinessCard != nil {
		c.HasBusinessCard = *req.HasBusinessCard
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if err := s.customers.Update(c); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return c, nil
}

func (s *CustomerService) Delete(id string) error {
	return s.customers.Delete(id)
}

func (s *CustomerService) List(params repository.CustomerListParams) ([]entity.Customer, int64, error) {
	return s.customers.List(params)
}

func (s *CustomerService) Countries() ([]string, error) {
	return s.customers.Countries()
}

// SourceLabel resolves an acquisition source value to a display
// label, looking up the exhibition name for event-sourced entries.
func (s *CustomerService) SourceLabel(source string) string {
	switch {
	case source == entity.SourceAdminManual:
		return "Manual entry"
	case strings.HasPrefix(source, entity.SourceExhibitionPrefix):
		return s.exhibitionLabel(strings.TrimPrefix(source, entity.SourceExhibitionPrefix), "Exhibition")
	case strings.HasPrefix(source, entity.SourceQRExhibitionPrefix):
		return s.exhibitionLabel(strings.TrimPrefix(source, entity.SourceQRExhibitionPrefix), "QR intake")
	default:
		return source
	}
}

func (s *CustomerService) exhibitionLabel(exhibitionID, kind string) string {
	ex, err := s.exhibitions.GetByID(exhibitionID)
	if err != nil {
		return kind
	}
	return fmt.Sprintf("%s (%s)", kind, ex.Name)
}

var customerExportHeaders = []string{
	"Company Name", "Contact Person", "Email", "Phone", "Country", "Address", "Business Card Received", "Notes",
}

// ExportExcel writes every customer into an xlsx workbook.
func (s *CustomerService) ExportExcel() (*bytes.Buffer, error) {
	customers, err := s.customers.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Customers"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range customerExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, c := range customers {
		card := "N"
		if c.HasBusinessCard {
			card = "Y"
		}
		values := []interface{}{c.Name, c.ContactPerson, c.Email, c.Phone, c.Country, c.Address, card, c.Notes}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportExcel loads customers from an uploaded workbook. Rows whose
// email is already on file are skipped rather than failing the batch.
func (s *CustomerService) ImportExcel(data []byte, createdBy string) (*ImportResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return &ImportResult{}, nil
	}

	col := headerIndex(rows[0])
	result := &ImportResult{}
	for i, row := range rows[1:] {
		name := cellAt(row, colOf(col, "company name"))
		if name == "" {
			continue
		}
		c := &entity.Customer{
			ID:                uuid.New().String(),
			Name:              name,
			ContactPerson:     cellAt(row, colOf(col, "contact person")),
			Email:             cellAt(row, colOf(col, "email")),
			Phone:             cellAt(row, colOf(col, "phone")),
			Country:           cellAt(row, colOf(col, "country")),
			Address:           cellAt(row, colOf(col, "address")),
			HasBusinessCard:   parseYesNo(cellAt(row, colOf(col, "business card received"))),
			Notes:             cellAt(row, colOf(col, "notes")),
			AcquisitionSource: entity.SourceAdminManual,
			CreatedBy:         createdBy,
		}
		if err := s.customers.Create(c); err != nil {
			if isUniqueViolation(err) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func colOf(idx map[string]int, name string) int {
	if i, ok := idx[name]; ok {
		return i
	}
	return -1
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1", "o":
		return true
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
