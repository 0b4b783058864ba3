package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/repository"
	"github.com/daontrade/exportdesk/internal/testutil"
)

func setupCustomerService(t *testing.T) *CustomerService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewCustomerService(repository.NewCustomerRepository(db), repository.NewExhibitionRepository(db))
}

func TestCustomerCreateDefaultsSource(t *testing.T) {
	svc := setupCustomerService(t)

	c, err := svc.Create(&CreateCustomerRequest{Name: "  Hanoi Beauty  ", Email: "hb@example.com"}, "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Name != "Hanoi Beauty" {
		t.Errorf("Expected trimmed name, got %q", c.Name)
	}
	if c.AcquisitionSource != entity.SourceAdminManual {
		t.Errorf("Expected manual source, got %q", c.AcquisitionSource)
	}
}

func TestCustomerDuplicateEmail(t *testing.T) {
	svc := setupCustomerService(t)

	if _, err := svc.Create(&CreateCustomerRequest{Name: "First", Email: "same@example.com"}, ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := svc.Create(&CreateCustomerRequest{Name: "Second", Email: "same@example.com"}, "")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("Expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCustomerExcelRoundTrip(t *testing.T) {
	svc := setupCustomerService(t)

	if _, err := svc.Create(&CreateCustomerRequest{
		Name:            "Jakarta Beauty",
		ContactPerson:   "Sari",
		Email:           "sari@example.id",
		Country:         "Indonesia",
		HasBusinessCard: true,
	}, ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	buf, err := svc.ExportExcel()
	if err != nil {
		t.Fatalf("ExportExcel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Customers")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d", len(rows))
	}
	if rows[0][0] != "Company Name" {
		t.Errorf("Unexpected header: %v", rows[0])
	}
	if rows[1][0] != "Jakarta Beauty" || rows[1][6] != "Y" {
		t.Errorf("Unexpected exported row: %v", rows[1])
	}

	// importing the same sheet skips the duplicate instead of failing
	result, err := svc.ImportExcel(buf.Bytes(), "importer")
	if err != nil {
		t.Fatalf("ImportExcel: %v", err)
	}
	if result.Imported != 0 || result.Skipped != 1 {
		t.Errorf("Expected duplicate skipped, got %+v", result)
	}
}

func TestCustomerImportExcel(t *testing.T) {
	svc := setupCustomerService(t)

	f := excelize.NewFile()
	sheet := "Sheet1"
	headers := []string{"Company Name", "Contact Person", "Email", "Phone", "Country", "Address", "Business Card Received"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	row := []string{"Manila Cosmetics", "Joy", "joy@example.ph", "+63-2-1234", "Philippines", "Makati", "yes"}
	for i, v := range row {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, v)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	result, err := svc.ImportExcel(buf.Bytes(), "importer")
	if err != nil {
		t.Fatalf("ImportExcel: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("Expected 1 imported, got %+v", result)
	}

	customers, _, err := svc.List(repository.CustomerListParams{Keyword: "Manila"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("Expected imported customer, got %d", len(customers))
	}
	if !customers[0].HasBusinessCard {
		t.Errorf("Expected business card flag parsed from yes")
	}
	if customers[0].Country != "Philippines" {
		t.Errorf("Unexpected country: %q", customers[0].Country)
	}
}
