package service

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/repository"
)

type ProductService struct {
	products *repository.ProductRepository
}

func NewProductService(products *repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

type ProductRequest struct {
	NameKR       string `json:"name_kr" binding:"required"`
	NameEN       string `json:"name_en"`
	Manufacturer string `json:"manufacturer"`
	HSCode       string `json:"hs_code"`
	Barcode      string `json:"barcode"`
	Volume       string `json:"volume"`

	RetailPrice float64 `json:"retail_price"`
	SupplyPrice float64 `json:"supply_price"`
	ExportPrice float64 `json:"export_price"`
	BoxPrice    float64 `json:"box_price"`
	SamplePrice float64 `json:"sample_price"`

	InboxQuantity  float64 `json:"inbox_quantity"`
	OutboxQuantity float64 `json:"outbox_quantity"`
	OutboxSize     string  `json:"outbox_size"`
	CBM            float64 `json:"cbm"`
	GrossWeight    float64 `json:"gross_weight"`
	NetWeight      float64 `json:"net_weight"`

	ImageURL     string                 `json:"image_url"`
	CustomFields map[string]interface{} `json:"custom_fields"`
}

func (s *ProductService) Create(req *ProductRequest, createdBy string) (*entity.Product, error) {
	p := &entity.Product{ID: uuid.New().String(), CreatedBy: createdBy}
	applyProductRequest(p, req)
	if err := s.products.Create(p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *ProductService) Get(id string) (*entity.Product, error) {
	return s.products.GetByID(id)
}

func (s *ProductService) Update(id string, req *ProductRequest) (*entity.Product, error) {
	p, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	applyProductRequest(p, req)
	if err := s.products.Update(p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *ProductService) Delete(id string) error {
	return s.products.Delete(id)
}

func (s *ProductService) List(params repository.ProductListParams) ([]entity.Product, int64, error) {
	return s.products.List(params)
}

func applyProductRequest(p *entity.Product, req *ProductRequest) {
	p.NameKR = strings.TrimSpace(req.NameKR)
	p.NameEN = strings.TrimSpace(req.NameEN)
	p.Manufacturer = req.Manufacturer
	p.HSCode = req.HSCode
	p.Barcode = req.Barcode
	p.Volume = req.Volume
	p.RetailPrice = req.RetailPrice
	p.SupplyPrice = req.SupplyPrice
	p.ExportPrice = req.ExportPrice
	p.BoxPrice = req.BoxPrice
	p.SamplePrice = req.SamplePrice
	p.InboxQuantity = req.InboxQuantity
	p.OutboxQuantity = req.OutboxQuantity
	p.OutboxSize = req.OutboxSize
	p.CBM = req.CBM
	p.GrossWeight = req.GrossWeight
	p.NetWeight = req.NetWeight
	p.ImageURL = req.ImageURL
	if req.CustomFields != nil {
		p.CustomFields = datatypes.JSONMap(req.CustomFields)
	}
}

var productExportHeaders = []string{
	"Product Name (KR)", "Product Name (EN)", "Manufacturer", "HS Code", "Barcode", "Volume",
	"Retail Price", "Supply Price", "Export Price", "Box Price", "Sample Price",
	"Inbox Qty", "Outbox Qty", "Outbox Size", "CBM", "Gross Weight", "Net Weight",
}

// ExportExcel writes the catalog into an xlsx workbook. OEM rows are
// excluded.
func (s *ProductService) ExportExcel() (*bytes.Buffer, error) {
	products, err := s.products.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Products"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range productExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, p := range products {
		values := []interface{}{
			p.NameKR, p.NameEN, p.Manufacturer, p.HSCode, p.Barcode, p.Volume,
			p.RetailPrice, p.SupplyPrice, p.ExportPrice, p.BoxPrice, p.SamplePrice,
			p.InboxQuantity, p.OutboxQuantity, p.OutboxSize, p.CBM, p.GrossWeight, p.NetWeight,
		}
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

// ImportExcel loads catalog products from an uploaded workbook.
func (s *ProductService) ImportExcel(data []byte, createdBy string) (*ImportResult, error) {
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
		nameKR := cellAt(row, colOf(col, "product name (kr)"))
		if nameKR == "" {
			continue
		}
		p := &entity.Product{
			ID:             uuid.New().String(),
			NameKR:         nameKR,
			NameEN:         cellAt(row, colOf(col, "product name (en)")),
			Manufacturer:   cellAt(row, colOf(col, "manufacturer")),
			HSCode:         cellAt(row, colOf(col, "hs code")),
			Barcode:        cellAt(row, colOf(col, "barcode")),
			Volume:         cellAt(row, colOf(col, "volume")),
			RetailPrice:    parseFloat(cellAt(row, colOf(col, "retail price"))),
			SupplyPrice:    parseFloat(cellAt(row, colOf(col, "supply price"))),
			ExportPrice:    parseFloat(cellAt(row, colOf(col, "export price"))),
			BoxPrice:       parseFloat(cellAt(row, colOf(col, "box price"))),
			SamplePrice:    parseFloat(cellAt(row, colOf(col, "sample price"))),
			InboxQuantity:  parseFloat(cellAt(row, colOf(col, "inbox qty"))),
			OutboxQuantity: parseFloat(cellAt(row, colOf(col, "outbox qty"))),
			OutboxSize:     cellAt(row, colOf(col, "outbox size")),
			CBM:            parseFloat(cellAt(row, colOf(col, "cbm"))),
			GrossWeight:    parseFloat(cellAt(row, colOf(col, "gross weight"))),
			NetWeight:      parseFloat(cellAt(row, colOf(col, "net weight"))),
			CreatedBy:      createdBy,
		}
		if err := s.products.Create(p); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

func parseFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
