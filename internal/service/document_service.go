package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/daontrade/exportdesk/internal/docgen"
	"github.com/daontrade/exportdesk/internal/entity"
	"github.com/daontrade/exportdesk/internal/repository"
)

// ErrNoSavedDocument reports an export or reopen against a document
// that has never been saved.
var ErrNoSavedDocument = errors.New("no saved document for this order")

type DocumentService struct {
	orders   *repository.OrderRepository
	settings *repository.SettingsRepository
}

func NewDocumentService(orders *repository.OrderRepository, settings *repository.SettingsRepository) *DocumentService {
	return &DocumentService{orders: orders, settings: settings}
}

// savedColumn maps a document type to its markup column on orders.
func savedColumn(doc docgen.DocType) (string, error) {
	switch doc {
	case docgen.DocTypeInvoice:
		return "saved_invoice_html", nil
	case docgen.DocTypePackingList:
		return "saved_packinglist_html", nil
	case docgen.DocTypeProforma:
		return "saved_proforma_html", nil
	}
	return "", docgen.ErrUnknownDocType
}

func savedHTML(o *entity.Order, doc docgen.DocType) string {
	switch doc {
	case docgen.DocTypeInvoice:
		return o.SavedInvoiceHTML
	case docgen.DocTypePackingList:
		return o.SavedPackingListHTML
	case docgen.DocTypeProforma:
		return o.SavedProformaHTML
	}
	return ""
}

// Open starts a document session for an order: saved markup reopens
// on the document view with its state reconstructed, otherwise the
// options form comes up with defaults.
func (s *DocumentService) Open(orderID string, doc docgen.DocType) (*docgen.Session, error) {
	order, data, err := s.assemble(orderID)
	if err != nil {
		return nil, err
	}
	return docgen.Open(doc, data, savedHTML(order, doc))
}

// Generate renders a fresh document from the submitted options.
func (s *DocumentService) Generate(orderID string, doc docgen.DocType, opts docgen.RenderOptions) (string, error) {
	_, data, err := s.assemble(orderID)
	if err != nil {
		return "", err
	}
	return docgen.Render(doc, data, opts)
}

// RecalculateResult carries the rewritten derived cells and totals
// after an in-place edit.
type RecalculateResult struct {
	Rows          []docgen.Row          `json:"rows"`
	Invoice       *docgen.InvoiceTotals `json:"invoice,omitempty"`
	Packing       *docgen.PackingTotals `json:"packing,omitempty"`
	PackingFooter []docgen.FooterCell   `json:"packing_footer,omitempty"`
}

// Recalculate reruns the derived cells and totals over edited rows.
// Columns is needed for the packing footer layout and may be empty
// for invoices.
func (s *DocumentService) Recalculate(doc docgen.DocType, rows []docgen.Row, columns docgen.ColumnConfig) (*RecalculateResult, error) {
	if !doc.Valid() {
		return nil, docgen.ErrUnknownDocType
	}
	result := &RecalculateResult{Rows: rows}
	if doc.Invoicelike() {
		totals := docgen.RecalculateInvoice(rows)
		result.Invoice = &totals
		return result, nil
	}
	totals := docgen.RecalculatePacking(rows)
	result.Packing = &totals
	result.PackingFooter = docgen.PackingFooter(columns.Active(), totals)
	return result, nil
}

// Save strips the screen-only controls out of the markup and persists
// it on the order.
func (s *DocumentService) Save(orderID string, doc docgen.DocType, markup string) error {
	column, err := savedColumn(doc)
	if err != nil {
		return err
	}
	cleaned, err := docgen.StripNoPrint(markup)
	if err != nil {
		return fmt.Errorf("strip markup: %w", err)
	}
	return s.orders.SaveDocumentHTML(orderID, column, cleaned)
}

// Clear deletes the saved markup so the next open starts from the
// options form.
func (s *DocumentService) Clear(orderID string, doc docgen.DocType) error {
	column, err := savedColumn(doc)
	if err != nil {
		return err
	}
	return s.orders.ClearDocumentHTML(orderID, column)
}

// ExportExcel writes the saved document's table into an xlsx workbook
// from its reconstructed state.
func (s *DocumentService) ExportExcel(orderID string, doc docgen.DocType) (*bytes.Buffer, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	saved := savedHTML(order, doc)
	if saved == "" {
		return nil, ErrNoSavedDocument
	}
	state, err := docgen.Reconcile(doc, saved, order.AdditionalCostLabel)
	if err != nil {
		return nil, fmt.Errorf("reconcile markup: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := doc.Title()
	f.SetSheetName("Sheet1", sheet)

	active := state.Columns.Active()
	for i, col := range active {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col.Name)
	}
	for r, row := range state.Rows {
		for c, col := range active {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, row[col.Key])
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func bankBlock(settings *entity.CompanySettings, choice string) docgen.Bank {
	name, address, account, swift := settings.Bank(choice)
	return docgen.Bank{Name: name, Address: address, Account: account, Swift: swift}
}

// assemble loads the order with its relations and flattens it into
// the snapshot the renderer works from.
func (s *DocumentService) assemble(orderID string) (*entity.Order, docgen.Data, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, docgen.Data{}, err
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, docgen.Data{}, fmt.Errorf("load settings: %w", err)
	}

	data := docgen.Data{
		Settings: docgen.Settings{
			CompanyName: settings.CompanyName,
			Address:     settings.Address,
			PhoneNumber: settings.PhoneNumber,
			Email:       settings.Email,
			StampURL:    settings.CompanyStampURL,
			Bank1:       bankBlock(settings, "bank1"),
			Bank2:       bankBlock(settings, "bank2"),
		},
		Order: docgen.Order{
			ID:                  order.ID,
			Number:              order.OrderNumber,
			Date:                order.OrderDate,
			ExchangeRate:        order.ExchangeRate,
			AdditionalCostLabel: order.AdditionalCostLabel,
		},
	}
	if order.Customer != nil {
		data.Customer = docgen.Customer{
			Name:        order.Customer.Name,
			Address:     order.Customer.Address,
			Country:     order.Customer.Country,
			ContactName: order.Customer.ContactPerson,
			Email:       order.Customer.Email,
		}
	}

	data.Items = make([]docgen.Item, 0, len(order.Items))
	for _, it := range order.Items {
		item := docgen.Item{
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			AdditionalCost: it.AdditionalCost,
		}
		if it.UnitPriceUSD != nil {
			item.UnitPriceUSD = *it.UnitPriceUSD
		}
		if p := it.Product; p != nil {
			if item.ProductName == "" {
				item.ProductName = p.NameEN
			}
			if item.ProductName == "" {
				item.ProductName = p.NameKR
			}
			item.HSCode = p.HSCode
			item.Barcode = p.Barcode
			item.OutboxQuantity = p.OutboxQuantity
			item.GrossWeight = p.GrossWeight
			item.CBM = p.CBM
			if len(p.CustomFields) > 0 {
				item.Custom = make(map[string]string, len(p.CustomFields))
				for name, value := range p.CustomFields {
					item.Custom[docgen.CustomColumnKey(name)] = fmt.Sprint(value)
				}
			}
		}
		data.Items = append(data.Items, item)
	}
	return order, data, nil
}
