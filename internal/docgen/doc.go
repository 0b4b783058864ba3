// Package docgen builds, recalculates and reconciles the HTML trade
// documents (commercial invoice, packing list, proforma invoice) the
// back office generates per order. It is free of database and HTTP
// concerns so the full pipeline can be exercised in isolation.
package docgen

import "errors"

// DocType identifies which trade document is being worked on.
type DocType string

const (
	DocTypeInvoice     DocType = "invoice"
	DocTypePackingList DocType = "packinglist"
	DocTypeProforma    DocType = "proforma"
)

// ErrUnknownDocType is returned for a document type the pipeline
// does not know how to build.
var ErrUnknownDocType = errors.New("unknown document type")

// ErrExchangeRateRequired is returned when a USD column or a USD
// currency mode is requested without a positive exchange rate.
var ErrExchangeRateRequired = errors.New("a valid exchange rate is required to display USD values")

// Valid reports whether d is one of the supported document types.
func (d DocType) Valid() bool {
	switch d {
	case DocTypeInvoice, DocTypePackingList, DocTypeProforma:
		return true
	}
	return false
}

// Title is the heading printed at the top right of the document.
func (d DocType) Title() string {
	switch d {
	case DocTypePackingList:
		return "PACKING LIST"
	case DocTypeProforma:
		return "PROFORMA INVOICE"
	default:
		return "COMMERCIAL INVOICE"
	}
}

// TitleColor is the print-safe color of the heading.
func (d DocType) TitleColor() string {
	switch d {
	case DocTypePackingList:
		return "#16A34A"
	case DocTypeProforma:
		return "#2563EB"
	default:
		return "#DC2626"
	}
}

// Invoicelike reports whether d uses the invoice column set and
// currency handling. The proforma invoice shares the invoice layout.
func (d DocType) Invoicelike() bool {
	return d == DocTypeInvoice || d == DocTypeProforma
}
