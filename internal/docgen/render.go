package docgen

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// renderColumn is an active column with its resolved alignment.
type renderColumn struct {
	Key   string
	Name  string
	Align string
}

type renderCell struct {
	Key   string
	Align string
	Value string
}

type renderRow struct {
	Index int
	Cells []renderCell
}

// contentField is one labelled editable line under the table.
type contentField struct {
	Key         string
	Label       string
	Value       template.HTML
	Placeholder string
}

type renderModel struct {
	Title      string
	TitleColor string

	Settings Settings
	Order    Order
	Customer Customer
	Bank     *Bank

	Columns []renderColumn
	Rows    []renderRow

	IsPacking   bool
	FooterCells []FooterCell

	ShowTotals bool
	TotalQty   string
	ShowKRW    bool
	TotalKRW   string
	ShowUSD    bool
	TotalUSD   string

	ContentFields []contentField
	CustomFields  []CustomField

	ShowStamp bool
	StampURL  string

	ToBlock       template.HTML
	SignatureName string
	DocNo         string
	DocDate       string
}

// Render produces the printable document body. The markup carries
// the data-key and data-content-key attributes the reconciliation
// pass reads back, so a render of unedited data followed by a
// reconcile returns the same state.
func Render(doc DocType, data Data, opts RenderOptions) (string, error) {
	if !doc.Valid() {
		return "", ErrUnknownDocType
	}
	if err := opts.Validate(doc); err != nil {
		return "", err
	}

	active := opts.Columns.Active()
	rows := BuildRows(doc, data.Items, opts)

	model := renderModel{
		Title:      doc.Title(),
		TitleColor: doc.TitleColor(),
		Settings:   data.Settings,
		Order:      data.Order,
		Customer:   data.Customer,
		Bank:       data.Settings.bank(opts.Bank),
		IsPacking:  doc == DocTypePackingList,
		ShowStamp:  opts.ShowStamp && data.Settings.StampURL != "",
		StampURL:   data.Settings.StampURL,
	}

	if model.IsPacking {
		// The packing list always shows the first bank account.
		model.Bank = &data.Settings.Bank1
		totals := RecalculatePacking(rows)
		model.FooterCells = PackingFooter(active, totals)
		model.DocNo = content(data, "doc_no", orderRef(data.Order))
		model.DocDate = content(data, "doc_date", data.Order.Date)
		model.SignatureName = content(data, "signature_name", data.Settings.CompanyName)
		model.ToBlock = template.HTML(content(data, "to_block", defaultToBlock(data.Customer)))
	} else {
		totals := invoiceTotals(data.Items, opts)
		model.ShowTotals = true
		model.TotalQty = FormatNumber(totals.TotalQty)
		model.ShowKRW = opts.Currency != CurrencyUSDOnly
		model.TotalKRW = "₩" + FormatNumber(math.Round(totals.TotalKRW))
		model.ShowUSD = opts.Currency != CurrencyKRWOnly
		model.TotalUSD = "$" + FormatFixed(totals.TotalUSD, 3)
		model.SignatureName = data.Settings.CompanyName
	}

	for _, col := range active {
		model.Columns = append(model.Columns, renderColumn{
			Key:   col.Key,
			Name:  col.Name,
			Align: Alignment(doc, col.Key),
		})
	}
	for i, row := range rows {
		rr := renderRow{Index: i}
		for _, col := range model.Columns {
			rr.Cells = append(rr.Cells, renderCell{Key: col.Key, Align: col.Align, Value: row[col.Key]})
		}
		model.Rows = append(model.Rows, rr)
	}

	model.ContentFields = contentFields(doc, data, opts)
	model.CustomFields = data.CustomFields

	var b strings.Builder
	if err := documentTmpl.Execute(&b, model); err != nil {
		return "", fmt.Errorf("render %s: %w", doc, err)
	}
	return b.String(), nil
}

// invoiceTotals sums the generation-time amounts so the summary
// block agrees with the cells it sits under. Edit-driven totals go
// through RecalculateInvoice instead.
func invoiceTotals(items []Item, opts RenderOptions) InvoiceTotals {
	var t InvoiceTotals
	for _, it := range items {
		t.TotalQty += it.Quantity
		t.TotalKRW += it.Quantity * (it.UnitPrice + it.AdditionalCost)

		unitUSD := usdUnitPrice(it, opts.ExchangeRate)
		var costUSD float64
		if it.AdditionalCost != 0 && opts.ExchangeRate > 0 {
			costUSD = it.AdditionalCost / opts.ExchangeRate
		}
		t.TotalUSD += it.Quantity * (unitUSD + costUSD)
	}
	return t
}

// BuildRows computes the initial cell text of every item under the
// active columns.
func BuildRows(doc DocType, items []Item, opts RenderOptions) []Row {
	active := opts.Columns.Active()
	rows := make([]Row, len(items))
	for i, it := range items {
		row := make(Row, len(active))
		for _, col := range active {
			row[col.Key] = cellValue(doc, col.Key, i, it, opts)
		}
		rows[i] = row
	}
	return rows
}

func content(data Data, key, fallback string) string {
	if v, ok := data.CustomContent[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func orderRef(o Order) string {
	if o.Number != "" {
		return o.Number
	}
	return "DOC-" + o.ID
}

func defaultToBlock(c Customer) string {
	return fmt.Sprintf("<p><strong>%s</strong></p><p>%s</p><p>ATTN: %s</p><p>Email: %s</p>",
		template.HTMLEscapeString(c.Name), template.HTMLEscapeString(c.Address),
		template.HTMLEscapeString(c.ContactName), template.HTMLEscapeString(c.Email))
}

func contentFields(doc DocType, data Data, opts RenderOptions) []contentField {
	fields := []contentField{
		{Key: "port_of_loading", Label: "Port of Loading:", Placeholder: "선적항을 입력하세요"},
		{Key: "final_destination", Label: "Final Destination:"},
		{Key: "carrier", Label: "Carrier:", Placeholder: "운송사를 입력하세요"},
		{Key: "payment_term", Label: "Payment Term:"},
		{Key: "delivery_term", Label: "Delivery Term:"},
	}
	defaults := map[string]string{
		"final_destination": data.Customer.Country,
		"payment_term":      "T/T in Advance",
		"delivery_term":     "FOB.",
	}
	for i := range fields {
		fields[i].Value = template.HTML(content(data, fields[i].Key, defaults[fields[i].Key]))
	}

	rate := opts.ExchangeRate
	if doc == DocTypePackingList {
		rate = data.Order.ExchangeRate
	}
	if doc == DocTypePackingList || (opts.ShowExchangeRate && rate > 0) {
		var def string
		if rate > 0 {
			def = fmt.Sprintf("1 USD = %s KRW", FormatNumber(rate))
		}
		fields = append(fields, contentField{
			Key:   "exchange_rate_info",
			Label: "Exchange rate:",
			Value: template.HTML(content(data, "exchange_rate_info", def)),
		})
	}
	return fields
}

var documentTmpl = template.Must(template.New("document").Parse(`<header class="flex justify-between items-start pb-4 mb-8 border-b-4 border-gray-200">
  <div>
    <h2 class="text-2xl font-bold text-gray-800" data-content-key="company_name" contenteditable="true">{{.Settings.CompanyName}}</h2>
    <p class="text-secondary" data-content-key="company_address" contenteditable="true">{{.Settings.Address}}</p>
    <p class="text-secondary" data-content-key="company_contact" contenteditable="true">Tel: {{.Settings.PhoneNumber}} / Email: {{.Settings.Email}}</p>
  </div>
  <div class="text-right">
    <h1 class="text-4xl font-bold" style="color: {{.TitleColor}} !important;">{{.Title}}</h1>
{{- if .IsPacking}}
    <p><span class="font-bold">No.:</span> <span data-content-key="doc_no" contenteditable="true">{{.DocNo}}</span></p>
    <p><span class="font-bold">Date:</span> <span data-content-key="doc_date" contenteditable="true">{{.DocDate}}</span></p>
{{- end}}
  </div>
</header>
<div class="grid grid-cols-2 gap-8 mb-8">
  <div class="border p-4 rounded-lg bg-light print-bg">
    <h3 class="font-bold mb-2 text-gray-600">TO:</h3>
{{- if .IsPacking}}
    <div data-content-key="to_block" contenteditable="true" class="space-y-1 text-secondary">{{.ToBlock}}</div>
{{- else}}
    <div contenteditable="true" class="space-y-1 text-secondary">
      <p><strong>{{.Customer.Name}}</strong></p><p>{{.Customer.Address}}</p>
    </div>
{{- end}}
  </div>
{{- if .Bank}}
  <div class="border p-4 rounded-lg bg-slate-50 print-bg" style="background-color: #F9FAFB !important;">
    <h3 class="font-bold mb-2 text-slate-600">BANK INFORMATION:</h3>
    <div contenteditable="true">
      <p><strong>BENEFICIARY:</strong> {{.Settings.CompanyName}}</p>
      <p><strong>BANK NAME:</strong> {{.Bank.Name}}</p>
      <p><strong>BANK ADDRESS:</strong> {{.Bank.Address}}</p>
      <p><strong>ACCOUNT NO.:</strong> {{.Bank.Account}}</p>
      <p><strong>SWIFT CODE:</strong> {{.Bank.Swift}}</p>
    </div>
  </div>
{{- end}}
</div>
<div class="overflow-x-auto">
  <table class="w-full text-left mb-8 border-collapse doc-table min-w-[800px]">
    <thead class="bg-gray-50"><tr>{{range .Columns}}<th class="p-2 border bg-gray-50 font-semibold text-gray-700 {{.Align}}">{{.Name}}</th>{{end}}</tr></thead>
    <tbody class="items-table-body">
{{- range .Rows}}
      <tr class="item-row" data-index="{{.Index}}">{{range .Cells}}<td class="p-2 border {{.Align}}" data-key="{{.Key}}" contenteditable="true">{{.Value}}</td>{{end}}<td class="p-2 border text-center no-print"><button data-action="remove-item-row" class="text-red-500">&times;</button></td></tr>
{{- end}}
    </tbody>
{{- if .IsPacking}}
    <tfoot class="bg-gray-50 font-bold" id="doc-table-foot"><tr class="font-bold bg-slate-50">{{range .FooterCells}}<td class="p-2 border {{.Align}}"{{if .Colspan}} colspan="{{.Colspan}}"{{end}}><strong>{{.Value}}</strong></td>{{end}}</tr></tfoot>
{{- end}}
  </table>
</div>
<div class="flex justify-end mb-8">
  <div id="doc-totals" class="w-1/2 rounded-lg overflow-hidden border">
{{- if .ShowTotals}}
    <div class="flex justify-between p-2 bg-slate-50"><span class="font-bold">TOTAL Q'TY</span><span>{{.TotalQty}}</span></div>
{{- if .ShowKRW}}
    <div class="flex justify-between p-2"><span class="font-bold">TOTAL (KRW)</span><span>{{.TotalKRW}}</span></div>
{{- end}}
{{- if .ShowUSD}}
    <div class="flex justify-between p-2"><span class="font-bold">TOTAL (USD)</span><span>{{.TotalUSD}}</span></div>
{{- end}}
{{- end}}
  </div>
</div>
<div class="mt-8 mb-8 space-y-2 w-full md:w-2/3 text-gray-700">
{{- range .ContentFields}}
  <div class="flex"><strong class="w-32 flex-shrink-0">{{.Label}}</strong><div data-content-key="{{.Key}}" contenteditable="true"{{if .Placeholder}} data-placeholder="{{.Placeholder}}"{{end}}>{{.Value}}</div></div>
{{- end}}
</div>
<div id="additional-fields-container" class="w-2/3">
{{- range .CustomFields}}
  <div class="flex mb-2 items-center custom-field-row"><strong class="w-32 flex-shrink-0" contenteditable="true">{{.Title}}</strong><div class="p-1 flex-grow" contenteditable="true">{{.Value}}</div><button data-action="remove-custom-field" class="no-print text-red-500 ml-2">&times;</button></div>
{{- end}}
</div>
<div class="no-print mt-4 space-x-2">
  <button data-action="add-custom-field" class="btn-secondary text-xs py-1 px-2">+ 필드 추가</button>
  <button data-action="add-item-row" class="btn-secondary text-xs py-1 px-2">+ 빈 행 추가</button>
</div>
<div class="mt-24 flex justify-end items-end h-32">
  <div class="text-right mr-4">
    <p class="font-bold text-lg" data-content-key="signature_name" contenteditable="true">{{.SignatureName}}</p>
    <p class="text-sm text-secondary">(Signature)</p>
  </div>
{{- if .ShowStamp}}
  <div><img src="{{.StampURL}}" alt="Company Stamp" class="object-contain" style="width: 6.9cm; height: 3.1cm;"></div>
{{- end}}
</div>
`))
