package docgen

import (
	"errors"
	"strings"
	"testing"
)

func sampleData() Data {
	return Data{
		Settings: Settings{
			CompanyName: "Daon Trade Co., Ltd.",
			Address:     "12 Teheran-ro, Gangnam-gu, Seoul",
			PhoneNumber: "+82-2-555-0100",
			Email:       "export@daontrade.example",
			StampURL:    "https://cdn.daontrade.example/stamp.png",
			Bank1:       Bank{Name: "KEB Hana Bank", Address: "Seoul", Account: "123-456", Swift: "KOEXKRSE"},
			Bank2:       Bank{Name: "Shinhan Bank", Address: "Seoul", Account: "789-000", Swift: "SHBKKRSE"},
		},
		Order: Order{
			ID:           "ord-1",
			Number:       "ORD-20250810-0001",
			Date:         "2025-08-10",
			ExchangeRate: 1300,
		},
		Customer: Customer{
			Name:        "Pacific Imports LLC",
			Address:     "100 Harbor Blvd, Long Beach, CA",
			Country:     "USA",
			ContactName: "J. Chen",
			Email:       "orders@pacific.example",
		},
		Items: []Item{
			{
				ProductName:    "Ginseng Extract 240g",
				Quantity:       10,
				UnitPrice:      1000,
				AdditionalCost: 50,
				HSCode:         "1302.19",
				Barcode:        "8801234567890",
				OutboxQuantity: 4,
				GrossWeight:    2.0,
				CBM:            0.012,
			},
		},
	}
}

func TestRenderInvoiceExampleScenario(t *testing.T) {
	data := sampleData()
	opts := DefaultOptions(DocTypeInvoice, "", 1300)

	html, err := Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	wantCells := map[string]string{
		"amount_krw": "10,500",
		"price_usd":  "0.769",
		"amount_usd": "8.077",
		"price_krw":  "1,000",
		"qty":        "10",
	}
	for key, want := range wantCells {
		needle := `data-key="` + key + `" contenteditable="true">` + want + `<`
		if !strings.Contains(html, needle) {
			t.Errorf("cell %s: expected %q in markup", key, want)
		}
	}

	if !strings.Contains(html, "COMMERCIAL INVOICE") {
		t.Error("missing title")
	}
	if !strings.Contains(html, "#DC2626") {
		t.Error("missing invoice accent color")
	}
	if !strings.Contains(html, "KEB Hana Bank") {
		t.Error("bank1 block should render by default")
	}
	if !strings.Contains(html, "TOTAL (KRW)") || !strings.Contains(html, "₩10,500") {
		t.Error("missing KRW total")
	}
	if !strings.Contains(html, "$8.077") {
		t.Error("missing USD total")
	}
	// hs_code starts unchecked, so its header must not render
	if strings.Contains(html, ">HS CODE<") {
		t.Error("unchecked column should not render")
	}
}

func TestRenderIdempotent(t *testing.T) {
	data := sampleData()
	opts := DefaultOptions(DocTypeInvoice, "", 1300)

	first, err := Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Error("two renders of identical input must produce identical markup")
	}
}

func TestRenderExchangeRateGuard(t *testing.T) {
	data := sampleData()

	opts := DefaultOptions(DocTypeInvoice, "", 0)
	if _, err := Render(DocTypeInvoice, data, opts); !errors.Is(err, ErrExchangeRateRequired) {
		t.Errorf("expected ErrExchangeRateRequired with both mode and rate 0, got %v", err)
	}

	opts.Currency = CurrencyUSDOnly
	if _, err := Render(DocTypeInvoice, data, opts); !errors.Is(err, ErrExchangeRateRequired) {
		t.Errorf("expected ErrExchangeRateRequired with usd_only and rate 0, got %v", err)
	}

	// krw_only with a USD column still needs a rate
	opts.Currency = CurrencyKRWOnly
	if _, err := Render(DocTypeInvoice, data, opts); !errors.Is(err, ErrExchangeRateRequired) {
		t.Errorf("expected ErrExchangeRateRequired with USD column checked, got %v", err)
	}

	// krw_only with every USD column unchecked is fine without a rate
	for i := range opts.Columns {
		if strings.Contains(opts.Columns[i].Key, "usd") {
			opts.Columns[i].Checked = false
		}
	}
	html, err := Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("krw_only without USD columns should render: %v", err)
	}
	if strings.Contains(html, "TOTAL (USD)") {
		t.Error("krw_only must not show a USD total")
	}
}

func TestRenderPackingListExampleScenario(t *testing.T) {
	data := sampleData()
	opts := DefaultOptions(DocTypePackingList, "", 0)

	html, err := Render(DocTypePackingList, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	wantCells := map[string]string{
		"box_qty":            "3",
		"gross_weight":       "2.00",
		"total_gross_weight": "6.00",
		"cbm":                "0.012",
		"total_cbm":          "0.036",
	}
	for key, want := range wantCells {
		needle := `data-key="` + key + `" contenteditable="true">` + want + `<`
		if !strings.Contains(html, needle) {
			t.Errorf("cell %s: expected %q in markup", key, want)
		}
	}

	if !strings.Contains(html, "PACKING LIST") || !strings.Contains(html, "#16A34A") {
		t.Error("missing packing list title or accent color")
	}
	// packing list always shows the first bank account
	if !strings.Contains(html, "KEB Hana Bank") {
		t.Error("packing list must show bank1")
	}
	if !strings.Contains(html, `id="doc-table-foot"`) {
		t.Error("missing footer row")
	}
	if !strings.Contains(html, "6.00 KG") || !strings.Contains(html, "0.036 CBM") {
		t.Error("missing footer totals")
	}
	if !strings.Contains(html, "ORD-20250810-0001") {
		t.Error("missing document number")
	}
}

func TestRenderProformaUsesInvoiceLayout(t *testing.T) {
	data := sampleData()
	opts := DefaultOptions(DocTypeProforma, "", 1300)

	html, err := Render(DocTypeProforma, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "PROFORMA INVOICE") || !strings.Contains(html, "#2563EB") {
		t.Error("missing proforma title or accent color")
	}
	if !strings.Contains(html, `data-key="amount_krw"`) {
		t.Error("proforma should use the invoice column set")
	}
}

func TestRenderBankChoices(t *testing.T) {
	data := sampleData()
	opts := DefaultOptions(DocTypeInvoice, "", 1300)

	opts.Bank = BankChoice2
	html, err := Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "Shinhan Bank") || strings.Contains(html, "KEB Hana Bank") {
		t.Error("bank2 choice should render only the second account")
	}

	opts.Bank = BankChoiceNone
	html, err = Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(html, "BANK INFORMATION") {
		t.Error("none choice should omit the bank block")
	}
}

func TestRenderCustomColumnFallback(t *testing.T) {
	data := sampleData()
	data.Items[0].Custom = map[string]string{
		"custom_lot_number": "LOT-77",
		"warehouse_zone":    "A-3",
	}

	opts := DefaultOptions(DocTypeInvoice, "", 1300)
	var err error
	opts.Columns, err = opts.Columns.AddCustom("Lot Number")
	if err != nil {
		t.Fatal(err)
	}
	opts.Columns, err = opts.Columns.AddCustom("Warehouse Zone")
	if err != nil {
		t.Fatal(err)
	}
	opts.Columns, err = opts.Columns.AddCustom("Unmapped Field")
	if err != nil {
		t.Fatal(err)
	}

	html, err := Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, `data-key="custom_lot_number" contenteditable="true">LOT-77<`) {
		t.Error("exact custom key lookup failed")
	}
	if !strings.Contains(html, `data-key="custom_warehouse_zone" contenteditable="true">A-3<`) {
		t.Error("stripped-prefix fallback lookup failed")
	}
	if !strings.Contains(html, `data-key="custom_unmapped_field" contenteditable="true"></td>`) {
		t.Error("unmapped custom key should render empty")
	}
}

func TestRenderManualUSDOverride(t *testing.T) {
	data := sampleData()
	data.Items[0].UnitPriceUSD = 0.900

	opts := DefaultOptions(DocTypeInvoice, "", 1300)
	html, err := Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, `data-key="price_usd" contenteditable="true">0.900<`) {
		t.Error("manual USD price should win over derived price")
	}
}

func TestRenderStampToggle(t *testing.T) {
	data := sampleData()
	opts := DefaultOptions(DocTypeInvoice, "", 1300)

	html, err := Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "Company Stamp") {
		t.Error("stamp should render when enabled and configured")
	}

	opts.ShowStamp = false
	html, err = Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(html, "Company Stamp") {
		t.Error("stamp should be omitted when disabled")
	}
}
