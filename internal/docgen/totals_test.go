package docgen

import "testing"

func TestRecalculateInvoice(t *testing.T) {
	rows := []Row{
		{
			"qty":                    "10",
			"price_krw":              "1,000",
			"custom_additional_cost": "50",
			"price_usd":              "0.769",
			"amount_krw":             "",
			"amount_usd":             "",
		},
		{
			"qty":                    "5",
			"price_krw":              "2,000",
			"custom_additional_cost": "0",
			"price_usd":              "1.538",
			"amount_krw":             "",
			"amount_usd":             "",
		},
	}

	totals := RecalculateInvoice(rows)

	if totals.TotalQty != 15 {
		t.Errorf("total qty = %v, want 15", totals.TotalQty)
	}
	if totals.TotalKRW != 20500 {
		t.Errorf("total krw = %v, want 20500", totals.TotalKRW)
	}
	if got := rows[0]["amount_krw"]; got != "10,500" {
		t.Errorf("row 0 amount_krw = %q, want 10,500", got)
	}
	if got := rows[0]["amount_usd"]; got != "7.690" {
		t.Errorf("row 0 amount_usd = %q, want 7.690", got)
	}
	if got := rows[1]["amount_krw"]; got != "10,000" {
		t.Errorf("row 1 amount_krw = %q, want 10,000", got)
	}
}

func TestRecalculateInvoiceUnparseableCellsBecomeZero(t *testing.T) {
	rows := []Row{
		{"qty": "abc", "price_krw": "1,000", "amount_krw": "999"},
	}
	totals := RecalculateInvoice(rows)
	if totals.TotalQty != 0 || totals.TotalKRW != 0 {
		t.Errorf("unparseable qty should contribute zero, got %+v", totals)
	}
	if got := rows[0]["amount_krw"]; got != "0" {
		t.Errorf("amount_krw = %q, want 0", got)
	}
}

func TestRecalculateInvoiceSkipsAbsentDerivedCells(t *testing.T) {
	rows := []Row{
		{"qty": "10", "price_krw": "100"},
	}
	RecalculateInvoice(rows)
	if _, ok := rows[0]["amount_krw"]; ok {
		t.Error("amount_krw cell should not be created when the column is hidden")
	}
}

func TestRecalculatePacking(t *testing.T) {
	rows := []Row{
		{
			"qty":                "10",
			"outbox_qty":         "4",
			"box_qty":            "",
			"gross_weight":       "2.00",
			"total_gross_weight": "",
			"cbm":                "0.012",
			"total_cbm":          "",
		},
		{
			"qty":                "7",
			"outbox_qty":         "0",
			"box_qty":            "",
			"gross_weight":       "1.50",
			"total_gross_weight": "",
			"cbm":                "0.020",
			"total_cbm":          "",
		},
	}

	totals := RecalculatePacking(rows)

	if got := rows[0]["box_qty"]; got != "3" {
		t.Errorf("row 0 box_qty = %q, want 3", got)
	}
	if got := rows[0]["total_gross_weight"]; got != "6.00" {
		t.Errorf("row 0 total_gross_weight = %q, want 6.00", got)
	}
	if got := rows[0]["total_cbm"]; got != "0.036" {
		t.Errorf("row 0 total_cbm = %q, want 0.036", got)
	}

	// outbox quantity 0 must not divide by zero
	if got := rows[1]["box_qty"]; got != "0" {
		t.Errorf("row 1 box_qty = %q, want 0", got)
	}
	if got := rows[1]["total_gross_weight"]; got != "0.00" {
		t.Errorf("row 1 total_gross_weight = %q, want 0.00", got)
	}

	if totals.TotalQty != 17 {
		t.Errorf("total qty = %v, want 17", totals.TotalQty)
	}
	if totals.TotalBoxes != 3 {
		t.Errorf("total boxes = %v, want 3", totals.TotalBoxes)
	}
	if totals.TotalGrossWeight != 6 {
		t.Errorf("total gross weight = %v, want 6", totals.TotalGrossWeight)
	}
}

func TestPackingFooter(t *testing.T) {
	active := DefaultColumns(DocTypePackingList, "").Active()
	totals := PackingTotals{TotalQty: 17, TotalBoxes: 3, TotalGrossWeight: 6, TotalCBM: 0.036}

	cells := PackingFooter(active, totals)

	// TOTAL label spans no/desc/outbox_qty, then one cell per column
	// from qty onwards.
	if len(cells) != 7 {
		t.Fatalf("expected 7 footer cells, got %d", len(cells))
	}
	if cells[0].Value != "TOTAL" || cells[0].Colspan != 3 {
		t.Errorf("label cell = %+v", cells[0])
	}
	wantValues := []string{"17", "3", "", "6.00 KG", "", "0.036 CBM"}
	for i, want := range wantValues {
		if got := cells[i+1].Value; got != want {
			t.Errorf("footer cell %d = %q, want %q", i+1, got, want)
		}
	}
}

func TestPackingFooterNoTotalledColumns(t *testing.T) {
	active := ColumnConfig{{Key: "no", Checked: true}, {Key: "desc", Checked: true}}
	cells := PackingFooter(active, PackingTotals{})
	if len(cells) != 1 || cells[0].Colspan != 2 || cells[0].Value != "TOTAL" {
		t.Errorf("unexpected footer: %+v", cells)
	}
}
