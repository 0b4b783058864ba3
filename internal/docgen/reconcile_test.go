package docgen

import (
	"strings"
	"testing"
)

func TestReconcileColumnHeaders(t *testing.T) {
	saved := `
	<table class="doc-table">
	  <thead><tr>
	    <th> Description </th>
	    <th>Warehouse Zone</th>
	  </tr></thead>
	  <tbody class="items-table-body"></tbody>
	</table>`

	st, err := Reconcile(DocTypeInvoice, saved, "")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if len(st.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(st.Columns))
	}

	desc := st.Columns[0]
	if desc.Key != "desc" || desc.IsCustom || !desc.Checked {
		t.Errorf("Description header should recover the default key: %+v", desc)
	}
	zone := st.Columns[1]
	if zone.Key != "custom_warehouse_zone" || !zone.IsCustom || !zone.Checked {
		t.Errorf("unknown header should become a custom column: %+v", zone)
	}
}

func TestReconcileCostLabelHeader(t *testing.T) {
	saved := `<table class="doc-table"><thead><tr><th>운송비</th></tr></thead></table>`

	st, err := Reconcile(DocTypeInvoice, saved, "운송비")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if st.Columns[0].Key != CostColumnKey || st.Columns[0].IsCustom {
		t.Errorf("relabelled cost header should map back to %s: %+v", CostColumnKey, st.Columns[0])
	}

	// Without the order's label the same header is unrecognizable.
	st, err = Reconcile(DocTypeInvoice, saved, "")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if !st.Columns[0].IsCustom {
		t.Errorf("header with unknown label should be custom: %+v", st.Columns[0])
	}
}

func TestReconcileRowsAndContent(t *testing.T) {
	saved := `
	<table class="doc-table">
	  <thead><tr><th>Quantity</th><th>Unit Price (KRW)</th></tr></thead>
	  <tbody class="items-table-body">
	    <tr class="item-row" data-index="0">
	      <td data-key="qty" contenteditable="true">1,200</td>
	      <td data-key="price_krw" contenteditable="true">3,500</td>
	    </tr>
	  </tbody>
	</table>
	<div data-content-key="port_of_loading" contenteditable="true">Busan</div>
	<div data-content-key="payment_term" contenteditable="true">T/T in Advance</div>
	<div class="custom-field-row"><strong>Incoterms</strong><div>FOB Busan</div></div>`

	st, err := Reconcile(DocTypeInvoice, saved, "")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if len(st.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(st.Rows))
	}
	if got := st.Rows[0]["qty"]; got != "1,200" {
		t.Errorf("qty cell = %q", got)
	}
	if ParseNumber(st.Rows[0]["qty"]) != 1200 {
		t.Error("reconstructed cell text should parse comma-tolerantly")
	}

	if got := st.CustomContent["port_of_loading"]; got != "Busan" {
		t.Errorf("port_of_loading = %q", got)
	}
	if len(st.CustomFields) != 1 || st.CustomFields[0].Title != "Incoterms" || st.CustomFields[0].Value != "FOB Busan" {
		t.Errorf("custom fields = %+v", st.CustomFields)
	}
}

func TestRenderReconcileRoundTrip(t *testing.T) {
	data := sampleData()
	opts := DefaultOptions(DocTypeInvoice, "", 1300)

	html, err := Render(DocTypeInvoice, data, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	st, err := Reconcile(DocTypeInvoice, html, "")
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	active := opts.Columns.Active()
	if len(st.Columns) != len(active) {
		t.Fatalf("reconstructed %d columns, rendered %d", len(st.Columns), len(active))
	}
	for i, col := range active {
		if st.Columns[i].Key != col.Key {
			t.Errorf("column %d: reconstructed %q, rendered %q", i, st.Columns[i].Key, col.Key)
		}
		if st.Columns[i].IsCustom {
			t.Errorf("default column %q reconstructed as custom", col.Key)
		}
	}

	if len(st.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(st.Rows))
	}
	if got := st.Rows[0]["amount_krw"]; got != "10,500" {
		t.Errorf("amount_krw survived round trip as %q", got)
	}
}

func TestStripNoPrint(t *testing.T) {
	markup := `<div><p>keep</p><button class="no-print">remove</button><div class="no-print mt-4">also remove</div></div>`
	out, err := StripNoPrint(markup)
	if err != nil {
		t.Fatalf("StripNoPrint: %v", err)
	}
	if strings.Contains(out, "remove") {
		t.Errorf("no-print content survived: %s", out)
	}
	if !strings.Contains(out, "keep") {
		t.Errorf("printable content lost: %s", out)
	}
}
