package docgen

import "testing"

func TestDefaultColumnsInvoice(t *testing.T) {
	cols := DefaultColumns(DocTypeInvoice, "")
	wantKeys := []string{"no", "desc", "hs_code", "barcode", "qty", "price_krw", "custom_additional_cost", "amount_krw", "price_usd", "amount_usd"}
	if len(cols) != len(wantKeys) {
		t.Fatalf("expected %d columns, got %d", len(wantKeys), len(cols))
	}
	for i, key := range wantKeys {
		if cols[i].Key != key {
			t.Errorf("column %d: expected key %q, got %q", i, key, cols[i].Key)
		}
	}
	if cols.Index("hs_code") < 0 || cols[cols.Index("hs_code")].Checked {
		t.Error("hs_code should start unchecked")
	}
	if got := cols[cols.Index("custom_additional_cost")].Name; got != "추가 비용" {
		t.Errorf("default cost label: got %q", got)
	}
}

func TestDefaultColumnsCostLabel(t *testing.T) {
	cols := DefaultColumns(DocTypeProforma, "운송비")
	if got := cols[cols.Index(CostColumnKey)].Name; got != "운송비" {
		t.Errorf("cost column label: got %q, want 운송비", got)
	}
}

func TestDefaultColumnsPackingList(t *testing.T) {
	cols := DefaultColumns(DocTypePackingList, "")
	wantKeys := []string{"no", "desc", "outbox_qty", "qty", "box_qty", "gross_weight", "total_gross_weight", "cbm", "total_cbm"}
	if len(cols) != len(wantKeys) {
		t.Fatalf("expected %d columns, got %d", len(wantKeys), len(cols))
	}
	for i, key := range wantKeys {
		if cols[i].Key != key {
			t.Errorf("column %d: expected key %q, got %q", i, key, cols[i].Key)
		}
		if !cols[i].Checked {
			t.Errorf("column %q should start checked", key)
		}
	}
	if got := cols[cols.Index("qty")].Name; got != "Order Qty" {
		t.Errorf("qty column name: got %q, want Order Qty", got)
	}
}

func TestCustomColumnKey(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Warehouse Zone", "custom_warehouse_zone"},
		{"  Lot  Number  ", "custom_lot_number"},
		{"MOQ", "custom_moq"},
		{"원산지", "custom_원산지"},
	}
	for _, c := range cases {
		if got := CustomColumnKey(c.name); got != c.want {
			t.Errorf("CustomColumnKey(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestAddCustomColumn(t *testing.T) {
	cols := DefaultColumns(DocTypeInvoice, "")
	cols, err := cols.AddCustom("Warehouse Zone")
	if err != nil {
		t.Fatalf("AddCustom: %v", err)
	}
	last := cols[len(cols)-1]
	if last.Key != "custom_warehouse_zone" || !last.IsCustom || !last.Checked {
		t.Errorf("unexpected custom column: %+v", last)
	}

	if _, err := cols.AddCustom("warehouse  zone"); err == nil {
		t.Error("expected duplicate key error")
	}
	if _, err := cols.AddCustom("   "); err == nil {
		t.Error("expected empty name error")
	}
}

func TestReorderColumns(t *testing.T) {
	cols := ColumnConfig{
		{Key: "a", Name: "A"}, {Key: "b", Name: "B"}, {Key: "c", Name: "C"},
	}
	out, err := cols.Reorder([]string{"c", "a", "b"})
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if out[0].Key != "c" || out[1].Key != "a" || out[2].Key != "b" {
		t.Errorf("unexpected order: %+v", out)
	}

	if _, err := cols.Reorder([]string{"a", "b"}); err == nil {
		t.Error("expected length mismatch error")
	}
	if _, err := cols.Reorder([]string{"a", "a", "b"}); err == nil {
		t.Error("expected duplicate key error")
	}
	if _, err := cols.Reorder([]string{"a", "b", "x"}); err == nil {
		t.Error("expected unknown key error")
	}
}

func TestAlignment(t *testing.T) {
	cases := []struct {
		doc  DocType
		key  string
		want string
	}{
		{DocTypeInvoice, "no", "text-center"},
		{DocTypeInvoice, "qty", "text-center"},
		{DocTypeInvoice, "price_krw", "text-right"},
		{DocTypeInvoice, "amount_usd", "text-right"},
		{DocTypeInvoice, "desc", "text-left"},
		{DocTypePackingList, "outbox_qty", "text-center"},
		{DocTypePackingList, "box_qty", "text-center"},
		{DocTypePackingList, "total_gross_weight", "text-right"},
		{DocTypePackingList, "cbm", "text-right"},
		{DocTypePackingList, "desc", "text-left"},
	}
	for _, c := range cases {
		if got := Alignment(c.doc, c.key); got != c.want {
			t.Errorf("Alignment(%s, %s) = %q, want %q", c.doc, c.key, got, c.want)
		}
	}
}

func TestActiveColumns(t *testing.T) {
	cols := DefaultColumns(DocTypeInvoice, "")
	active := cols.Active()
	if len(active) != len(cols)-1 {
		t.Fatalf("expected %d active columns, got %d", len(cols)-1, len(active))
	}
	for _, col := range active {
		if col.Key == "hs_code" {
			t.Error("unchecked column should not be active")
		}
	}
}
