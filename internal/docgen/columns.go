package docgen

import (
	"fmt"
	"strings"
)

// DefaultCostLabel is used when an order has no custom label for its
// additional cost column.
const DefaultCostLabel = "추가 비용"

// CostColumnKey is the reserved key of the relabelable cost column.
const CostColumnKey = "custom_additional_cost"

// Column is one entry of a document's column configuration. Order in
// the slice is display order.
type Column struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Checked  bool   `json:"checked"`
	IsCustom bool   `json:"is_custom"`
}

// ColumnConfig is an ordered column set for one document.
type ColumnConfig []Column

// DefaultColumns returns the initial column set for a document type.
// costLabel names the invoice's extra cost column; empty falls back
// to DefaultCostLabel.
func DefaultColumns(doc DocType, costLabel string) ColumnConfig {
	if costLabel == "" {
		costLabel = DefaultCostLabel
	}
	if doc == DocTypePackingList {
		return ColumnConfig{
			{Key: "no", Name: "No.", Checked: true},
			{Key: "desc", Name: "Description", Checked: true},
			{Key: "outbox_qty", Name: "Outbox Qty", Checked: true},
			{Key: "qty", Name: "Order Qty", Checked: true},
			{Key: "box_qty", Name: "Box Qty", Checked: true},
			{Key: "gross_weight", Name: "Gross Weight", Checked: true},
			{Key: "total_gross_weight", Name: "Total G.W.", Checked: true},
			{Key: "cbm", Name: "CBM", Checked: true},
			{Key: "total_cbm", Name: "Total CBM", Checked: true},
		}
	}
	return ColumnConfig{
		{Key: "no", Name: "No.", Checked: true},
		{Key: "desc", Name: "Description", Checked: true},
		{Key: "hs_code", Name: "HS CODE", Checked: false},
		{Key: "barcode", Name: "Barcode", Checked: true},
		{Key: "qty", Name: "Quantity", Checked: true},
		{Key: "price_krw", Name: "Unit Price (KRW)", Checked: true},
		{Key: CostColumnKey, Name: costLabel, Checked: true},
		{Key: "amount_krw", Name: "Amount (KRW)", Checked: true},
		{Key: "price_usd", Name: "Unit Price (USD)", Checked: true},
		{Key: "amount_usd", Name: "Amount (USD)", Checked: true},
	}
}

// CustomColumnKey derives the stable key of a user-added column from
// its display name: lowercased, whitespace runs become underscores.
func CustomColumnKey(name string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "_")
	return "custom_" + slug
}

// Alignment returns the CSS alignment class a column uses on a given
// document type.
func Alignment(doc DocType, key string) string {
	if doc == DocTypePackingList {
		switch key {
		case "no", "qty", "outbox_qty", "box_qty":
			return "text-center"
		}
		if strings.Contains(key, "weight") || strings.Contains(key, "cbm") {
			return "text-right"
		}
		return "text-left"
	}
	switch key {
	case "no", "qty":
		return "text-center"
	}
	if strings.Contains(key, "price") || strings.Contains(key, "amount") {
		return "text-right"
	}
	return "text-left"
}

// Active returns the checked columns in display order.
func (c ColumnConfig) Active() ColumnConfig {
	out := make(ColumnConfig, 0, len(c))
	for _, col := range c {
		if col.Checked {
			out = append(out, col)
		}
	}
	return out
}

// Index returns the position of key, or -1.
func (c ColumnConfig) Index(key string) int {
	for i, col := range c {
		if col.Key == key {
			return i
		}
	}
	return -1
}

// AddCustom appends a user-defined column. A duplicate key keeps the
// earlier column and reports an error.
func (c ColumnConfig) AddCustom(name string) (ColumnConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c, fmt.Errorf("column name is empty")
	}
	key := CustomColumnKey(name)
	if c.Index(key) >= 0 {
		return c, fmt.Errorf("column %q already exists", key)
	}
	return append(c, Column{Key: key, Name: name, Checked: true, IsCustom: true}), nil
}

// Remove drops the column with the given key, if present.
func (c ColumnConfig) Remove(key string) ColumnConfig {
	out := make(ColumnConfig, 0, len(c))
	for _, col := range c {
		if col.Key != key {
			out = append(out, col)
		}
	}
	return out
}

// Reorder rearranges the config to match the given key order. Every
// existing column must appear exactly once.
func (c ColumnConfig) Reorder(keys []string) (ColumnConfig, error) {
	if len(keys) != len(c) {
		return nil, fmt.Errorf("reorder wants %d keys, got %d", len(c), len(keys))
	}
	out := make(ColumnConfig, 0, len(c))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			return nil, fmt.Errorf("duplicate key %q", k)
		}
		seen[k] = true
		i := c.Index(k)
		if i < 0 {
			return nil, fmt.Errorf("unknown key %q", k)
		}
		out = append(out, c[i])
	}
	return out, nil
}
