package docgen

import "math"

// Row is the text content of one item row keyed by column key, the
// server-side view of an edited table row.
type Row map[string]string

// InvoiceTotals is the summary block under the invoice table.
type InvoiceTotals struct {
	TotalQty float64 `json:"total_qty"`
	TotalKRW float64 `json:"total_krw"`
	TotalUSD float64 `json:"total_usd"`
}

// PackingTotals feeds the packing list's footer row.
type PackingTotals struct {
	TotalQty         float64 `json:"total_qty"`
	TotalBoxes       float64 `json:"total_boxes"`
	TotalGrossWeight float64 `json:"total_gross_weight"`
	TotalCBM         float64 `json:"total_cbm"`
}

// RecalculateInvoice re-derives the amount cells of every row from
// the editable quantity and price cells, then sums the totals. Rows
// are updated in place. This is the edit-driven pass; generation-time
// totals come from the order items directly.
func RecalculateInvoice(rows []Row) InvoiceTotals {
	var t InvoiceTotals
	for _, row := range rows {
		qty := ParseNumber(row["qty"])
		t.TotalQty += qty

		priceKRW := ParseNumber(row["price_krw"])
		costKRW := ParseNumber(row[CostColumnKey])
		amountKRW := qty * (priceKRW + costKRW)
		t.TotalKRW += amountKRW

		priceUSD := ParseNumber(row["price_usd"])
		amountUSD := qty * priceUSD
		t.TotalUSD += amountUSD

		if _, ok := row["amount_krw"]; ok {
			row["amount_krw"] = FormatNumber(math.Round(amountKRW))
		}
		if _, ok := row["amount_usd"]; ok {
			row["amount_usd"] = FormatFixed(amountUSD, 3)
		}
	}
	return t
}

// RecalculatePacking re-derives the carton counts and per-row totals
// of every packing list row in place, then sums the footer totals.
func RecalculatePacking(rows []Row) PackingTotals {
	var t PackingTotals
	for _, row := range rows {
		qty := ParseNumber(row["qty"])
		outbox := ParseNumber(row["outbox_qty"])
		boxQty := BoxQuantity(qty, outbox)
		grossWeight := ParseNumber(row["gross_weight"])
		cbm := ParseNumber(row["cbm"])

		if _, ok := row["box_qty"]; ok {
			row["box_qty"] = FormatNumber(boxQty)
		}
		if _, ok := row["total_gross_weight"]; ok {
			row["total_gross_weight"] = Fixed(boxQty*grossWeight, 2)
		}
		if _, ok := row["total_cbm"]; ok {
			row["total_cbm"] = Fixed(boxQty*cbm, 3)
		}

		t.TotalQty += qty
		t.TotalBoxes += ParseNumber(row["box_qty"])
		t.TotalGrossWeight += ParseNumber(row["total_gross_weight"])
		t.TotalCBM += ParseNumber(row["total_cbm"])
	}
	return t
}

// FooterCell is one cell of the packing list's TOTAL footer row.
type FooterCell struct {
	Value   string `json:"value"`
	Align   string `json:"align"`
	Colspan int    `json:"colspan,omitempty"`
}

// PackingFooter lays out the footer row under the active columns:
// a TOTAL label spanning the leading columns, then one cell per
// remaining column carrying its total where one exists.
func PackingFooter(active ColumnConfig, t PackingTotals) []FooterCell {
	values := map[string]string{
		"qty":                FormatNumber(t.TotalQty),
		"box_qty":            FormatNumber(t.TotalBoxes),
		"total_gross_weight": Fixed(t.TotalGrossWeight, 2) + " KG",
		"total_cbm":          Fixed(t.TotalCBM, 3) + " CBM",
	}

	first := -1
	for i, col := range active {
		if _, ok := values[col.Key]; ok {
			first = i
			break
		}
	}
	if first == -1 {
		return []FooterCell{{Value: "TOTAL", Align: "text-center", Colspan: len(active)}}
	}

	var cells []FooterCell
	if first > 0 {
		cells = append(cells, FooterCell{Value: "TOTAL", Align: "text-center", Colspan: first})
	}
	for _, col := range active[first:] {
		cells = append(cells, FooterCell{
			Value: values[col.Key],
			Align: Alignment(DocTypePackingList, col.Key),
		})
	}
	return cells
}
