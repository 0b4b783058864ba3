package docgen

import (
	"math"
	"strings"
)

// usdUnitPrice resolves an item's USD unit price: a manually entered
// price wins, otherwise it is derived from the exchange rate, and
// without a usable rate it is zero.
func usdUnitPrice(it Item, rate float64) float64 {
	if it.UnitPriceUSD > 0 {
		return it.UnitPriceUSD
	}
	if rate > 0 {
		return it.UnitPrice / rate
	}
	return 0
}

// cellValue computes the initial text of one table cell at
// generation time. index is zero-based.
func cellValue(doc DocType, key string, index int, it Item, opts RenderOptions) string {
	if doc == DocTypePackingList {
		return packingCellValue(key, index, it)
	}
	return invoiceCellValue(key, index, it, opts)
}

func invoiceCellValue(key string, index int, it Item, opts RenderOptions) string {
	switch key {
	case "no":
		return FormatNumber(float64(index + 1))
	case "desc":
		return it.ProductName
	case "qty":
		if it.Quantity == 0 {
			return ""
		}
		return FormatNumber(it.Quantity)
	case "price_krw":
		return FormatNumber(it.UnitPrice)
	case CostColumnKey:
		return FormatNumber(it.AdditionalCost)
	case "amount_krw":
		amount := (it.UnitPrice + it.AdditionalCost) * it.Quantity
		return FormatNumber(math.Round(amount))
	case "hs_code":
		return it.HSCode
	case "barcode":
		return it.Barcode
	case "price_usd":
		return FormatFixed(usdUnitPrice(it, opts.ExchangeRate), 3)
	case "amount_usd":
		unitUSD := usdUnitPrice(it, opts.ExchangeRate)
		var costUSD float64
		if it.AdditionalCost != 0 && opts.ExchangeRate > 0 {
			costUSD = it.AdditionalCost / opts.ExchangeRate
		}
		return FormatFixed(it.Quantity*(unitUSD+costUSD), 3)
	default:
		return customValue(key, it)
	}
}

func packingCellValue(key string, index int, it Item) string {
	boxQty := BoxQuantity(it.Quantity, it.OutboxQuantity)
	switch key {
	case "no":
		return FormatNumber(float64(index + 1))
	case "desc":
		return it.ProductName
	case "qty":
		return FormatNumber(it.Quantity)
	case "outbox_qty":
		return FormatNumber(it.OutboxQuantity)
	case "box_qty":
		return FormatNumber(boxQty)
	case "gross_weight":
		return Fixed(it.GrossWeight, 2)
	case "total_gross_weight":
		return Fixed(boxQty*it.GrossWeight, 2)
	case "cbm":
		return Fixed(it.CBM, 3)
	case "total_cbm":
		return Fixed(boxQty*it.CBM, 3)
	default:
		return customValue(key, it)
	}
}

// customValue resolves a user-defined column for an item: an exact
// key match on the item wins, otherwise empty.
func customValue(key string, it Item) string {
	if v, ok := it.Custom[key]; ok {
		return v
	}
	if v, ok := it.Custom[strings.TrimPrefix(key, "custom_")]; ok {
		return v
	}
	return ""
}

// BoxQuantity is the number of cartons an order line fills. A zero
// outbox size yields zero rather than a division error.
func BoxQuantity(qty, outboxQty float64) float64 {
	if outboxQty <= 0 {
		return 0
	}
	return math.Ceil(qty / outboxQty)
}
