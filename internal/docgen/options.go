package docgen

import "strings"

// Currency display modes.
const (
	CurrencyKRWOnly = "krw_only"
	CurrencyUSDOnly = "usd_only"
	CurrencyBoth    = "both"
)

// Bank block choices.
const (
	BankChoice1    = "bank1"
	BankChoice2    = "bank2"
	BankChoiceNone = "none"
)

// RenderOptions captures everything the options screen collects
// before a document is generated.
type RenderOptions struct {
	Columns          ColumnConfig `json:"columns"`
	Currency         string       `json:"currency"`
	ExchangeRate     float64      `json:"exchange_rate"`
	Bank             string       `json:"bank"`
	ShowStamp        bool         `json:"show_stamp"`
	ShowExchangeRate bool         `json:"show_exchange_rate"`
}

// DefaultOptions returns the options the screen opens with for a
// fresh document of the given type.
func DefaultOptions(doc DocType, costLabel string, exchangeRate float64) RenderOptions {
	opts := RenderOptions{
		Columns:          DefaultColumns(doc, costLabel),
		Currency:         CurrencyBoth,
		ExchangeRate:     exchangeRate,
		Bank:             BankChoice1,
		ShowStamp:        true,
		ShowExchangeRate: true,
	}
	if doc == DocTypePackingList {
		opts.Currency = ""
		opts.Bank = BankChoice1
	}
	return opts
}

// Validate refuses option sets that cannot produce a correct
// document. Generation must not proceed when USD figures are wanted
// without a usable exchange rate.
func (o RenderOptions) Validate(doc DocType) error {
	if !doc.Invoicelike() {
		return nil
	}
	needsUSD := o.Currency != CurrencyKRWOnly
	for _, col := range o.Columns.Active() {
		if strings.Contains(col.Key, "usd") {
			needsUSD = true
			break
		}
	}
	if needsUSD && o.ExchangeRate <= 0 {
		return ErrExchangeRateRequired
	}
	return nil
}
