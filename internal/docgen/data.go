package docgen

// Data is the order snapshot a document is generated from. The
// caller assembles it from storage; docgen never touches persistence.
type Data struct {
	Settings Settings
	Order    Order
	Customer Customer
	Items    []Item

	// CustomContent holds operator-edited free text regions keyed by
	// their data-content-key. Missing keys fall back to defaults.
	CustomContent map[string]string

	// CustomFields are extra label/value rows added below the
	// standard content block.
	CustomFields []CustomField
}

// Settings is the exporter identity printed on documents.
type Settings struct {
	CompanyName string
	Address     string
	PhoneNumber string
	Email       string
	StampURL    string
	Bank1       Bank
	Bank2       Bank
}

// Bank is one beneficiary account block.
type Bank struct {
	Name    string
	Address string
	Account string
	Swift   string
}

// Order carries the few order fields documents print.
type Order struct {
	ID                  string
	Number              string
	Date                string
	ExchangeRate        float64
	AdditionalCostLabel string
}

// Customer is the consignee block.
type Customer struct {
	Name        string
	Address     string
	Country     string
	ContactName string
	Email       string
}

// Item is one order line flattened for document rendering. A zero
// UnitPriceUSD means "derive from the exchange rate".
type Item struct {
	ProductName    string
	Quantity       float64
	UnitPrice      float64
	AdditionalCost float64
	UnitPriceUSD   float64
	HSCode         string
	Barcode        string
	OutboxQuantity float64
	GrossWeight    float64
	CBM            float64

	// Custom holds values for user-defined columns, keyed by the
	// full column key (custom_*).
	Custom map[string]string
}

// CustomField is one extra titled row under the content block.
type CustomField struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// bank returns the bank block for a choice, or nil for "none".
func (s Settings) bank(choice string) *Bank {
	switch choice {
	case BankChoice1:
		return &s.Bank1
	case BankChoice2:
		return &s.Bank2
	}
	return nil
}
