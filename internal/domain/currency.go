package domain

// Currency describes a supported display currency.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// Currencies is the fixed set offered for primary/secondary display.
var Currencies = []Currency{
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
}

// CurrencyByCode looks a currency up by its three-letter code.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// ValidCurrency reports whether code is in the supported set.
func ValidCurrency(code string) bool {
	_, ok := CurrencyByCode(code)
	return ok
}
