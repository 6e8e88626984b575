package steam

// currencyCodes maps ISO 4217 codes to the numeric currency ids the market
// endpoint expects. Only the common ones are listed; an unknown code yields 0
// and the endpoint then picks its own currency.
var currencyCodes = map[string]int{
	"USD": 1,
	"GBP": 2,
	"EUR": 3,
	"CHF": 4,
	"RUB": 5,
	"PLN": 6,
	"BRL": 7,
	"JPY": 8,
	"NOK": 9,
	"CNY": 23,
	"AUD": 21,
	"CAD": 20,
}

func currencyCode(iso string) int { return currencyCodes[iso] }
