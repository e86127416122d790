package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/muambr/fashionscrape/models"
)

// currencyPrefix pairs a literal prefix with its currency code. Order
// matters: longer/more specific prefixes are tried first so "A$" is not
// mistaken for a bare "$".
type currencyPrefix struct {
	symbol   string
	currency string
}

var currencyPrefixes = []currencyPrefix{
	{"A$", "AUD"},
	{"C$", "CAD"},
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
	{"¥", "JPY"},
	{"₹", "INR"},
}

// symbolForCurrency is the inverse lookup used by Render.
var symbolForCurrency = map[string]string{
	"AUD": "A$",
	"CAD": "C$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// ParsePrice dispatches on the dynamic shape a price value can arrive in:
// a record (amount/currency already split out), a bare number, or a
// free-text string.
func ParsePrice(value interface{}) models.Price {
	switch v := value.(type) {
	case nil:
		return models.Price{}
	case map[string]interface{}:
		return parsePriceRecord(v)
	case float64:
		return amountPrice(int64(math.Floor(v)), "USD")
	case float32:
		return amountPrice(int64(math.Floor(float64(v))), "USD")
	case int:
		return amountPrice(int64(v), "USD")
	case int64:
		return amountPrice(v, "USD")
	case string:
		return ParsePriceString(v)
	default:
		return models.Price{}
	}
}

func parsePriceRecord(v map[string]interface{}) models.Price {
	p := models.Price{}
	if raw, ok := v["amount"]; ok {
		switch a := raw.(type) {
		case float64:
			amt := int64(a)
			p.Amount = &amt
		case int:
			amt := int64(a)
			p.Amount = &amt
		case int64:
			p.Amount = &a
		}
	}
	if raw, ok := v["currency"]; ok {
		if s, ok := raw.(string); ok && s != "" {
			p.Currency = &s
		}
	}
	return p
}

func amountPrice(amount int64, currency string) models.Price {
	c := currency
	return models.Price{Amount: &amount, Currency: &c}
}

// ParsePriceString parses a free-text price: strip the literal token "Was",
// detect a currency by prefix scan, strip the symbol, strip thousands
// separators, then parse as float (truncating) if a decimal point remains,
// else as a bare integer.
func ParsePriceString(s string) models.Price {
	cleaned := strings.ReplaceAll(s, "Was", "")
	cleaned = strings.TrimSpace(cleaned)

	currency := ""
	for _, cp := range currencyPrefixes {
		if idx := strings.Index(cleaned, cp.symbol); idx != -1 {
			currency = cp.currency
			cleaned = cleaned[:idx] + cleaned[idx+len(cp.symbol):]
			break
		}
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, "+")

	var amount int64
	var ok bool
	if strings.Contains(cleaned, ".") {
		f, err := strconv.ParseFloat(cleaned, 64)
		if err == nil {
			amount = int64(math.Trunc(f))
			ok = true
		}
	} else {
		digits := keepDigits(cleaned)
		if digits != "" {
			n, err := strconv.ParseInt(digits, 10, 64)
			if err == nil {
				amount = n
				ok = true
			}
		}
	}

	if !ok {
		return models.Price{}
	}
	if currency == "" {
		currency = "USD"
	}
	return amountPrice(amount, currency)
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Render renders a Price back into "<symbol><amount>" form matching the
// currency ParsePriceString would detect, so that
// ParsePriceString(Render(ParsePriceString(s))) round-trips.
func Render(p models.Price) string {
	if p.Amount == nil {
		return ""
	}
	currency := "USD"
	if p.Currency != nil && *p.Currency != "" {
		currency = *p.Currency
	}
	symbol, ok := symbolForCurrency[currency]
	if !ok {
		symbol = "$"
	}
	return fmt.Sprintf("%s%d", symbol, *p.Amount)
}
