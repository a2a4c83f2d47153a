package finplan

import "strings"

// europeanSuffixes lists the exchange suffixes mapped to the European
// market default. The suffix rule wins over the asset-type table, so a
// German-listed ETF projects with the European default, not the ETF one.
var europeanSuffixes = []string{".DE", ".F", ".PA", ".AS", ".L", ".MI", ".SW", ".VI"}

// Default expected annual returns used when neither an override nor a
// usable price history is available.
var (
	defaultEuropeanReturn = R(0.065)
	defaultETFReturn      = R(0.07)
	defaultStockReturn    = R(0.08)
	defaultCryptoReturn   = R(0.15)
	defaultCashReturn     = R(0)
)

// DefaultReturn returns the expected annual return for a holding with no
// explicit override. Symbols carry their exchange suffix verbatim, e.g.
// "SAP.DE" or "IWDA.AS".
func DefaultReturn(typ AssetType, symbol string) Rate {
	for _, suffix := range europeanSuffixes {
		if strings.HasSuffix(symbol, suffix) {
			return defaultEuropeanReturn
		}
	}
	switch typ {
	case Stock:
		return defaultStockReturn
	case Crypto:
		return defaultCryptoReturn
	case Cash:
		return defaultCashReturn
	default:
		// ETF and anything unclassified.
		return defaultETFReturn
	}
}
