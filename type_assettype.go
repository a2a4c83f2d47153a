package finplan

import (
	"encoding/json"
	"fmt"
)

// AssetType classifies a holding for return defaults and growth rules.
type AssetType int

const (
	// Stock is a single listed company share.
	Stock AssetType = iota
	// ETF is an exchange traded fund.
	ETF
	// Crypto is a spot cryptocurrency position.
	Crypto
	// Cash is uninvested money. Cash never grows in a projection.
	Cash
)

func (t AssetType) String() string {
	switch t {
	case Stock:
		return "stock"
	case ETF:
		return "etf"
	case Crypto:
		return "crypto"
	case Cash:
		return "cash"
	default:
		return "unknown"
	}
}

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch s {
	case "stock":
		return Stock, nil
	case "etf":
		return ETF, nil
	case "crypto":
		return Crypto, nil
	case "cash":
		return Cash, nil
	default:
		return 0, fmt.Errorf("unknown asset type: %q", s)
	}
}

func (t AssetType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *AssetType) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}
	parsed, err := ParseAssetType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
