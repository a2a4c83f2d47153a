package finplan

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scenario selects how optimistic a projection is about expected returns.
type Scenario int

const (
	// Conservative scales every expected return down to 60%.
	Conservative Scenario = iota
	// Realistic applies expected returns unchanged.
	Realistic
	// Optimistic scales every expected return up to 140%.
	Optimistic
)

func (s Scenario) String() string {
	switch s {
	case Conservative:
		return "conservative"
	case Realistic:
		return "realistic"
	case Optimistic:
		return "optimistic"
	default:
		return "unknown"
	}
}

// ParseScenario parses a string into a Scenario.
func ParseScenario(str string) (Scenario, error) {
	switch str {
	case "conservative":
		return Conservative, nil
	case "realistic":
		return Realistic, nil
	case "optimistic":
		return Optimistic, nil
	default:
		return 0, fmt.Errorf("unknown scenario: %q", str)
	}
}

// Multiplier returns the factor applied once to every expected annual
// return before the projection starts compounding.
func (s Scenario) Multiplier() Rate {
	switch s {
	case Conservative:
		return Rate{value: decimal.NewFromFloat(0.6)}
	case Optimistic:
		return Rate{value: decimal.NewFromFloat(1.4)}
	default:
		return Rate{value: decimal.NewFromInt(1)}
	}
}

func (s Scenario) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Scenario) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseScenario(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
