package finplan

import "fmt"

// Holding is one line of a portfolio snapshot: what is held and what it is
// worth at the projection start. Values are expected in the projection
// currency; callers convert foreign amounts beforehand.
type Holding struct {
	Symbol string
	Type   AssetType
	Shares Quantity
	Value  Money
}

// Validate reports whether the holding can seed a projection.
func (h Holding) Validate() error {
	if h.Symbol == "" {
		return fmt.Errorf("holding has no symbol")
	}
	if h.Shares.IsNegative() {
		return fmt.Errorf("holding %s: negative shares %s", h.Symbol, h.Shares)
	}
	if h.Value.IsNegative() {
		return fmt.Errorf("holding %s: negative value %s", h.Symbol, h.Value)
	}
	return nil
}
