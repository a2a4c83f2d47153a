package finplan

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountEntry is a specialized struct to read an amount in two fields.
type amountEntry struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountEntry) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodePlan decodes entries from a stream of JSONL data, decodes each
// line into the appropriate entry struct, and returns a sorted Plan.
func DecodePlan(r io.Reader) (*Plan, error) {
	plan := NewPlan()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command EntryType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		var decoded Entry

		switch identifier.Command {
		case EntryHold:
			var e Hold
			if err := json.Unmarshal(lineBytes, &e); err != nil {
				return nil, err
			}
			decoded = e
		case EntryContribute:
			var e Contribute
			if err := json.Unmarshal(lineBytes, &e); err != nil {
				return nil, err
			}
			decoded = e
		case EntryExpect:
			var e Expect
			if err := json.Unmarshal(lineBytes, &e); err != nil {
				return nil, err
			}
			decoded = e
		case EntryIncome:
			// Use a temporary type with bare numbers sharing one currency.
			var temp struct {
				baseEntry
				Filing               FilingStatus    `json:"filing"`
				TaxClass             int             `json:"taxClass"`
				Salary               decimal.Decimal `json:"salary"`
				OtherIncome          decimal.Decimal `json:"otherIncome"`
				CapitalGains         decimal.Decimal `json:"capitalGains"`
				WorkExpenses         decimal.Decimal `json:"workExpenses"`
				SpecialExpenses      decimal.Decimal `json:"specialExpenses"`
				ExtraordinaryBurdens decimal.Decimal `json:"extraordinaryBurdens"`
				OtherDeductions      decimal.Decimal `json:"otherDeductions"`
				GainsAllowance       decimal.Decimal `json:"gainsAllowance"`
				Currency             string          `json:"currency"`
				Church               bool            `json:"church"`
				ChurchRate           Rate            `json:"churchRate"`
				Solidarity           bool            `json:"solidarity"`
				CapitalGainsTax      bool            `json:"capitalGainsTax"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			// Absent amounts decode as zero and stay currency-free.
			amount := func(d decimal.Decimal) Money {
				if d.IsZero() {
					return Money{}
				}
				return M(d, temp.Currency)
			}
			decoded = Income{
				baseEntry:            temp.baseEntry,
				Filing:               temp.Filing,
				TaxClass:             temp.TaxClass,
				Salary:               amount(temp.Salary),
				OtherIncome:          amount(temp.OtherIncome),
				CapitalGains:         amount(temp.CapitalGains),
				WorkExpenses:         amount(temp.WorkExpenses),
				SpecialExpenses:      amount(temp.SpecialExpenses),
				ExtraordinaryBurdens: amount(temp.ExtraordinaryBurdens),
				OtherDeductions:      amount(temp.OtherDeductions),
				GainsAllowance:       amount(temp.GainsAllowance),
				Church:               temp.Church,
				ChurchRate:           temp.ChurchRate,
				Solidarity:           temp.Solidarity,
				CapitalGainsTax:      temp.CapitalGainsTax,
			}
		default:
			return nil, fmt.Errorf("unknown plan entry command: %q", identifier.Command)
		}

		validated, err := decoded.Validate()
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry on %v: %w", decoded.What(), decoded.When(), err)
		}
		plan.append(validated)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// Perform a stable sort on the plan based on the entry date.
	plan.stableSort()

	return plan, nil
}

// EncodeEntry marshals a single entry to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeEntry(w io.Writer, e Entry) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// EncodePlan reorders entries by date and persists them to an io.Writer in
// JSONL format. The sort is stable, entries on the same day keep their
// original relative order.
func EncodePlan(w io.Writer, plan *Plan) error {
	decimal.MarshalJSONWithoutQuotes = true

	plan.stableSort()

	for _, e := range plan.entries {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}

	return nil
}

// priceLine is the JSONL form of one month-close observation.
type priceLine struct {
	Symbol   string          `json:"symbol"`
	Date     Date            `json:"date"`
	Close    decimal.Decimal `json:"close"`
	Currency string          `json:"currency"`
}

// DecodePrices decodes month-close price histories from a stream of JSONL
// data, one observation per line. Observations are grouped by symbol and
// sorted by date; two closes for the same symbol and date are an error.
func DecodePrices(r io.Reader) (map[string][]PricePoint, error) {
	out := make(map[string][]PricePoint)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var line priceLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("could not decode price line %q: %w", string(lineBytes), err)
		}
		if line.Symbol == "" {
			return nil, fmt.Errorf("price line %q has no symbol", string(lineBytes))
		}
		if line.Date.IsZero() {
			return nil, fmt.Errorf("price line %q has no date", string(lineBytes))
		}
		out[line.Symbol] = append(out[line.Symbol], PricePoint{Date: line.Date, Close: M(line.Close, line.Currency)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	for symbol, series := range out {
		slices.SortStableFunc(series, func(a, b PricePoint) int {
			switch {
			case a.Date.Before(b.Date):
				return -1
			case a.Date.After(b.Date):
				return 1
			default:
				return 0
			}
		})
		for i := 1; i < len(series); i++ {
			if series[i].Date == series[i-1].Date {
				return nil, fmt.Errorf("%s: duplicate close for %s", symbol, series[i].Date)
			}
		}
		out[symbol] = series
	}

	return out, nil
}
