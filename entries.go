package finplan

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EntryType is a typed string identifying plan entry commands.
type EntryType string

// Entry commands recorded in a plan document.
const (
	EntryHold       EntryType = "hold"
	EntryContribute EntryType = "contribute"
	EntryExpect     EntryType = "expect"
	EntryIncome     EntryType = "income"
)

// Entry is the common interface for every line of a plan document.
type Entry interface {
	What() EntryType // What returns the command of the entry (e.g. "hold").
	When() Date      // When returns the date the entry was recorded.
	Equal(Entry) bool
	Validate() (Entry, error)
}

type baseEntry struct {
	Command EntryType `json:"command"`
	Date    Date      `json:"date"`
	Memo    string    `json:"memo,omitempty"` // optional rationale for the entry
}

func (t baseEntry) What() EntryType { return t.Command }

func (t baseEntry) When() Date { return t.Date }

// Rationale returns the memo associated with the entry.
func (t baseEntry) Rationale() string { return t.Memo }

// MarshalJSON implements the json.Marshaler interface for baseEntry.
func (t baseEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Validate defaults the date to today. It is meant to be called from the
// validation of concrete entries.
func (t *baseEntry) Validate() {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
}

// symbolEntry is a component for entries about one holding.
type symbolEntry struct {
	baseEntry
	Symbol string `json:"symbol"`
}

func (t *symbolEntry) Validate() error {
	t.baseEntry.Validate()
	if t.Symbol == "" {
		return errors.New("symbol is missing")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for symbolEntry.
func (t symbolEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseEntry)
	w.Append("symbol", t.Symbol)
	return w.MarshalJSON()
}

// Hold records the current state of one holding: what is held and what it
// is worth. A later hold line for the same symbol replaces the earlier one,
// so a plan file accumulates valuation updates without losing history.
type Hold struct {
	symbolEntry
	Type   AssetType
	Shares Quantity // zero for positions tracked by value only
	Value  Money
}

// NewHold creates a new Hold entry.
func NewHold(day Date, memo, symbol string, typ AssetType, shares Quantity, value Money) Hold {
	return Hold{
		symbolEntry: symbolEntry{baseEntry: baseEntry{Command: EntryHold, Date: day, Memo: memo}, Symbol: symbol},
		Type:        typ,
		Shares:      shares,
		Value:       value,
	}
}

// Holding converts the entry into a projection input.
func (t Hold) Holding() Holding {
	return Holding{Symbol: t.Symbol, Type: t.Type, Shares: t.Shares, Value: t.Value}
}

// MarshalJSON implements the json.Marshaler interface for Hold.
func (t Hold) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.symbolEntry)
	w.Append("type", t.Type)
	w.Append("shares", t.Shares)
	w.EmbedFrom(t.Value)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Hold.
// It handles the custom structure where amount and currency are separate fields.
func (t *Hold) UnmarshalJSON(data []byte) error {
	var temp struct {
		symbolEntry
		amountEntry
		Type   AssetType `json:"type"`
		Shares Quantity  `json:"shares"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.symbolEntry = temp.symbolEntry
	t.Type = temp.Type
	t.Shares = temp.Shares
	t.Value = temp.Money()
	return nil
}

func (t Hold) Equal(other Entry) bool {
	o, ok := other.(Hold)
	return ok && t.symbolEntry == o.symbolEntry && t.Type == o.Type && t.Shares.Equal(o.Shares) && t.Value.Equal(o.Value)
}

// Validate checks the Hold entry's fields.
func (t Hold) Validate() (Entry, error) {
	if err := t.symbolEntry.Validate(); err != nil {
		return t, err
	}
	if err := t.Holding().Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Contribute records a recurring monthly savings plan for one symbol. A
// later contribute line for the same symbol replaces the earlier one.
type Contribute struct {
	symbolEntry
	Amount   Money // per month
	Start    Date  // zero means already started
	End      Date  // zero means open-ended
	Inactive bool
}

// NewContribute creates a new Contribute entry.
func NewContribute(day Date, memo, symbol string, monthly Money, start, end Date, active bool) Contribute {
	return Contribute{
		symbolEntry: symbolEntry{baseEntry: baseEntry{Command: EntryContribute, Date: day, Memo: memo}, Symbol: symbol},
		Amount:      monthly,
		Start:       start,
		End:         end,
		Inactive:    !active,
	}
}

// Plan converts the entry into a projection input.
func (t Contribute) Plan() ContributionPlan {
	return ContributionPlan{Symbol: t.Symbol, Monthly: t.Amount, Active: !t.Inactive, Start: t.Start, End: t.End}
}

// MarshalJSON implements the json.Marshaler interface for Contribute.
func (t Contribute) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.symbolEntry)
	w.EmbedFrom(t.Amount)
	w.Optional("start", t.Start)
	w.Optional("end", t.End)
	w.Optional("inactive", t.Inactive)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Contribute.
func (t *Contribute) UnmarshalJSON(data []byte) error {
	var temp struct {
		symbolEntry
		amountEntry
		Start    Date `json:"start"`
		End      Date `json:"end"`
		Inactive bool `json:"inactive"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.symbolEntry = temp.symbolEntry
	t.Amount = temp.Money()
	t.Start = temp.Start
	t.End = temp.End
	t.Inactive = temp.Inactive
	return nil
}

func (t Contribute) Equal(other Entry) bool {
	o, ok := other.(Contribute)
	return ok && t.symbolEntry == o.symbolEntry && t.Amount.Equal(o.Amount) &&
		t.Start == o.Start && t.End == o.End && t.Inactive == o.Inactive
}

// Validate checks the Contribute entry's fields.
func (t Contribute) Validate() (Entry, error) {
	if err := t.symbolEntry.Validate(); err != nil {
		return t, err
	}
	if err := t.Plan().Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Expect records an expected annual return for one symbol, either learned
// from a historical analysis or set by hand. It overrides the static
// defaults during a projection.
type Expect struct {
	symbolEntry
	Annual Rate `json:"annual"`
}

// NewExpect creates a new Expect entry.
func NewExpect(day Date, memo, symbol string, annual Rate) Expect {
	return Expect{
		symbolEntry: symbolEntry{baseEntry: baseEntry{Command: EntryExpect, Date: day, Memo: memo}, Symbol: symbol},
		Annual:      annual,
	}
}

// MarshalJSON implements the json.Marshaler interface for Expect.
func (t Expect) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.symbolEntry)
	w.Append("annual", t.Annual)
	return w.MarshalJSON()
}

func (t Expect) Equal(other Entry) bool {
	o, ok := other.(Expect)
	return ok && t.symbolEntry == o.symbolEntry && t.Annual.Equal(o.Annual)
}

// Validate checks the Expect entry's fields. Negative returns are allowed,
// an expected decline is a legitimate assumption.
func (t Expect) Validate() (Entry, error) {
	if err := t.symbolEntry.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Income records a yearly income scenario for the tax estimate. All
// amounts share the entry's currency. A later income line replaces the
// earlier one.
type Income struct {
	baseEntry
	Filing               FilingStatus
	TaxClass             int
	Salary               Money
	OtherIncome          Money
	CapitalGains         Money
	WorkExpenses         Money
	SpecialExpenses      Money
	ExtraordinaryBurdens Money
	OtherDeductions      Money
	GainsAllowance       Money
	Church               bool
	ChurchRate           Rate
	Solidarity           bool
	CapitalGainsTax      bool
}

// NewIncome creates a new Income entry from a tax scenario.
func NewIncome(day Date, memo string, scenario TaxScenarioInput) Income {
	return Income{
		baseEntry:            baseEntry{Command: EntryIncome, Date: day, Memo: memo},
		Filing:               scenario.FilingStatus,
		TaxClass:             scenario.TaxClass,
		Salary:               scenario.GrossSalary,
		OtherIncome:          scenario.OtherIncome,
		CapitalGains:         scenario.CapitalGains,
		WorkExpenses:         scenario.WorkExpenses,
		SpecialExpenses:      scenario.SpecialExpenses,
		ExtraordinaryBurdens: scenario.ExtraordinaryBurdens,
		OtherDeductions:      scenario.OtherDeductions,
		GainsAllowance:       scenario.CapitalGainsAllowance,
		Church:               scenario.ApplyChurchTax,
		ChurchRate:           scenario.ChurchTaxRate,
		Solidarity:           scenario.ApplySolidarityTax,
		CapitalGainsTax:      scenario.ApplyCapitalGainsTax,
	}
}

// Scenario converts the entry into a tax calculator input.
func (t Income) Scenario() TaxScenarioInput {
	return TaxScenarioInput{
		FilingStatus:          t.Filing,
		TaxClass:              t.TaxClass,
		GrossSalary:           t.Salary,
		OtherIncome:           t.OtherIncome,
		CapitalGains:          t.CapitalGains,
		WorkExpenses:          t.WorkExpenses,
		SpecialExpenses:       t.SpecialExpenses,
		ExtraordinaryBurdens:  t.ExtraordinaryBurdens,
		OtherDeductions:       t.OtherDeductions,
		CapitalGainsAllowance: t.GainsAllowance,
		ApplyChurchTax:        t.Church,
		ChurchTaxRate:         t.ChurchRate,
		ApplySolidarityTax:    t.Solidarity,
		ApplyCapitalGainsTax:  t.CapitalGainsTax,
	}
}

// currency returns the shared currency of the entry's amounts.
func (t Income) currency() string {
	for _, m := range []Money{t.Salary, t.OtherIncome, t.CapitalGains, t.WorkExpenses, t.SpecialExpenses, t.ExtraordinaryBurdens, t.OtherDeductions, t.GainsAllowance} {
		if m.Currency() != "" {
			return m.Currency()
		}
	}
	return ""
}

// MarshalJSON implements the json.Marshaler interface for Income. Amounts
// are written as bare numbers sharing a single currency field.
func (t Income) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseEntry)
	w.Append("filing", t.Filing)
	w.Optional("taxClass", t.TaxClass)
	w.Append("salary", t.Salary.value)
	amount := func(key string, m Money) {
		if !m.IsZero() {
			w.Append(key, m.value)
		}
	}
	amount("otherIncome", t.OtherIncome)
	amount("capitalGains", t.CapitalGains)
	amount("workExpenses", t.WorkExpenses)
	amount("specialExpenses", t.SpecialExpenses)
	amount("extraordinaryBurdens", t.ExtraordinaryBurdens)
	amount("otherDeductions", t.OtherDeductions)
	amount("gainsAllowance", t.GainsAllowance)
	w.Optional("currency", t.currency())
	w.Optional("church", t.Church)
	if !t.ChurchRate.IsZero() {
		w.Append("churchRate", t.ChurchRate)
	}
	w.Optional("solidarity", t.Solidarity)
	w.Optional("capitalGainsTax", t.CapitalGainsTax)
	return w.MarshalJSON()
}

func (t Income) Equal(other Entry) bool {
	o, ok := other.(Income)
	return ok && t.baseEntry == o.baseEntry && t.Filing == o.Filing && t.TaxClass == o.TaxClass &&
		t.Salary.Equal(o.Salary) && t.OtherIncome.Equal(o.OtherIncome) && t.CapitalGains.Equal(o.CapitalGains) &&
		t.WorkExpenses.Equal(o.WorkExpenses) && t.SpecialExpenses.Equal(o.SpecialExpenses) &&
		t.ExtraordinaryBurdens.Equal(o.ExtraordinaryBurdens) && t.OtherDeductions.Equal(o.OtherDeductions) &&
		t.GainsAllowance.Equal(o.GainsAllowance) &&
		t.Church == o.Church && t.ChurchRate.Equal(o.ChurchRate) &&
		t.Solidarity == o.Solidarity && t.CapitalGainsTax == o.CapitalGainsTax
}

// Validate checks the Income entry by validating the scenario it carries.
func (t Income) Validate() (Entry, error) {
	t.baseEntry.Validate()
	if err := t.Scenario().validate(); err != nil {
		return t, err
	}
	return t, nil
}
