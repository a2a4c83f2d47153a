package finplan

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file imports the JSON export of the companion mobile app into a
// plan document. The export is a single JSON object; jsonpath keeps the
// reader independent from the parts of the document this tool ignores.

// ImportAppExport reads an app export and converts its portfolio snapshot
// and savings plans into plan entries, dated on the export timestamp.
//
// The export is one JSON object with a '$.meta' object (currency,
// exportedAt), a '$.portfolio.holdings' array (symbol, assetType, shares,
// currentValue) and an optional '$.savingsPlans' array (symbol,
// monthlyAmount, active, startDate, endDate).
func ImportAppExport(r io.Reader) (*Plan, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read app export: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse app export: %w", err)
	}

	currency := jstring(jobj, "$.meta.currency")
	day := Today()
	if exported := jstring(jobj, "$.meta.exportedAt"); exported != "" {
		d, err := ParseDate(exported)
		if err != nil {
			return nil, fmt.Errorf("app export has an invalid exportedAt: %w", err)
		}
		day = d
	}

	plan := NewPlan()

	holdings, err := jsonpath.Get("$.portfolio.holdings[*]", jobj)
	if err != nil {
		return nil, fmt.Errorf("app export has no portfolio holdings: %w", err)
	}
	for _, jh := range jlist(holdings) {
		h, ok := jh.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("app export holding is not an object: %v", jh)
		}
		symbol, _ := h["symbol"].(string)
		typName, _ := h["assetType"].(string)
		typ, err := ParseAssetType(typName)
		if err != nil {
			return nil, fmt.Errorf("app export holding %q: %w", symbol, err)
		}
		shares, err := jnumber(h["shares"])
		if err != nil {
			return nil, fmt.Errorf("app export holding %q shares: %w", symbol, err)
		}
		value, err := jnumber(h["currentValue"])
		if err != nil {
			return nil, fmt.Errorf("app export holding %q currentValue: %w", symbol, err)
		}
		entry := NewHold(day, "", symbol, typ, Q(shares), M(value, currency))
		if err := plan.Append(entry); err != nil {
			return nil, err
		}
	}

	// Savings plans are optional in the export.
	if plans, err := jsonpath.Get("$.savingsPlans[*]", jobj); err == nil {
		for _, jp := range jlist(plans) {
			p, ok := jp.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("app export savings plan is not an object: %v", jp)
			}
			symbol, _ := p["symbol"].(string)
			monthly, err := jnumber(p["monthlyAmount"])
			if err != nil {
				return nil, fmt.Errorf("app export savings plan %q monthlyAmount: %w", symbol, err)
			}
			active := true
			if flag, ok := p["active"].(bool); ok {
				active = flag
			}
			var start, end Date
			if s, ok := p["startDate"].(string); ok && s != "" {
				if start, err = ParseDate(s); err != nil {
					return nil, fmt.Errorf("app export savings plan %q startDate: %w", symbol, err)
				}
			}
			if s, ok := p["endDate"].(string); ok && s != "" {
				if end, err = ParseDate(s); err != nil {
					return nil, fmt.Errorf("app export savings plan %q endDate: %w", symbol, err)
				}
			}
			entry := NewContribute(day, "", symbol, M(monthly, currency), start, end, active)
			if err := plan.Append(entry); err != nil {
				return nil, err
			}
		}
	}

	return plan, nil
}

// jlist normalizes a jsonpath result that can be a list or a single value.
func jlist(jval any) []any {
	if l, ok := jval.([]any); ok {
		return l
	}
	if jval == nil {
		return nil
	}
	return []any{jval}
}

// jstring extracts a string at path, or "" when the path does not resolve.
func jstring(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	s, _ := jval.(string)
	return s
}

// jnumber coerces an export value into a decimal. The app localizes
// numbers in some exports, so "1234,56" is read as 1234.56. A missing
// value is zero.
func jnumber(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		s := strings.ReplaceAll(v, " ", "")
		s = strings.ReplaceAll(s, ",", ".")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid number %q: %w", v, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("not a number: %v", jval)
	}
}
