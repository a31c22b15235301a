// Package normalize converts the backend's heterogeneous record shapes
// into the single canonical form the rest of the application sees. The
// backend has served record ownership under several field names and cost
// fields in two physical shapes; everything inside this repo goes through
// these functions at the boundary.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
)

// DefaultCurrency is used when neither the cost field nor the record
// carries a currency symbol.
const DefaultCurrency = "$"

// Amount resolves a cost field to a currency symbol and a numeric amount.
// Both wire shapes produce the same output for equivalent inputs: an
// object uses its own currency first, a bare number pairs with the
// record-level currency, and anything unreadable is zero.
func Amount(cost models.Cost, recordCurrency string) (string, float64) {
	currency := recordCurrency
	if cost.IsObject() && cost.Currency != "" {
		currency = cost.Currency
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return currency, cost.Value
}

// FormatAmount renders a cost for display: symbol, space, value with at
// most two decimal places.
func FormatAmount(cost models.Cost, recordCurrency string) string {
	currency, amount := Amount(cost, recordCurrency)
	rounded := math.Round(amount*100) / 100
	return currency + " " + strconv.FormatFloat(rounded, 'f', -1, 64)
}

// DisplayName derives the record author's display name. The probe order
// is fixed: name, userName, createdBy (string or object), user (string or
// object), the cached session display name, then "Unknown". It is total:
// no input shape makes it fail.
func DisplayName(rec *models.ChargeBase, cachedName string) string {
	if rec != nil {
		if rec.Name != "" {
			return rec.Name
		}
		if rec.UserName != "" {
			return rec.UserName
		}
		if name, ok := probeUserField(rec.CreatedBy); ok {
			return name
		}
		if name, ok := probeUserField(rec.User); ok {
			return name
		}
	}
	if cachedName != "" {
		return cachedName
	}
	return "Unknown"
}

// probeUserField reads a raw ownership field that may be a plain string
// or an object carrying name/username/email. An object with none of
// those keys still identifies a user, just an anonymous one.
func probeUserField(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return "", false
		}
		return s, true
	}

	var obj struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}

	switch {
	case obj.Name != "":
		return obj.Name, true
	case obj.Username != "":
		return obj.Username, true
	case obj.Email != "":
		return obj.Email, true
	}
	return "User", true
}
