package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Session maps a browser session to the upstream bearer token and the
// cached display name used to pre-fill forms. It is the only mutable
// state this application persists.
type Session struct {
	ID          string    `json:"id" db:"id"`
	Token       string    `json:"-" db:"token"`
	DisplayName string    `json:"display_name" db:"display_name"`
	ExpiresAt   time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// LoginRequest is the upstream credential payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries either a token or a failure message.
type LoginResponse struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// Cost is a charge line item as the backend serves it. Two physical
// shapes exist on the wire: a bare number (legacy records, currency in a
// sibling top-level field) and {value, currency}; value itself arrives as
// a number or a numeric string. Decoding tolerates all of them and
// anything unreadable degrades to zero.
type Cost struct {
	Value    float64
	Currency string
	object   bool
}

// IsObject reports whether the cost arrived in the {value, currency}
// shape rather than as a bare number.
func (c Cost) IsObject() bool {
	return c.object
}

func (c *Cost) UnmarshalJSON(data []byte) error {
	*c = Cost{}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		c.Value = num
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if v, err := strconv.ParseFloat(str, 64); err == nil {
			c.Value = v
		}
		return nil
	}

	var obj struct {
		Value    json.RawMessage `json:"value"`
		Currency string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Unknown shape reads as zero rather than failing the record.
		return nil
	}

	c.object = true
	c.Currency = obj.Currency

	if len(obj.Value) > 0 {
		if err := json.Unmarshal(obj.Value, &num); err == nil {
			c.Value = num
		} else if err := json.Unmarshal(obj.Value, &str); err == nil {
			if v, err := strconv.ParseFloat(str, 64); err == nil {
				c.Value = v
			}
		}
	}

	return nil
}

func (c Cost) MarshalJSON() ([]byte, error) {
	if c.object {
		return json.Marshal(struct {
			Value    float64 `json:"value"`
			Currency string  `json:"currency,omitempty"`
		}{c.Value, c.Currency})
	}
	return json.Marshal(c.Value)
}

// ChargeBase holds the fields shared by origin and rail-freight records.
// The ownership fields are raw because the backend has served the author
// under several names and types over time; normalize.DisplayName probes
// them in order.
type ChargeBase struct {
	ID            string          `json:"_id"`
	Name          string          `json:"name,omitempty"`
	UserName      string          `json:"userName,omitempty"`
	CreatedBy     json.RawMessage `json:"createdBy,omitempty"`
	User          json.RawMessage `json:"user,omitempty"`
	POR           string          `json:"por"`
	POL           string          `json:"pol"`
	ContainerType string          `json:"container_type"`
	ShippingLine  string          `json:"shipping_lines"`
	Currency      string          `json:"currency,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`
	Timestamp     string          `json:"timestamp,omitempty"`
}

// Base exposes the shared fields to code that works across both record
// variants (the list view model and the normalizer).
func (b *ChargeBase) Base() *ChargeBase {
	return b
}

// OriginCharge is an origin/local-charges record.
type OriginCharge struct {
	ChargeBase
	BLFees Cost `json:"bl_fees"`
	THC    Cost `json:"thc"`
	MUC    Cost `json:"muc"`
	Toll   Cost `json:"toll"`
}

// RailFreightCharge is a rail-freight record. Both generations of the
// 20ft top bracket are decoded; which names are written on create is a
// configuration concern.
type RailFreightCharge struct {
	ChargeBase
	POD              string `json:"pod,omitempty"`
	Weight20ft0_10   Cost   `json:"weight20ft0_10"`
	Weight20ft10_20  Cost   `json:"weight20ft10_20"`
	Weight20ft20Plus Cost   `json:"weight20ft20Plus"`
	Weight20ft20_26  Cost   `json:"weight20ft20_26"`
	Weight20ft26Plus Cost   `json:"weight20ft26Plus"`
	Weight40ft10_20  Cost   `json:"weight40ft10_20"`
	Weight40ft20Plus Cost   `json:"weight40ft20Plus"`
}

// CostInput is one editable cost field of a draft, value kept as typed
// text until payload build.
type CostInput struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// FormDraft is the client-side staging object for a submission. Costs is
// keyed by wire field name (bl_fees, thc, weight20ft0_10, ...).
type FormDraft struct {
	Name          string               `json:"name"`
	POR           string               `json:"por"`
	POL           string               `json:"pol"`
	POD           string               `json:"pod,omitempty"`
	ContainerType string               `json:"container_type"`
	ShippingLine  string               `json:"shipping_lines"`
	Currency      string               `json:"currency"`
	Costs         map[string]CostInput `json:"costs"`
}

// Reset blanks a draft after a successful submission, preserving the
// pre-filled name and the chosen currency.
func (d *FormDraft) Reset() {
	name, currency := d.Name, d.Currency
	costs := make(map[string]CostInput, len(d.Costs))
	for field := range d.Costs {
		costs[field] = CostInput{Currency: currency}
	}
	*d = FormDraft{Name: name, Currency: currency, Costs: costs}
}
