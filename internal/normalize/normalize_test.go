package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
)

func decodeCost(t *testing.T, raw string) models.Cost {
	t.Helper()
	var c models.Cost
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	return c
}

func TestAmountShapeEquivalence(t *testing.T) {
	flat := decodeCost(t, `12.5`)
	structured := decodeCost(t, `{"value": "12.5", "currency": "$"}`)

	flatCurrency, flatValue := Amount(flat, "$")
	objCurrency, objValue := Amount(structured, "$")

	assert.Equal(t, flatCurrency, objCurrency)
	assert.Equal(t, flatValue, objValue)
}

func TestAmountCurrencyResolution(t *testing.T) {
	tests := []struct {
		name           string
		cost           string
		recordCurrency string
		wantCurrency   string
		wantValue      float64
	}{
		{"object currency wins", `{"value": 100, "currency": "€"}`, "₹", "€", 100},
		{"object without currency uses record", `{"value": 100}`, "₹", "₹", 100},
		{"flat uses record", `250`, "₹", "₹", 250},
		{"nothing set uses default", `250`, "", "$", 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			currency, value := Amount(decodeCost(t, tt.cost), tt.recordCurrency)
			assert.Equal(t, tt.wantCurrency, currency)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹ 1234.57", FormatAmount(decodeCost(t, `1234.567`), "₹"))
	assert.Equal(t, "₹ 1500", FormatAmount(decodeCost(t, `1500`), "₹"))
	assert.Equal(t, "$ 0", FormatAmount(decodeCost(t, `"garbage"`), ""))
	assert.Equal(t, "€ 99.9", FormatAmount(decodeCost(t, `{"value": "99.90", "currency": "€"}`), "₹"))
}

func TestDisplayNameProbeOrder(t *testing.T) {
	tests := []struct {
		name string
		rec  *models.ChargeBase
		want string
	}{
		{"name first", &models.ChargeBase{Name: "Ravi", UserName: "ravi.k"}, "Ravi"},
		{"userName second", &models.ChargeBase{UserName: "ravi.k"}, "ravi.k"},
		{"createdBy string", &models.ChargeBase{CreatedBy: json.RawMessage(`"Amit"`)}, "Amit"},
		{"createdBy object name", &models.ChargeBase{CreatedBy: json.RawMessage(`{"name": "Amit", "email": "a@x.in"}`)}, "Amit"},
		{"createdBy object username", &models.ChargeBase{CreatedBy: json.RawMessage(`{"username": "amit42"}`)}, "amit42"},
		{"createdBy object email", &models.ChargeBase{CreatedBy: json.RawMessage(`{"email": "a@x.in"}`)}, "a@x.in"},
		{"createdBy empty object", &models.ChargeBase{CreatedBy: json.RawMessage(`{"role": "admin"}`)}, "User"},
		{"user field after createdBy", &models.ChargeBase{User: json.RawMessage(`"Priya"`)}, "Priya"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.rec, "Cached"))
		})
	}
}

func TestDisplayNameFallbacks(t *testing.T) {
	assert.Equal(t, "Cached", DisplayName(&models.ChargeBase{}, "Cached"))
	assert.Equal(t, "Unknown", DisplayName(&models.ChargeBase{}, ""))
	assert.Equal(t, "Unknown", DisplayName(nil, ""))
	assert.Equal(t, "Cached", DisplayName(&models.ChargeBase{CreatedBy: json.RawMessage(`""`)}, "Cached"))
	assert.Equal(t, "Unknown", DisplayName(&models.ChargeBase{User: json.RawMessage(`not json`)}, ""))
}
