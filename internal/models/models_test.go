package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostUnmarshalShapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		value    float64
		currency string
		object   bool
	}{
		{"bare number", `1500`, 1500, "", false},
		{"bare decimal", `12.5`, 12.5, "", false},
		{"numeric string", `"2500.75"`, 2500.75, "", false},
		{"non-numeric string", `"n/a"`, 0, "", false},
		{"object with number", `{"value": 100, "currency": "₹"}`, 100, "₹", true},
		{"object with string value", `{"value": "100", "currency": "$"}`, 100, "$", true},
		{"object without currency", `{"value": 42}`, 42, "", true},
		{"empty object", `{}`, 0, "", true},
		{"unknown shape", `[1, 2]`, 0, "", false},
		{"null", `null`, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cost
			require.NoError(t, json.Unmarshal([]byte(tt.input), &c))
			assert.Equal(t, tt.value, c.Value)
			assert.Equal(t, tt.currency, c.Currency)
			assert.Equal(t, tt.object, c.IsObject())
		})
	}
}

func TestCostMarshalPreservesShape(t *testing.T) {
	var obj Cost
	require.NoError(t, json.Unmarshal([]byte(`{"value": 100, "currency": "₹"}`), &obj))
	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": 100, "currency": "₹"}`, string(out))

	var flat Cost
	require.NoError(t, json.Unmarshal([]byte(`250`), &flat))
	out, err = json.Marshal(flat)
	require.NoError(t, err)
	assert.Equal(t, "250", string(out))
}

func TestOriginChargeDecode(t *testing.T) {
	raw := `{
		"_id": "66f0a1",
		"name": "Ravi Kumar",
		"por": "ICD Tughlakabad (Delhi)",
		"pol": "Mundra Port (GJ)",
		"container_type": "20ft ST",
		"shipping_lines": "Maersk",
		"currency": "₹",
		"createdAt": "2025-03-01T10:00:00Z",
		"bl_fees": {"value": "1500", "currency": "₹"},
		"thc": 9200,
		"muc": "350.5",
		"toll": null
	}`

	var rec OriginCharge
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "66f0a1", rec.ID)
	assert.Equal(t, "Maersk", rec.ShippingLine)
	assert.Equal(t, 1500.0, rec.BLFees.Value)
	assert.True(t, rec.BLFees.IsObject())
	assert.Equal(t, 9200.0, rec.THC.Value)
	assert.False(t, rec.THC.IsObject())
	assert.Equal(t, 350.5, rec.MUC.Value)
	assert.Zero(t, rec.Toll.Value)
}

func TestRailFreightChargeDecodeBothSchemaGenerations(t *testing.T) {
	raw := `{
		"_id": "66f0b2",
		"pod": "JNPT (Mumbai)",
		"weight20ft20Plus": 4000,
		"weight20ft20_26": 4100,
		"weight20ft26Plus": "4200"
	}`

	var rec RailFreightCharge
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "JNPT (Mumbai)", rec.POD)
	assert.Equal(t, 4000.0, rec.Weight20ft20Plus.Value)
	assert.Equal(t, 4100.0, rec.Weight20ft20_26.Value)
	assert.Equal(t, 4200.0, rec.Weight20ft26Plus.Value)
}

func TestFormDraftResetKeepsNameAndCurrency(t *testing.T) {
	draft := &FormDraft{
		Name:          "Ravi Kumar",
		POR:           "ICD Tughlakabad (Delhi)",
		POL:           "Mundra Port (GJ)",
		ContainerType: "20ft ST",
		ShippingLine:  "Maersk",
		Currency:      "₹",
		Costs: map[string]CostInput{
			"bl_fees": {Value: "1500", Currency: "₹"},
			"thc":     {Value: "9200", Currency: "₹"},
		},
	}

	draft.Reset()

	assert.Equal(t, "Ravi Kumar", draft.Name)
	assert.Equal(t, "₹", draft.Currency)
	assert.Empty(t, draft.POR)
	assert.Empty(t, draft.ShippingLine)
	assert.Len(t, draft.Costs, 2)
	assert.Equal(t, CostInput{Currency: "₹"}, draft.Costs["bl_fees"])
	assert.Equal(t, CostInput{Currency: "₹"}, draft.Costs["thc"])
}
