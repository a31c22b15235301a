// Package forms owns draft validation and submission: required-field
// checks, payload shaping for both cost-field encodings, and the
// single-flight submit path with the legacy-shape fallback.
package forms

import (
	"strconv"
	"strings"

	"github.com/ravi-codingcity/Origin-Frontend/internal/config"
	"github.com/ravi-codingcity/Origin-Frontend/internal/freight"
	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
	"github.com/ravi-codingcity/Origin-Frontend/internal/normalize"
)

// ValidationError is a locally detected draft problem; it never reaches
// the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// requiredFields is the ordered required-selection check; the first
// missing one is reported alone.
var requiredFields = []struct {
	field string
	label string
}{
	{"por", "Place of Receipt"},
	{"pol", "Port of Loading"},
	{"container_type", "Container Type"},
	{"shipping_lines", "Shipping Line"},
}

// ValidateRequired fails on the first empty required selection field.
func ValidateRequired(draft *models.FormDraft) error {
	values := map[string]string{
		"por":            draft.POR,
		"pol":            draft.POL,
		"container_type": draft.ContainerType,
		"shipping_lines": draft.ShippingLine,
	}

	for _, req := range requiredFields {
		if strings.TrimSpace(values[req.field]) == "" {
			return &ValidationError{
				Field:   req.field,
				Message: "Please fill in all required fields: " + req.label + " is missing",
			}
		}
	}
	return nil
}

// OriginCostFields are the origin/local charge line items, in form order.
var OriginCostFields = []string{"bl_fees", "thc", "muc", "toll"}

// RailWeightFields returns the weight-tier field names for a schema
// generation.
func RailWeightFields(schema string) []string {
	if schema == config.RailWeightSchemaV2 {
		return []string{
			"weight20ft0_10",
			"weight20ft10_20",
			"weight20ft20_26",
			"weight20ft26Plus",
			"weight40ft10_20",
			"weight40ft20Plus",
		}
	}
	return []string{
		"weight20ft0_10",
		"weight20ft10_20",
		"weight20ft20Plus",
		"weight40ft10_20",
		"weight40ft20Plus",
	}
}

// ContainerSizeClass reduces a container type to its weight-tier prefix:
// "20", "40" (45ft prices as 40ft rail stock), or "" when the type names
// neither.
func ContainerSizeClass(containerType string) string {
	switch {
	case strings.Contains(containerType, "20"):
		return "20"
	case strings.Contains(containerType, "40"), strings.Contains(containerType, "45"):
		return "40"
	}
	return ""
}

// BuildOriginPayload shapes an origin-charge submission. The structured
// shape sends each cost as {value, currency}; the legacy shape flattens
// costs to numbers and folds one representative currency into the
// top-level field.
func BuildOriginPayload(draft *models.FormDraft, shape string) freight.Payload {
	payload := freight.Payload{
		"name":           draft.Name,
		"por":            draft.POR,
		"pol":            draft.POL,
		"container_type": draft.ContainerType,
		"shipping_lines": draft.ShippingLine,
	}

	if shape == config.PayloadShapeLegacy {
		for _, field := range OriginCostFields {
			payload[field] = parseAmount(draft.Costs[field].Value)
		}
		payload["currency"] = representativeCurrency(draft, OriginCostFields)
		return payload
	}

	for _, field := range OriginCostFields {
		cost := draft.Costs[field]
		payload[field] = map[string]interface{}{
			"value":    parseAmount(cost.Value),
			"currency": currencyOr(cost.Currency, draft.Currency),
		}
	}
	return payload
}

// BuildRailPayload shapes a rail-freight submission. Only the weight
// tiers matching the selected container size class are sent; a draft
// whose container type names neither class sends no weight fields at
// all.
func BuildRailPayload(draft *models.FormDraft, shape, schema string) freight.Payload {
	payload := freight.Payload{
		"name":           draft.Name,
		"por":            draft.POR,
		"pol":            draft.POL,
		"container_type": draft.ContainerType,
		"shipping_lines": draft.ShippingLine,
	}
	if draft.POD != "" {
		payload["pod"] = draft.POD
	}

	class := ContainerSizeClass(draft.ContainerType)
	fields := make([]string, 0)
	for _, field := range RailWeightFields(schema) {
		if class != "" && strings.HasPrefix(field, "weight"+class) {
			fields = append(fields, field)
		}
	}

	if shape == config.PayloadShapeStructured {
		for _, field := range fields {
			cost := draft.Costs[field]
			payload[field] = map[string]interface{}{
				"value":    parseAmount(cost.Value),
				"currency": currencyOr(cost.Currency, draft.Currency),
			}
		}
		return payload
	}

	for _, field := range fields {
		payload[field] = parseAmount(draft.Costs[field].Value)
	}
	payload["currency"] = currencyOr(draft.Currency, normalize.DefaultCurrency)
	return payload
}

// parseAmount reads a typed cost value leniently; anything non-numeric
// is zero.
func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// representativeCurrency picks the legacy top-level currency: the first
// cost field carrying one, else the draft currency, else the default
// symbol.
func representativeCurrency(draft *models.FormDraft, fields []string) string {
	for _, field := range fields {
		if c := draft.Costs[field].Currency; c != "" {
			return c
		}
	}
	return currencyOr(draft.Currency, normalize.DefaultCurrency)
}

func currencyOr(currency, fallback string) string {
	if currency != "" {
		return currency
	}
	if fallback != "" {
		return fallback
	}
	return normalize.DefaultCurrency
}
