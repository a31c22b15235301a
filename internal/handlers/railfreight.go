package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ravi-codingcity/Origin-Frontend/internal/forms"
	"github.com/ravi-codingcity/Origin-Frontend/internal/freight"
	"github.com/ravi-codingcity/Origin-Frontend/internal/listview"
	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
	"github.com/ravi-codingcity/Origin-Frontend/internal/normalize"
	"github.com/ravi-codingcity/Origin-Frontend/internal/refdata"
)

// railRow is a formatted rail-freight table row. Weights is keyed by
// weight-tier field name; templates iterate WeightFields to keep column
// order. RawWeights carries the unformatted amounts for the inline edit
// form.
type railRow struct {
	ID            string
	User          string
	POR           string
	POL           string
	POD           string
	ContainerType string
	ShippingLine  string
	Currency      string
	Weights       map[string]string
	RawWeights    map[string]string
}

func railListRows(records []models.RailFreightCharge) []listview.Row {
	rows := make([]listview.Row, len(records))
	for i := range records {
		rows[i] = &records[i]
	}
	return rows
}

// railCost resolves a weight-tier field by wire name across both schema
// generations.
func railCost(rec *models.RailFreightCharge, field string) models.Cost {
	switch field {
	case "weight20ft0_10":
		return rec.Weight20ft0_10
	case "weight20ft10_20":
		return rec.Weight20ft10_20
	case "weight20ft20Plus":
		return rec.Weight20ft20Plus
	case "weight20ft20_26":
		return rec.Weight20ft20_26
	case "weight20ft26Plus":
		return rec.Weight20ft26Plus
	case "weight40ft10_20":
		return rec.Weight40ft10_20
	case "weight40ft20Plus":
		return rec.Weight40ft20Plus
	}
	return models.Cost{}
}

func railDisplayRows(rows []listview.Row, weightFields []string, cachedName string) []railRow {
	out := make([]railRow, 0, len(rows))
	for _, row := range rows {
		rec := row.(*models.RailFreightCharge)
		weights := make(map[string]string, len(weightFields))
		raw := make(map[string]string, len(weightFields))
		for _, field := range weightFields {
			cost := railCost(rec, field)
			weights[field] = normalize.FormatAmount(cost, rec.Currency)
			raw[field] = strconv.FormatFloat(cost.Value, 'f', -1, 64)
		}
		out = append(out, railRow{
			ID:            rec.ID,
			User:          normalize.DisplayName(rec.Base(), cachedName),
			POR:           rec.POR,
			POL:           rec.POL,
			POD:           rec.POD,
			ContainerType: rec.ContainerType,
			ShippingLine:  rec.ShippingLine,
			Currency:      rec.Currency,
			Weights:       weights,
			RawWeights:    raw,
		})
	}
	return out
}

func (h *Handlers) railWeightFields() []string {
	return forms.RailWeightFields(h.cfg.RailWeightSchema)
}

func railDraftFromForm(c *gin.Context, weightFields []string, cachedName string) *models.FormDraft {
	draft := &models.FormDraft{
		Name:          c.PostForm("name"),
		POR:           c.PostForm("por"),
		POL:           c.PostForm("pol"),
		POD:           c.PostForm("pod"),
		ContainerType: c.PostForm("container_type"),
		ShippingLine:  c.PostForm("shipping_lines"),
		Currency:      c.DefaultPostForm("currency", "₹"),
		Costs:         make(map[string]models.CostInput, len(weightFields)),
	}
	if draft.Name == "" {
		draft.Name = cachedName
	}
	for _, field := range weightFields {
		draft.Costs[field] = models.CostInput{
			Value:    c.PostForm(field),
			Currency: draft.Currency,
		}
	}
	return draft
}

func (h *Handlers) railPageData(c *gin.Context, draft *models.FormDraft, errorMessage string) gin.H {
	sess := currentSession(c)
	sessionID := c.GetString("session_id")
	weightFields := h.railWeightFields()

	data := gin.H{
		"Title":           "Add Rail Freight Charges - FreightPro",
		"User":            sess.DisplayName,
		"Draft":           draft,
		"POROptions":      refdata.POROptions(),
		"POLOptions":      refdata.POLOptions(),
		"PODOptions":      refdata.PODOptions(),
		"ContainerTypes":  refdata.ContainerTypeOptions(),
		"ShippingLines":   refdata.ShippingLineOptions(),
		"CurrencySymbols": refdata.CurrencySymbols,
		"WeightFields":    weightFields,
		"SizeClass":       forms.ContainerSizeClass(draft.ContainerType),
		"Error":           errorMessage,
	}

	records, err := h.client.ListUserRailFreightCharges(c.Request.Context(), sessionID)
	if err != nil {
		if freight.IsAuthError(err) {
			h.redirectToLogin(c)
			return nil
		}
		if errorMessage == "" {
			data["Error"] = userMessage(err)
		}
		return data
	}

	result := listview.Apply(railListRows(records), listview.Query{
		Page:     queryPage(c),
		PageSize: listview.OwnRecordsPageSize,
	}, sess.DisplayName)

	data["Records"] = railDisplayRows(result.Rows, weightFields, sess.DisplayName)
	data["Page"] = result.Page
	data["TotalPages"] = result.TotalPages
	data["TotalCount"] = result.TotalCount
	data["PageQuery"] = ""
	return data
}

func (h *Handlers) handleAddRailPage(c *gin.Context) {
	sess := currentSession(c)
	weightFields := h.railWeightFields()

	draft := &models.FormDraft{Name: sess.DisplayName, Currency: "₹"}
	draft.Costs = make(map[string]models.CostInput, len(weightFields))
	for _, field := range weightFields {
		draft.Costs[field] = models.CostInput{Currency: draft.Currency}
	}

	data := h.railPageData(c, draft, "")
	if data == nil {
		return
	}
	if c.Query("success") != "" {
		data["Success"] = "Entry submitted successfully!"
	}
	if c.Query("updated") != "" {
		data["Success"] = "Entry updated successfully!"
	}
	c.HTML(http.StatusOK, "add_rail_freight.html", data)
}

func (h *Handlers) handleSubmitRail(c *gin.Context) {
	sess := currentSession(c)
	draft := railDraftFromForm(c, h.railWeightFields(), sess.DisplayName)

	if _, err := h.controller.SubmitRail(c.Request.Context(), c.GetString("session_id"), draft); err != nil {
		if freight.IsAuthError(err) {
			h.redirectToLogin(c)
			return
		}
		data := h.railPageData(c, draft, userMessage(err))
		if data == nil {
			return
		}
		c.HTML(http.StatusOK, "add_rail_freight.html", data)
		return
	}

	c.Redirect(http.StatusFound, "/railfreight/add?success=1")
}

func (h *Handlers) handleUpdateRail(c *gin.Context) {
	sess := currentSession(c)
	draft := railDraftFromForm(c, h.railWeightFields(), sess.DisplayName)

	if _, err := h.controller.SubmitRailEdit(c.Request.Context(), c.GetString("session_id"), c.Param("id"), draft); err != nil {
		if freight.IsAuthError(err) {
			h.redirectToLogin(c)
			return
		}
		data := h.railPageData(c, draft, "Failed to update record: "+userMessage(err))
		if data == nil {
			return
		}
		c.HTML(http.StatusOK, "add_rail_freight.html", data)
		return
	}

	c.Redirect(http.StatusFound, "/railfreight/add?updated=1")
}

func (h *Handlers) handleViewRail(c *gin.Context) {
	sess := currentSession(c)
	sessionID := c.GetString("session_id")
	weightFields := h.railWeightFields()

	data := gin.H{
		"Title":        "View all Rail Freight Charges - FreightPro",
		"User":         sess.DisplayName,
		"WeightFields": weightFields,
	}

	records, err := h.client.ListAllRailFreightCharges(c.Request.Context(), sessionID)
	if err != nil {
		if freight.IsAuthError(err) {
			h.redirectToLogin(c)
			return
		}
		data["Error"] = userMessage(err)
		c.HTML(http.StatusOK, "view_rail_freight.html", data)
		return
	}

	result := listview.Apply(railListRows(records), listview.Query{
		UsernameFilter:     c.Query("user"),
		ShippingLineFilter: c.Query("line"),
		Page:               queryPage(c),
		PageSize:           listview.DefaultPageSize,
	}, sess.DisplayName)

	data["Records"] = railDisplayRows(result.Rows, weightFields, sess.DisplayName)
	data["Page"] = result.Page
	data["TotalPages"] = result.TotalPages
	data["FilteredCount"] = result.FilteredCount
	data["TotalCount"] = result.TotalCount
	data["UsernameFilter"] = c.Query("user")
	data["ShippingLineFilter"] = c.Query("line")
	data["UsernameOptions"] = result.UsernameOptions
	data["ShippingLineOptions"] = result.ShippingLineOptions
	data["PageQuery"] = filterQuery(c)
	c.HTML(http.StatusOK, "view_rail_freight.html", data)
}
