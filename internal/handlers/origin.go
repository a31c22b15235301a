package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ravi-codingcity/Origin-Frontend/internal/forms"
	"github.com/ravi-codingcity/Origin-Frontend/internal/freight"
	"github.com/ravi-codingcity/Origin-Frontend/internal/listview"
	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
	"github.com/ravi-codingcity/Origin-Frontend/internal/normalize"
	"github.com/ravi-codingcity/Origin-Frontend/internal/refdata"
)

// originRow is a fully formatted table row; templates do no conversion.
// Raw keeps the unformatted amounts, keyed by wire field name, for the
// inline edit form.
type originRow struct {
	ID            string
	User          string
	POR           string
	POL           string
	ContainerType string
	ShippingLine  string
	BLFees        string
	THC           string
	MUC           string
	Toll          string
	Currency      string
	Raw           map[string]string
}

func originListRows(records []models.OriginCharge) []listview.Row {
	rows := make([]listview.Row, len(records))
	for i := range records {
		rows[i] = &records[i]
	}
	return rows
}

func originDisplayRows(rows []listview.Row, cachedName string) []originRow {
	out := make([]originRow, 0, len(rows))
	for _, row := range rows {
		rec := row.(*models.OriginCharge)
		costs := map[string]models.Cost{
			"bl_fees": rec.BLFees,
			"thc":     rec.THC,
			"muc":     rec.MUC,
			"toll":    rec.Toll,
		}
		raw := make(map[string]string, len(costs))
		for field, cost := range costs {
			raw[field] = strconv.FormatFloat(cost.Value, 'f', -1, 64)
		}
		out = append(out, originRow{
			ID:            rec.ID,
			User:          normalize.DisplayName(rec.Base(), cachedName),
			POR:           rec.POR,
			POL:           rec.POL,
			ContainerType: rec.ContainerType,
			ShippingLine:  rec.ShippingLine,
			BLFees:        normalize.FormatAmount(rec.BLFees, rec.Currency),
			THC:           normalize.FormatAmount(rec.THC, rec.Currency),
			MUC:           normalize.FormatAmount(rec.MUC, rec.Currency),
			Toll:          normalize.FormatAmount(rec.Toll, rec.Currency),
			Currency:      rec.Currency,
			Raw:           raw,
		})
	}
	return out
}

// originDraftFromForm stages the posted fields. The name falls back to
// the cached session display name, mirroring the pre-filled field.
func originDraftFromForm(c *gin.Context, cachedName string) *models.FormDraft {
	draft := &models.FormDraft{
		Name:          c.PostForm("name"),
		POR:           c.PostForm("por"),
		POL:           c.PostForm("pol"),
		ContainerType: c.PostForm("container_type"),
		ShippingLine:  c.PostForm("shipping_lines"),
		Currency:      c.DefaultPostForm("currency", "₹"),
		Costs:         make(map[string]models.CostInput, len(forms.OriginCostFields)),
	}
	if draft.Name == "" {
		draft.Name = cachedName
	}
	for _, field := range forms.OriginCostFields {
		draft.Costs[field] = models.CostInput{
			Value:    c.PostForm(field),
			Currency: c.DefaultPostForm(field+"_currency", draft.Currency),
		}
	}
	return draft
}

// originPageData assembles everything the add-origin page renders: the
// form options, the draft, and the signed-in user's own records.
func (h *Handlers) originPageData(c *gin.Context, draft *models.FormDraft, errorMessage string) gin.H {
	sess := currentSession(c)
	sessionID := c.GetString("session_id")

	data := gin.H{
		"Title":           "Add Origin/Local Charges - FreightPro",
		"User":            sess.DisplayName,
		"Draft":           draft,
		"POROptions":      refdata.POROptions(),
		"POLOptions":      refdata.POLOptions(),
		"ContainerTypes":  refdata.ContainerTypeOptions(),
		"ShippingLines":   refdata.ShippingLineOptions(),
		"CurrencySymbols": refdata.CurrencySymbols,
		"CostFields":      forms.OriginCostFields,
		"Error":           errorMessage,
	}

	records, err := h.client.ListUserOriginCharges(c.Request.Context(), sessionID)
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

	result := listview.Apply(originListRows(records), listview.Query{
		Page:     queryPage(c),
		PageSize: listview.OwnRecordsPageSize,
	}, sess.DisplayName)

	data["Records"] = originDisplayRows(result.Rows, sess.DisplayName)
	data["Page"] = result.Page
	data["TotalPages"] = result.TotalPages
	data["TotalCount"] = result.TotalCount
	data["PageQuery"] = ""
	return data
}

// filterQuery prefixes pagination links with the active filters so
// moving between pages keeps them.
func filterQuery(c *gin.Context) string {
	q := url.Values{}
	if user := c.Query("user"); user != "" {
		q.Set("user", user)
	}
	if line := c.Query("line"); line != "" {
		q.Set("line", line)
	}
	if encoded := q.Encode(); encoded != "" {
		return encoded + "&"
	}
	return ""
}

func (h *Handlers) handleAddOriginPage(c *gin.Context) {
	sess := currentSession(c)

	draft := &models.FormDraft{Name: sess.DisplayName, Currency: "₹"}
	draft.Costs = make(map[string]models.CostInput, len(forms.OriginCostFields))
	for _, field := range forms.OriginCostFields {
		draft.Costs[field] = models.CostInput{Currency: draft.Currency}
	}

	data := h.originPageData(c, draft, "")
	if data == nil {
		return
	}
	if c.Query("success") != "" {
		data["Success"] = "Entry submitted successfully!"
	}
	if c.Query("updated") != "" {
		data["Success"] = "Entry updated successfully!"
	}
	c.HTML(http.StatusOK, "add_origin.html", data)
}

func (h *Handlers) handleSubmitOrigin(c *gin.Context) {
	sess := currentSession(c)
	draft := originDraftFromForm(c, sess.DisplayName)

	if _, err := h.controller.SubmitOrigin(c.Request.Context(), c.GetString("session_id"), draft); err != nil {
		if freight.IsAuthError(err) {
			h.redirectToLogin(c)
			return
		}
		data := h.originPageData(c, draft, userMessage(err))
		if data == nil {
			return
		}
		c.HTML(http.StatusOK, "add_origin.html", data)
		return
	}

	// Redirect-after-post; the GET re-fetches the list.
	c.Redirect(http.StatusFound, "/origin/add?success=1")
}

func (h *Handlers) handleUpdateOrigin(c *gin.Context) {
	sess := currentSession(c)
	draft := originDraftFromForm(c, sess.DisplayName)

	if _, err := h.controller.SubmitOriginEdit(c.Request.Context(), c.GetString("session_id"), c.Param("id"), draft); err != nil {
		if freight.IsAuthError(err) {
			h.redirectToLogin(c)
			return
		}
		data := h.originPageData(c, draft, "Failed to update record: "+userMessage(err))
		if data == nil {
			return
		}
		c.HTML(http.StatusOK, "add_origin.html", data)
		return
	}

	c.Redirect(http.StatusFound, "/origin/add?updated=1")
}

func (h *Handlers) handleViewOrigin(c *gin.Context) {
	sess := currentSession(c)
	sessionID := c.GetString("session_id")

	data := gin.H{
		"Title": "View all India Origin/Local Charges - FreightPro",
		"User":  sess.DisplayName,
	}

	records, err := h.client.ListAllOriginCharges(c.Request.Context(), sessionID)
	if err != nil {
		if freight.IsAuthError(err) {
			h.redirectToLogin(c)
			return
		}
		data["Error"] = userMessage(err)
		c.HTML(http.StatusOK, "view_origin.html", data)
		return
	}

	result := listview.Apply(originListRows(records), listview.Query{
		UsernameFilter:     c.Query("user"),
		ShippingLineFilter: c.Query("line"),
		Page:               queryPage(c),
		PageSize:           listview.DefaultPageSize,
	}, sess.DisplayName)

	data["Records"] = originDisplayRows(result.Rows, sess.DisplayName)
	data["Page"] = result.Page
	data["TotalPages"] = result.TotalPages
	data["FilteredCount"] = result.FilteredCount
	data["TotalCount"] = result.TotalCount
	data["UsernameFilter"] = c.Query("user")
	data["ShippingLineFilter"] = c.Query("line")
	data["UsernameOptions"] = result.UsernameOptions
	data["ShippingLineOptions"] = result.ShippingLineOptions
	data["PageQuery"] = filterQuery(c)
	c.HTML(http.StatusOK, "view_origin.html", data)
}
