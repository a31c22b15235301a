package freight

import (
	"context"
	"net/http"

	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
)

// Payload is a flattened create/update body. The form controller decides
// the cost-field encoding (structured objects or legacy flat numbers);
// the client sends whatever it is handed, once.
type Payload map[string]interface{}

// CreateOriginCharge submits a new origin/local-charges record.
func (c *Client) CreateOriginCharge(ctx context.Context, sessionID string, payload Payload) (*models.OriginCharge, error) {
	var created models.OriginCharge
	if err := c.do(ctx, sessionID, http.MethodPost, originCreatePath, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListUserOriginCharges returns the signed-in user's origin records.
func (c *Client) ListUserOriginCharges(ctx context.Context, sessionID string) ([]models.OriginCharge, error) {
	var records []models.OriginCharge
	if err := c.do(ctx, sessionID, http.MethodGet, originUserPath, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListAllOriginCharges returns every origin record.
func (c *Client) ListAllOriginCharges(ctx context.Context, sessionID string) ([]models.OriginCharge, error) {
	var records []models.OriginCharge
	if err := c.do(ctx, sessionID, http.MethodGet, originAllPath, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateOriginCharge replaces an existing origin record.
func (c *Client) UpdateOriginCharge(ctx context.Context, sessionID, recordID string, payload Payload) (*models.OriginCharge, error) {
	var updated models.OriginCharge
	if err := c.do(ctx, sessionID, http.MethodPut, originFormPath+recordID, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CreateRailFreightCharge submits a new rail-freight record.
func (c *Client) CreateRailFreightCharge(ctx context.Context, sessionID string, payload Payload) (*models.RailFreightCharge, error) {
	var created models.RailFreightCharge
	if err := c.do(ctx, sessionID, http.MethodPost, railCreatePath, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListUserRailFreightCharges returns the signed-in user's rail records.
func (c *Client) ListUserRailFreightCharges(ctx context.Context, sessionID string) ([]models.RailFreightCharge, error) {
	var records []models.RailFreightCharge
	if err := c.do(ctx, sessionID, http.MethodGet, railUserPath, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListAllRailFreightCharges returns every rail-freight record.
func (c *Client) ListAllRailFreightCharges(ctx context.Context, sessionID string) ([]models.RailFreightCharge, error) {
	var records []models.RailFreightCharge
	if err := c.do(ctx, sessionID, http.MethodGet, railAllPath, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateRailFreightCharge replaces an existing rail-freight record.
func (c *Client) UpdateRailFreightCharge(ctx context.Context, sessionID, recordID string, payload Payload) (*models.RailFreightCharge, error) {
	var updated models.RailFreightCharge
	if err := c.do(ctx, sessionID, http.MethodPut, railFormPath+recordID, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
