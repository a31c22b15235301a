package forms

import (
	"context"
	"errors"
	"sync"

	"github.com/ravi-codingcity/Origin-Frontend/internal/config"
	"github.com/ravi-codingcity/Origin-Frontend/internal/freight"
	"github.com/ravi-codingcity/Origin-Frontend/internal/logger"
	"github.com/ravi-codingcity/Origin-Frontend/internal/models"
)

var (
	// ErrSubmissionInFlight rejects a second submit while one is still
	// pending for the same session and form. Submissions are suppressed,
	// never queued.
	ErrSubmissionInFlight = errors.New("submission already in progress")

	// ErrMissingRecordID fails an edit before any network call when the
	// record has no resolvable ID.
	ErrMissingRecordID = errors.New("cannot update record: missing ID")
)

// Controller drives form submissions through the upstream client:
// validate, shape the payload, send once, and on success hand back a
// reset draft so the caller can refresh its list.
type Controller struct {
	client     *freight.Client
	shape      string
	railSchema string

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewController(client *freight.Client, cfg *config.Config) *Controller {
	return &Controller{
		client:     client,
		shape:      cfg.PayloadShape,
		railSchema: cfg.RailWeightSchema,
		inFlight:   make(map[string]struct{}),
	}
}

// begin acquires the in-flight slot for one session+form pair.
func (fc *Controller) begin(key string) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if _, busy := fc.inFlight[key]; busy {
		return ErrSubmissionInFlight
	}
	fc.inFlight[key] = struct{}{}
	return nil
}

func (fc *Controller) end(key string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	delete(fc.inFlight, key)
}

// SubmitOrigin validates and creates an origin charge. The structured
// cost shape is attempted first; if the backend rejects it for any
// non-auth reason the legacy flat shape is sent once. That second
// attempt is shape compatibility for older deployments, not a transient
// retry. On success the draft is reset in place, keeping name and
// currency.
func (fc *Controller) SubmitOrigin(ctx context.Context, sessionID string, draft *models.FormDraft) (*models.OriginCharge, error) {
	if err := ValidateRequired(draft); err != nil {
		return nil, err
	}

	key := sessionID + ":origin"
	if err := fc.begin(key); err != nil {
		return nil, err
	}
	defer fc.end(key)

	created, err := fc.client.CreateOriginCharge(ctx, sessionID, BuildOriginPayload(draft, fc.shape))
	if err != nil && fc.shape == config.PayloadShapeStructured && !freight.IsAuthError(err) {
		logger.Warn("Structured payload rejected, retrying with legacy format", "error", err)
		created, err = fc.client.CreateOriginCharge(ctx, sessionID, BuildOriginPayload(draft, config.PayloadShapeLegacy))
	}
	if err != nil {
		return nil, err
	}

	draft.Reset()
	return created, nil
}

// SubmitOriginEdit updates an existing origin charge. Edits always send
// the legacy flat shape because that is what the update endpoint
// accepts from every deployed backend generation.
func (fc *Controller) SubmitOriginEdit(ctx context.Context, sessionID, recordID string, draft *models.FormDraft) (*models.OriginCharge, error) {
	if recordID == "" {
		return nil, ErrMissingRecordID
	}
	if err := ValidateRequired(draft); err != nil {
		return nil, err
	}

	key := sessionID + ":origin-edit"
	if err := fc.begin(key); err != nil {
		return nil, err
	}
	defer fc.end(key)

	return fc.client.UpdateOriginCharge(ctx, sessionID, recordID, BuildOriginPayload(draft, config.PayloadShapeLegacy))
}

// SubmitRail validates and creates a rail-freight charge. Rail creates
// send the legacy flat weight fields; the backend never accepted the
// structured shape on this endpoint.
func (fc *Controller) SubmitRail(ctx context.Context, sessionID string, draft *models.FormDraft) (*models.RailFreightCharge, error) {
	if err := ValidateRequired(draft); err != nil {
		return nil, err
	}

	key := sessionID + ":rail"
	if err := fc.begin(key); err != nil {
		return nil, err
	}
	defer fc.end(key)

	created, err := fc.client.CreateRailFreightCharge(ctx, sessionID, BuildRailPayload(draft, config.PayloadShapeLegacy, fc.railSchema))
	if err != nil {
		return nil, err
	}

	draft.Reset()
	return created, nil
}

// SubmitRailEdit updates an existing rail-freight charge.
func (fc *Controller) SubmitRailEdit(ctx context.Context, sessionID, recordID string, draft *models.FormDraft) (*models.RailFreightCharge, error) {
	if recordID == "" {
		return nil, ErrMissingRecordID
	}
	if err := ValidateRequired(draft); err != nil {
		return nil, err
	}

	key := sessionID + ":rail-edit"
	if err := fc.begin(key); err != nil {
		return nil, err
	}
	defer fc.end(key)

	return fc.client.UpdateRailFreightCharge(ctx, sessionID, recordID, BuildRailPayload(draft, config.PayloadShapeLegacy, fc.railSchema))
}
