package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpVaultClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPVaultClient constructs the REST implementation of [VaultClient].
// It normalises the base URL from cfg.HTTPAddress, applies the request
// timeout and keeps cfg.Token as the initial bearer token.
func NewHTTPVaultClient(cfg config.Adapter, logger *logger.Logger) (VaultClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	c := &httpVaultClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [VaultClient].
func (c *httpVaultClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token implements [VaultClient].
func (c *httpVaultClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// request starts a request carrying ctx and, when set, the bearer token.
func (c *httpVaultClient) request(ctx context.Context) *resty.Request {
	r := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		r.SetAuthToken(token)
	}
	return r
}

// do runs req and maps transport and server failures to errors.
func (c *httpVaultClient) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Debug().Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("vault request failed")
		return err
	}
	return nil
}

// Version implements [VaultClient].
func (c *httpVaultClient) Version(ctx context.Context) (string, error) {
	req := c.request(ctx)
	resp, err := req.Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("GET /api/version: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// Ownership implements [VaultClient].
func (c *httpVaultClient) Ownership(ctx context.Context) (models.OwnershipResponse, error) {
	var out models.OwnershipResponse
	err := c.do(c.request(ctx).SetResult(&out), resty.MethodGet, "/api/owner")
	return out, err
}

// RequestOwnershipTransfer implements [VaultClient].
func (c *httpVaultClient) RequestOwnershipTransfer(ctx context.Context, newOwner models.Address) error {
	body := models.TransferOwnershipRequest{NewOwner: models.FormatAddress(newOwner)}
	return c.do(c.request(ctx).SetBody(body), resty.MethodPost, "/api/owner/transfer")
}

// AcceptOwnership implements [VaultClient].
func (c *httpVaultClient) AcceptOwnership(ctx context.Context) error {
	return c.do(c.request(ctx), resty.MethodPost, "/api/owner/accept")
}

// RenounceOwnership implements [VaultClient].
func (c *httpVaultClient) RenounceOwnership(ctx context.Context) error {
	return c.do(c.request(ctx), resty.MethodPost, "/api/owner/renounce")
}

// Fee implements [VaultClient].
func (c *httpVaultClient) Fee(ctx context.Context) (models.Amount, error) {
	var out models.FeeResponse
	err := c.do(c.request(ctx).SetResult(&out), resty.MethodGet, "/api/fee")
	return out.Fee, err
}

// ChangeFee implements [VaultClient].
func (c *httpVaultClient) ChangeFee(ctx context.Context, fee models.Amount) error {
	return c.do(c.request(ctx).SetBody(models.FeeRequest{Fee: &fee}), resty.MethodPut, "/api/fee")
}

// FeePool implements [VaultClient].
func (c *httpVaultClient) FeePool(ctx context.Context) (models.Amount, error) {
	var out models.FeeResponse
	err := c.do(c.request(ctx).SetResult(&out), resty.MethodGet, "/api/fee/pool")
	return out.Fee, err
}

// Subscribe implements [VaultClient].
func (c *httpVaultClient) Subscribe(ctx context.Context, payment models.Amount) (models.SubscriptionResponse, error) {
	var out models.SubscriptionResponse
	req := c.request(ctx).SetBody(models.SubscribeRequest{Payment: payment}).SetResult(&out)
	err := c.do(req, resty.MethodPost, "/api/subscription")
	return out, err
}

// Subscription implements [VaultClient].
func (c *httpVaultClient) Subscription(ctx context.Context) (models.SubscriptionResponse, error) {
	var out models.SubscriptionResponse
	err := c.do(c.request(ctx).SetResult(&out), resty.MethodGet, "/api/subscription")
	return out, err
}

// StoreOrUpdate implements [VaultClient].
func (c *httpVaultClient) StoreOrUpdate(ctx context.Context, id models.RecordID, record models.Record) (models.RecordID, error) {
	body := models.StoreRecordRequest{
		Name:        record.Name,
		Description: record.Description,
		Value:       record.Value,
	}
	if !models.IsZeroRecordID(id) {
		body.ID = models.FormatRecordID(id)
	}

	var out models.StoreRecordResponse
	if err := c.do(c.request(ctx).SetBody(body).SetResult(&out), resty.MethodPost, "/api/records"); err != nil {
		return models.ZeroRecordID, err
	}

	stored, err := models.ParseRecordID(out.ID)
	if err != nil {
		return models.ZeroRecordID, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return stored, nil
}

// GetStoredPasswords implements [VaultClient].
func (c *httpVaultClient) GetStoredPasswords(ctx context.Context, pageIndex uint64, limit int) ([]models.StoredRecord, error) {
	var out models.RecordsPageResponse
	req := c.request(ctx).
		SetQueryParam("page", strconv.FormatUint(pageIndex, 10)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out)
	if err := c.do(req, resty.MethodGet, "/api/records"); err != nil {
		return nil, err
	}

	records := make([]models.StoredRecord, 0, len(out.Records))
	for _, r := range out.Records {
		id, err := models.ParseRecordID(r.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
		records = append(records, models.StoredRecord{
			ID: id,
			Record: models.Record{
				Name:        r.Name,
				Description: r.Description,
				Value:       r.Value,
			},
		})
	}
	return records, nil
}

// RemoveData implements [VaultClient].
func (c *httpVaultClient) RemoveData(ctx context.Context, id models.RecordID) error {
	req := c.request(ctx).SetPathParam("id", models.FormatRecordID(id))
	return c.do(req, resty.MethodDelete, "/api/records/{id}")
}

// Events implements [VaultClient].
func (c *httpVaultClient) Events(ctx context.Context, fromSeq int64, limit int) ([]models.EventResponse, error) {
	var out models.EventsResponse
	req := c.request(ctx).
		SetQueryParam("from", strconv.FormatInt(fromSeq, 10)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out)
	if err := c.do(req, resty.MethodGet, "/api/events"); err != nil {
		return nil, err
	}
	return out.Events, nil
}
