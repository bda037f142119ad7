// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const testToken = "test-token"

var (
	testOwner = models.Address{0x01}
	testID    = models.RecordID{0xaa, 0xbb}
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *httpVaultClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPVaultClient(config.Adapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
		Token:          testToken,
	}, logger.Nop())
	require.NoError(t, err)
	return c.(*httpVaultClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewHTTPVaultClient_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "http://"} {
		_, err := NewHTTPVaultClient(config.Adapter{HTTPAddress: addr}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidAddress, addr)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"localhost:8080", "http://localhost:8080"},
		{"https://vault.example.com/", "https://vault.example.com"},
		{" http://127.0.0.1:1 ", "http://127.0.0.1:1"},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestSetToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.Equal(t, testToken, c.Token())
	c.SetToken("  other  ")
	assert.Equal(t, "other", c.Token())
}

func TestVersion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.0.0"))
	})

	v, err := c.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v)
}

func TestOwnership(t *testing.T) {
	want := models.OwnershipResponse{Owner: models.FormatAddress(testOwner)}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/owner", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	})

	got, err := c.Ownership(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRequestOwnershipTransfer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/owner/transfer", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		var body models.TransferOwnershipRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.FormatAddress(testOwner), body.NewOwner)

		w.WriteHeader(http.StatusAccepted)
	})

	assert.NoError(t, c.RequestOwnershipTransfer(context.Background(), testOwner))
}

func TestAcceptAndRenounceOwnership(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/owner/accept":
			w.WriteHeader(http.StatusNoContent)
		case "/api/owner/renounce":
			writeJSON(t, w, http.StatusNotImplemented, models.ErrorResponse{Kind: "Unsupported", Reason: "operation is not supported"})
		}
	})

	assert.NoError(t, c.AcceptOwnership(context.Background()))
	assert.ErrorIs(t, c.RenounceOwnership(context.Background()), ErrUnsupported)
}

func TestFeeEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/fee":
			writeJSON(t, w, http.StatusOK, models.FeeResponse{Fee: 10})
		case r.Method == http.MethodPut && r.URL.Path == "/api/fee":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"fee":25}`, string(body))
			writeJSON(t, w, http.StatusOK, models.FeeResponse{Fee: 25})
		case r.URL.Path == "/api/fee/pool":
			writeJSON(t, w, http.StatusOK, models.FeeResponse{Fee: 300})
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})
	ctx := context.Background()

	fee, err := c.Fee(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(10), fee)

	require.NoError(t, c.ChangeFee(ctx, 25))

	pool, err := c.FeePool(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(300), pool)
}

func TestSubscribe(t *testing.T) {
	expiresAt := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body models.SubscribeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Payment == 1 {
			writeJSON(t, w, http.StatusPaymentRequired, models.ErrorResponse{Kind: "InvalidPayment", Reason: "invalid payment"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.SubscriptionResponse{Subscribed: true, ExpiresAt: &expiresAt, HasUsedTrial: true})
	})

	sub, err := c.Subscribe(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, sub.Subscribed)
	require.NotNil(t, sub.ExpiresAt)
	assert.True(t, expiresAt.Equal(*sub.ExpiresAt))

	_, err = c.Subscribe(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestSubscription(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/subscription", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.SubscriptionResponse{HasUsedTrial: true})
	})

	sub, err := c.Subscription(context.Background())

	require.NoError(t, err)
	assert.False(t, sub.Subscribed)
	assert.True(t, sub.HasUsedTrial)
}

func TestStoreOrUpdate(t *testing.T) {
	record := models.Record{Name: []byte("n"), Description: []byte("d"), Value: []byte("0x00ff")}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body models.StoreRecordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, record.Value, body.Value)

		status := http.StatusOK
		if body.ID == "" {
			status = http.StatusCreated
		}
		writeJSON(t, w, status, models.StoreRecordResponse{ID: models.FormatRecordID(testID)})
	})

	id, err := c.StoreOrUpdate(context.Background(), models.ZeroRecordID, record)
	require.NoError(t, err)
	assert.Equal(t, testID, id)

	id, err = c.StoreOrUpdate(context.Background(), testID, record)
	require.NoError(t, err)
	assert.Equal(t, testID, id)
}

func TestStoreOrUpdate_MalformedResponseID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, models.StoreRecordResponse{ID: "nope"})
	})

	_, err := c.StoreOrUpdate(context.Background(), models.ZeroRecordID, models.Record{})

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestGetStoredPasswords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, models.RecordsPageResponse{
			PageIndex: 3,
			Limit:     20,
			Records: []models.RecordResponse{
				{ID: models.FormatRecordID(testID), Name: []byte("n"), Description: []byte("d"), Value: []byte("0x01")},
			},
			Length: 1,
		})
	})

	records, err := c.GetStoredPasswords(context.Background(), 3, 20)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, testID, records[0].ID)
	assert.Equal(t, []byte("0x01"), records[0].Value)
}

func TestRemoveData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/api/records/"+models.FormatRecordID(testID) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Kind: "NotFound", Reason: "record not found"})
	})

	assert.NoError(t, c.RemoveData(context.Background(), testID))
	assert.ErrorIs(t, c.RemoveData(context.Background(), models.RecordID{0x01}), ErrNotFound)
}

func TestEvents(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("from"))
		writeJSON(t, w, http.StatusOK, models.EventsResponse{
			Events: []models.EventResponse{{Seq: 5, Kind: models.EventSubscribed}},
			Length: 1,
		})
	})

	events, err := c.Events(context.Background(), 5, 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventSubscribed, events[0].Kind)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"kind from body", http.StatusPaymentRequired, `{"kind":"NotSubscribed","reason":"caller is not subscribed"}`, ErrNotSubscribed},
		{"hex kind", http.StatusBadRequest, `{"kind":"InvalidHexValue","reason":"x"}`, ErrInvalidHexValue},
		{"rate limited", http.StatusTooManyRequests, `{"kind":"RateLimited","reason":"x"}`, ErrRateLimited},
		{"plain 401", http.StatusUnauthorized, "denied", ErrUnauthorized},
		{"plain 502", http.StatusBadGateway, "", ErrUnexpectedResponse},
		{"unknown kind", http.StatusTeapot, `{"kind":"Teapot","reason":"x"}`, ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Fee(context.Background())

			assert.ErrorIs(t, err, tt.want)
		})
	}
}
