package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

var recordID = models.RecordID{0x01, 0x02, 0x03}

func storeRequest(id string) models.StoreRecordRequest {
	return models.StoreRecordRequest{
		ID:          id,
		Name:        []byte("mail"),
		Description: []byte("personal"),
		Value:       []byte("0xdeadbeef"),
	}
}

func TestStoreOrUpdate_Create(t *testing.T) {
	env := newTestEnv(t)
	want := models.Record{Name: []byte("mail"), Description: []byte("personal"), Value: []byte("0xdeadbeef")}
	env.vault.EXPECT().StoreOrUpdate(gomock.Any(), alice, models.ZeroRecordID, want).Return(recordID, nil)

	rr := env.do(t, http.MethodPost, "/api/records", aliceToken, storeRequest(""))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	resp := decodeJSONBody[models.StoreRecordResponse](t, rr)
	assert.Equal(t, models.FormatRecordID(recordID), resp.ID)
}

func TestStoreOrUpdate_Update(t *testing.T) {
	env := newTestEnv(t)
	env.vault.EXPECT().StoreOrUpdate(gomock.Any(), alice, recordID, gomock.Any()).Return(recordID, nil)

	rr := env.do(t, http.MethodPost, "/api/records", aliceToken, storeRequest(models.FormatRecordID(recordID)))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resp := decodeJSONBody[models.StoreRecordResponse](t, rr)
	assert.Equal(t, models.FormatRecordID(recordID), resp.ID)
}

func TestStoreOrUpdate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		err        error
		wantStatus int
		wantKind   service.ErrorKind
	}{
		{
			name:       "malformed id",
			body:       storeRequest("0xzz"),
			wantStatus: http.StatusBadRequest,
			wantKind:   service.KindInvalidEncoding,
		},
		{
			name:       "field is not base64",
			body:       `{"name":"***","description":"","value":""}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   service.KindInvalidEncoding,
		},
		{
			name:       "value is not hex",
			body:       storeRequest(""),
			err:        service.ErrInvalidHexValue,
			wantStatus: http.StatusBadRequest,
			wantKind:   service.KindInvalidHexValue,
		},
		{
			name:       "not subscribed",
			body:       storeRequest(""),
			err:        service.ErrNotSubscribed,
			wantStatus: http.StatusPaymentRequired,
			wantKind:   service.KindNotSubscribed,
		},
		{
			name:       "unknown id",
			body:       storeRequest(models.FormatRecordID(recordID)),
			err:        service.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantKind:   service.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.err != nil {
				env.vault.EXPECT().StoreOrUpdate(gomock.Any(), alice, gomock.Any(), gomock.Any()).
					Return(models.ZeroRecordID, tt.err)
			}

			rr := env.do(t, http.MethodPost, "/api/records", aliceToken, tt.body)

			assertErrorResponse(t, rr, tt.wantStatus, tt.wantKind)
		})
	}
}

func TestGetStoredPasswords(t *testing.T) {
	env := newTestEnv(t)
	records := []models.StoredRecord{
		{ID: recordID, Record: models.Record{Name: []byte("a"), Description: []byte("b"), Value: []byte("0x00")}},
	}
	env.vault.EXPECT().GetStoredPasswords(gomock.Any(), alice, uint64(2), 5).Return(records, nil)

	rr := env.do(t, http.MethodGet, "/api/records?page=2&limit=5", aliceToken, nil)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resp := decodeJSONBody[models.RecordsPageResponse](t, rr)
	assert.Equal(t, uint64(2), resp.PageIndex)
	assert.Equal(t, 5, resp.Limit)
	assert.Equal(t, 1, resp.Length)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, models.NewRecordResponse(records[0]), resp.Records[0])
}

func TestGetStoredPasswords_Defaults(t *testing.T) {
	env := newTestEnv(t)
	env.vault.EXPECT().GetStoredPasswords(gomock.Any(), alice, uint64(0), defaultPageLimit).
		Return([]models.StoredRecord{}, nil)

	rr := env.do(t, http.MethodGet, "/api/records", aliceToken, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeJSONBody[models.RecordsPageResponse](t, rr)
	assert.NotNil(t, resp.Records)
	assert.Empty(t, resp.Records)
}

func TestGetStoredPasswords_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
		wantKind   service.ErrorKind
	}{
		{"page not a number", "?page=x", nil, http.StatusBadRequest, service.KindInvalidArgument},
		{"negative page", "?page=-1", nil, http.StatusBadRequest, service.KindInvalidArgument},
		{"limit not a number", "?limit=ten", nil, http.StatusBadRequest, service.KindInvalidArgument},
		{"limit out of range", "?limit=256", service.ErrInvalidArgument, http.StatusBadRequest, service.KindInvalidArgument},
		{"not subscribed", "", service.ErrNotSubscribed, http.StatusPaymentRequired, service.KindNotSubscribed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.err != nil {
				env.vault.EXPECT().GetStoredPasswords(gomock.Any(), alice, gomock.Any(), gomock.Any()).Return(nil, tt.err)
			}

			rr := env.do(t, http.MethodGet, "/api/records"+tt.query, aliceToken, nil)

			assertErrorResponse(t, rr, tt.wantStatus, tt.wantKind)
		})
	}
}

func TestRemoveData(t *testing.T) {
	env := newTestEnv(t)
	env.vault.EXPECT().RemoveData(gomock.Any(), alice, recordID).Return(nil)

	rr := env.do(t, http.MethodDelete, "/api/records/"+models.FormatRecordID(recordID), aliceToken, nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRemoveData_Errors(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, http.MethodDelete, "/api/records/0x123", aliceToken, nil)

		assertErrorResponse(t, rr, http.StatusBadRequest, service.KindInvalidEncoding)
	})

	t.Run("malformed id is decoded before the vault is called", func(t *testing.T) {
		env := newTestEnv(t)
		// no RemoveData expectation: an unsubscribed caller never reaches the access check

		rr := env.do(t, http.MethodDelete, "/api/records/not-hex", bobToken, nil)

		assertErrorResponse(t, rr, http.StatusBadRequest, service.KindInvalidEncoding)
	})

	t.Run("foreign id", func(t *testing.T) {
		env := newTestEnv(t)
		env.vault.EXPECT().RemoveData(gomock.Any(), bob, recordID).Return(service.ErrNotFound)

		rr := env.do(t, http.MethodDelete, "/api/records/"+models.FormatRecordID(recordID), bobToken, nil)

		assertErrorResponse(t, rr, http.StatusNotFound, service.KindNotFound)
	})
}
