package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestGetOwnership(t *testing.T) {
	tests := []struct {
		name      string
		ownership models.Ownership
		want      models.OwnershipResponse
	}{
		{
			name:      "stable",
			ownership: models.Ownership{Owner: admin},
			want:      models.OwnershipResponse{Owner: models.FormatAddress(admin)},
		},
		{
			name:      "pending transfer",
			ownership: models.Ownership{Owner: admin, PendingOwner: bob},
			want: models.OwnershipResponse{
				Owner:        models.FormatAddress(admin),
				PendingOwner: models.FormatAddress(bob),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.vault.EXPECT().Ownership(gomock.Any()).Return(tt.ownership, nil)

			rr := env.do(t, http.MethodGet, "/api/owner", "", nil)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.want, decodeJSONBody[models.OwnershipResponse](t, rr))
		})
	}
}

func TestGetOwnership_NotInitialized(t *testing.T) {
	env := newTestEnv(t)
	env.vault.EXPECT().Ownership(gomock.Any()).Return(models.Ownership{}, errors.New("vault state is not initialized"))

	rr := env.do(t, http.MethodGet, "/api/owner", "", nil)

	assertErrorResponse(t, rr, http.StatusInternalServerError, service.KindInternal)
	assert.NotContains(t, rr.Body.String(), "not initialized")
}

func TestRequestOwnershipTransfer(t *testing.T) {
	env := newTestEnv(t)
	env.vault.EXPECT().RequestOwnershipTransfer(gomock.Any(), admin, bob).Return(nil)

	rr := env.do(t, http.MethodPost, "/api/owner/transfer", adminToken,
		models.TransferOwnershipRequest{NewOwner: models.FormatAddress(bob)})

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestRequestOwnershipTransfer_Errors(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		body       any
		setup      func(env *testEnv)
		wantStatus int
		wantKind   service.ErrorKind
	}{
		{
			name:       "malformed address",
			token:      adminToken,
			body:       models.TransferOwnershipRequest{NewOwner: "not-an-address"},
			wantStatus: http.StatusBadRequest,
			wantKind:   service.KindInvalidArgument,
		},
		{
			name:       "invalid json",
			token:      adminToken,
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantKind:   service.KindInvalidEncoding,
		},
		{
			name:  "null new owner",
			token: adminToken,
			body:  models.TransferOwnershipRequest{},
			setup: func(env *testEnv) {
				env.vault.EXPECT().RequestOwnershipTransfer(gomock.Any(), admin, models.NullAddress).
					Return(fmt.Errorf("%w: new owner is the null identity", service.ErrInvalidArgument))
			},
			wantStatus: http.StatusBadRequest,
			wantKind:   service.KindInvalidArgument,
		},
		{
			name:  "caller is not the owner",
			token: aliceToken,
			body:  models.TransferOwnershipRequest{NewOwner: models.FormatAddress(bob)},
			setup: func(env *testEnv) {
				env.vault.EXPECT().RequestOwnershipTransfer(gomock.Any(), alice, bob).Return(service.ErrUnauthorized)
			},
			wantStatus: http.StatusForbidden,
			wantKind:   service.KindUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			rr := env.do(t, http.MethodPost, "/api/owner/transfer", tt.token, tt.body)

			assertErrorResponse(t, rr, tt.wantStatus, tt.wantKind)
		})
	}
}

func TestAcceptOwnership(t *testing.T) {
	env := newTestEnv(t)
	env.vault.EXPECT().AcceptOwnership(gomock.Any(), bob).Return(nil)

	rr := env.do(t, http.MethodPost, "/api/owner/accept", bobToken, nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAcceptOwnership_NotPending(t *testing.T) {
	env := newTestEnv(t)
	env.vault.EXPECT().AcceptOwnership(gomock.Any(), alice).Return(service.ErrUnauthorized)

	rr := env.do(t, http.MethodPost, "/api/owner/accept", aliceToken, nil)

	assertErrorResponse(t, rr, http.StatusForbidden, service.KindUnauthorized)
}

func TestRenounceOwnership_Unsupported(t *testing.T) {
	env := newTestEnv(t)
	env.vault.EXPECT().RenounceOwnership(gomock.Any(), admin).Return(service.ErrUnsupported)

	rr := env.do(t, http.MethodPost, "/api/owner/renounce", adminToken, nil)

	assertErrorResponse(t, rr, http.StatusNotImplemented, service.KindUnsupported)
}
