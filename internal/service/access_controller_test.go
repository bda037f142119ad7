package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func TestOwnership_InitialState(t *testing.T) {
	v := newTestVault(t, models.ResubscribeReject)

	ownership, err := v.Ownership(context.Background())

	require.NoError(t, err)
	assert.Equal(t, admin, ownership.Owner)
	assert.False(t, ownership.HasPendingTransfer())
}

func TestRequestOwnershipTransfer_OnlyOwner(t *testing.T) {
	v := newTestVault(t, models.ResubscribeReject)

	err := v.RequestOwnershipTransfer(context.Background(), alice, bob)

	require.ErrorIs(t, err, ErrUnauthorized)
	ownership, err := v.Ownership(context.Background())
	require.NoError(t, err)
	assert.False(t, ownership.HasPendingTransfer())
}

func TestRequestOwnershipTransfer_NullOwnerIsInvalid(t *testing.T) {
	v := newTestVault(t, models.ResubscribeReject)

	err := v.RequestOwnershipTransfer(context.Background(), admin, models.NullAddress)

	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOwnershipTransfer_TwoSteps(t *testing.T) {
	ctx := context.Background()
	v := newTestVault(t, models.ResubscribeReject)

	require.NoError(t, v.RequestOwnershipTransfer(ctx, admin, alice))

	ownership, err := v.Ownership(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin, ownership.Owner)
	assert.Equal(t, alice, ownership.PendingOwner)

	require.NoError(t, v.AcceptOwnership(ctx, alice))

	ownership, err = v.Ownership(ctx)
	require.NoError(t, err)
	assert.Equal(t, alice, ownership.Owner)
	assert.False(t, ownership.HasPendingTransfer())

	assert.Equal(t, []models.EventKind{
		models.EventOwnershipTransferStarted,
		models.EventOwnershipTransferred,
	}, v.publisher.kinds())
}

func TestAcceptOwnership_OnlyPendingOwner(t *testing.T) {
	ctx := context.Background()
	v := newTestVault(t, models.ResubscribeReject)
	require.NoError(t, v.RequestOwnershipTransfer(ctx, admin, alice))

	tests := []struct {
		name   string
		caller models.Address
	}{
		{"outgoing owner", admin},
		{"stranger", bob},
		{"null identity", models.NullAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.AcceptOwnership(ctx, tt.caller)
			require.ErrorIs(t, err, ErrUnauthorized)
		})
	}

	ownership, err := v.Ownership(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin, ownership.Owner)
	assert.Equal(t, alice, ownership.PendingOwner)
}

func TestAcceptOwnership_WithoutPendingTransfer(t *testing.T) {
	v := newTestVault(t, models.ResubscribeReject)

	err := v.AcceptOwnership(context.Background(), admin)

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestRequestOwnershipTransfer_ReplacesPendingOwner(t *testing.T) {
	ctx := context.Background()
	v := newTestVault(t, models.ResubscribeReject)

	require.NoError(t, v.RequestOwnershipTransfer(ctx, admin, alice))
	require.NoError(t, v.RequestOwnershipTransfer(ctx, admin, bob))

	require.ErrorIs(t, v.AcceptOwnership(ctx, alice), ErrUnauthorized)
	require.NoError(t, v.AcceptOwnership(ctx, bob))
}

func TestOwnershipTransfer_NewOwnerTakesAdminRights(t *testing.T) {
	ctx := context.Background()
	v := newTestVault(t, models.ResubscribeReject)
	require.NoError(t, v.RequestOwnershipTransfer(ctx, admin, alice))
	require.NoError(t, v.AcceptOwnership(ctx, alice))

	require.ErrorIs(t, v.ChangeFee(ctx, admin, 1), ErrUnauthorized)
	require.NoError(t, v.ChangeFee(ctx, alice, 1))

	_, err := v.Subscribe(ctx, alice, 0)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = v.Subscribe(ctx, admin, 0)
	require.NoError(t, err, "the former owner becomes a regular caller")
}

func TestRenounceOwnership_AlwaysUnsupported(t *testing.T) {
	ctx := context.Background()
	v := newTestVault(t, models.ResubscribeReject)

	for _, caller := range []models.Address{admin, alice, models.NullAddress} {
		require.ErrorIs(t, v.RenounceOwnership(ctx, caller), ErrUnsupported)
	}

	ownership, err := v.Ownership(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin, ownership.Owner)
}
