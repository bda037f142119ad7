package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// accessController runs the two-step ownership transfer of the
// administrator slot: Stable(owner) -> PendingTransfer(owner, pending) ->
// Stable(pending).
type accessController struct{}

// requireOwner loads the settings and fails unless caller is the owner.
func (accessController) requireOwner(ctx context.Context, op *operation, caller models.Address) (models.VaultSettings, error) {
	settings, err := op.tx.Settings(ctx)
	if err != nil {
		return models.VaultSettings{}, err
	}

	if models.IsNullAddress(caller) || !settings.Owner.Equals(caller) {
		return settings, fmt.Errorf("%w: caller is not the administrator", ErrUnauthorized)
	}

	return settings, nil
}

func (a accessController) requestTransfer(ctx context.Context, op *operation, caller, newOwner models.Address) error {
	settings, err := a.requireOwner(ctx, op, caller)
	if err != nil {
		return err
	}

	if models.IsNullAddress(newOwner) {
		return fmt.Errorf("%w: new owner is the null identity", ErrInvalidArgument)
	}

	settings.PendingOwner = newOwner
	if err = op.tx.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("error saving pending owner: %w", err)
	}

	return op.emit(ctx, models.EventOwnershipTransferStarted, caller, map[string]string{
		"owner":         models.FormatAddress(settings.Owner),
		"pending_owner": models.FormatAddress(newOwner),
	})
}

func (accessController) acceptTransfer(ctx context.Context, op *operation, caller models.Address) error {
	settings, err := op.tx.Settings(ctx)
	if err != nil {
		return err
	}

	if !settings.HasPendingTransfer() || !settings.PendingOwner.Equals(caller) {
		return fmt.Errorf("%w: caller is not the pending owner", ErrUnauthorized)
	}

	previous := settings.Owner
	settings.Owner = caller
	settings.PendingOwner = models.NullAddress
	if err = op.tx.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("error promoting pending owner: %w", err)
	}

	return op.emit(ctx, models.EventOwnershipTransferred, caller, map[string]string{
		"previous_owner": models.FormatAddress(previous),
		"owner":          models.FormatAddress(caller),
	})
}
