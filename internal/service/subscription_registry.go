package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	subscriptionKindTrial = "trial"
	subscriptionKindPaid  = "paid"
)

// subscriptionRegistry applies the trial and paid subscription rules and
// owns the fee.
type subscriptionRegistry struct {
	trialPeriod time.Duration
	paidPeriod  time.Duration
	policy      models.ResubscribePolicy
}

func (r subscriptionRegistry) subscribe(ctx context.Context, op *operation, caller models.Address, payment models.Amount) (models.Subscription, error) {
	if models.IsNullAddress(caller) {
		return models.Subscription{}, fmt.Errorf("%w: caller is the null identity", ErrUnauthorized)
	}

	settings, err := op.tx.Settings(ctx)
	if err != nil {
		return models.Subscription{}, err
	}
	if settings.Owner.Equals(caller) {
		return models.Subscription{}, fmt.Errorf("%w: the administrator cannot subscribe", ErrForbidden)
	}

	sub, err := op.tx.Subscription(ctx, caller)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("error loading subscription: %w", err)
	}
	sub.Caller = caller
	active := sub.IsActive(op.now)

	if payment == 0 {
		switch {
		case !sub.HasUsedTrial && active:
			return models.Subscription{}, fmt.Errorf("%w: a paid subscription is active", ErrAlreadySubscribed)
		case !sub.HasUsedTrial:
			sub.HasUsedTrial = true
			sub.ExpiresAt = op.now.Add(r.trialPeriod)
			return sub, r.save(ctx, op, sub, subscriptionKindTrial, payment)
		case active:
			return models.Subscription{}, fmt.Errorf("%w: the trial has already been used", ErrTrialAlreadyUsed)
		}
	}

	if payment != settings.Fee {
		return models.Subscription{}, fmt.Errorf("%w: payment %d does not match fee %d", ErrInvalidPayment, payment, settings.Fee)
	}

	base := op.now
	if active {
		if r.policy != models.ResubscribeExtend {
			return models.Subscription{}, fmt.Errorf("%w: subscription expires at %s", ErrAlreadySubscribed, sub.ExpiresAt.Format(time.RFC3339))
		}
		base = sub.ExpiresAt
	}

	settings.FeePool, err = addAmounts(settings.FeePool, payment)
	if err != nil {
		return models.Subscription{}, err
	}
	if err = op.tx.SaveSettings(ctx, settings); err != nil {
		return models.Subscription{}, fmt.Errorf("error crediting fee pool: %w", err)
	}

	sub.ExpiresAt = base.Add(r.paidPeriod)
	return sub, r.save(ctx, op, sub, subscriptionKindPaid, payment)
}

func (subscriptionRegistry) save(ctx context.Context, op *operation, sub models.Subscription, kind string, payment models.Amount) error {
	if err := op.tx.SaveSubscription(ctx, sub); err != nil {
		return fmt.Errorf("error saving subscription: %w", err)
	}

	return op.emit(ctx, models.EventSubscribed, sub.Caller, map[string]string{
		"kind":       kind,
		"expires_at": sub.ExpiresAt.UTC().Format(time.RFC3339Nano),
		"payment":    strconv.FormatUint(payment, 10),
	})
}

func (subscriptionRegistry) changeFee(ctx context.Context, op *operation, caller models.Address, fee models.Amount) error {
	settings, err := accessController{}.requireOwner(ctx, op, caller)
	if err != nil {
		return err
	}

	if fee > math.MaxInt64 {
		return fmt.Errorf("%w: fee exceeds %d", ErrInvalidArgument, int64(math.MaxInt64))
	}

	old := settings.Fee
	settings.Fee = fee
	if err = op.tx.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("error saving fee: %w", err)
	}

	return op.emit(ctx, models.EventFeeChanged, caller, map[string]string{
		"old": strconv.FormatUint(old, 10),
		"new": strconv.FormatUint(fee, 10),
	})
}

// requireAccess admits the administrator and active subscribers.
func (subscriptionRegistry) requireAccess(ctx context.Context, op *operation, caller models.Address) error {
	if models.IsNullAddress(caller) {
		return fmt.Errorf("%w: caller is the null identity", ErrNotSubscribed)
	}

	settings, err := op.tx.Settings(ctx)
	if err != nil {
		return err
	}
	if settings.Owner.Equals(caller) {
		return nil
	}

	sub, err := op.tx.Subscription(ctx, caller)
	if err != nil {
		return fmt.Errorf("error loading subscription: %w", err)
	}
	if !sub.IsActive(op.now) {
		return fmt.Errorf("%w: subscription is missing or expired", ErrNotSubscribed)
	}

	return nil
}
