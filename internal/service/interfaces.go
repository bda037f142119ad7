package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultService is the request/response surface of the vault. Every call
// carries the identity of an already authenticated caller; calls are
// serialized and each one runs in a single state store transaction.
type VaultService interface {
	// Ownership returns the administrator and the pending administrator.
	Ownership(ctx context.Context) (models.Ownership, error)
	RequestOwnershipTransfer(ctx context.Context, caller, newOwner models.Address) error
	AcceptOwnership(ctx context.Context, caller models.Address) error
	// RenounceOwnership always fails with [ErrUnsupported].
	RenounceOwnership(ctx context.Context, caller models.Address) error

	Fee(ctx context.Context) (models.Amount, error)
	ChangeFee(ctx context.Context, caller models.Address, fee models.Amount) error
	FeePool(ctx context.Context, caller models.Address) (models.Amount, error)

	Subscribe(ctx context.Context, caller models.Address, payment models.Amount) (models.Subscription, error)
	IsSubscribed(ctx context.Context, caller models.Address) (bool, error)
	Subscription(ctx context.Context, caller models.Address) (models.Subscription, error)

	StoreOrUpdate(ctx context.Context, caller models.Address, id models.RecordID, record models.Record) (models.RecordID, error)
	GetStoredPasswords(ctx context.Context, caller models.Address, pageIndex uint64, limit int) ([]models.StoredRecord, error)
	RemoveData(ctx context.Context, caller models.Address, id models.RecordID) error

	// Events lists the audit log to the administrator.
	Events(ctx context.Context, caller models.Address, fromSeq int64, limit int) ([]models.Event, error)
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// logging or metrics.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}

type AuthService interface {
	// CreateToken issues a token whose subject is caller.
	CreateToken(ctx context.Context, caller models.Address) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Clock is the time source of subscription expiry.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// SystemClock returns a [Clock] backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
