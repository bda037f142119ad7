// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client SDK of the vault HTTP API.
//
// [VaultClient] mirrors the server routes one to one. Failed calls return
// an error wrapping one of the sentinels of errors.go, chosen by the
// error kind of the server's JSON error response, so callers can use
// [errors.Is] without looking at HTTP status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_client_mock.go -package=mock

// VaultClient is a client of one vault server acting for the caller
// identified by its bearer token.
type VaultClient interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)
	Token() string

	Version(ctx context.Context) (string, error)

	Ownership(ctx context.Context) (models.OwnershipResponse, error)
	RequestOwnershipTransfer(ctx context.Context, newOwner models.Address) error
	AcceptOwnership(ctx context.Context) error
	RenounceOwnership(ctx context.Context) error

	Fee(ctx context.Context) (models.Amount, error)
	ChangeFee(ctx context.Context, fee models.Amount) error
	FeePool(ctx context.Context) (models.Amount, error)

	// Subscribe pays payment for a subscription; zero asks for the trial.
	Subscribe(ctx context.Context, payment models.Amount) (models.SubscriptionResponse, error)
	Subscription(ctx context.Context) (models.SubscriptionResponse, error)

	// StoreOrUpdate creates a record when id is zero and overwrites it
	// otherwise. It returns the identifier of the stored record.
	StoreOrUpdate(ctx context.Context, id models.RecordID, record models.Record) (models.RecordID, error)
	GetStoredPasswords(ctx context.Context, pageIndex uint64, limit int) ([]models.StoredRecord, error)
	RemoveData(ctx context.Context, id models.RecordID) error

	Events(ctx context.Context, fromSeq int64, limit int) ([]models.EventResponse, error)
}
