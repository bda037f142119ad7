// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Subscription is the access state of one caller.
//
// A caller is subscribed while ExpiresAt lies strictly in the future.
// HasUsedTrial only ever moves from false to true.
type Subscription struct {
	Caller       Address
	ExpiresAt    time.Time
	HasUsedTrial bool

	// Active is IsActive evaluated by the vault at the time of the call
	// that returned the subscription. It is not persisted.
	Active bool
}

// IsActive reports whether the subscription is still valid at now.
func (s Subscription) IsActive(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

// ResubscribePolicy decides what happens when an active subscriber pays the
// fee again.
type ResubscribePolicy string

const (
	// ResubscribeReject fails the call with an "already subscribed" error.
	ResubscribeReject ResubscribePolicy = "reject"
	// ResubscribeExtend adds a paid period on top of the current expiry.
	ResubscribeExtend ResubscribePolicy = "extend"
)

// Amount is a payment or fee in the smallest currency unit.
type Amount = uint64
