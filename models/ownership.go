package models

// Ownership is the administrator slot of the vault.
//
// PendingOwner is [NullAddress] unless a transfer has been requested and not
// yet accepted.
type Ownership struct {
	Owner        Address
	PendingOwner Address
}

// HasPendingTransfer reports whether a transfer waits for acceptance.
func (o Ownership) HasPendingTransfer() bool {
	return !IsNullAddress(o.PendingOwner)
}

// VaultSettings is the singleton state shared by the access controller and
// the subscription registry.
type VaultSettings struct {
	Ownership
	Fee     Amount
	FeePool Amount
}
