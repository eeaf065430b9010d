package models

import "github.com/google/uuid"

// UserStatus reports whether a settlement participant's wallet membership
// is still active.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// SettlementStatus is the per-participant repayment state.
type SettlementStatus string

const (
	SettlementPending   SettlementStatus = "PENDING"
	SettlementCompleted SettlementStatus = "COMPLETED"
	SettlementCancelled SettlementStatus = "CANCELLED"
)

// SettlementMemberStatus pairs the membership state with the repayment
// state. Immutable at the editing layer; the server owns transitions.
type SettlementMemberStatus struct {
	UserStatus       UserStatus
	SettlementStatus SettlementStatus
}

// DefaultSettlementStatus is the status every freshly confirmed
// settlement entry starts with.
func DefaultSettlementStatus() SettlementMemberStatus {
	return SettlementMemberStatus{
		UserStatus:       UserStatusActive,
		SettlementStatus: SettlementPending,
	}
}

// SettlementMember is one finalized allocation entry on a spending money
// log: a participant, whether they fronted the money, and how much of the
// total they owe.
type SettlementMember struct {
	// ID identifies this allocation entry, minted fresh on every
	// selection-confirmation round trip.
	ID uuid.UUID

	// UserInfo identifies the wallet member this entry belongs to.
	UserInfo SimpleUser

	// IsPayer marks the participant who fronted the money. At most one
	// entry per money log carries it.
	IsPayer bool

	// IsMe marks the entry belonging to the session's own user.
	IsMe bool

	// Amount is this participant's owed share as a decimal string,
	// "0" until edited.
	Amount string

	// Status is the membership/repayment state, read-only at this layer.
	Status SettlementMemberStatus
}
