package models

import "github.com/google/uuid"

// Currency is an ISO 4217 currency code.
type Currency string

// Currencies the product currently ships with.
const (
	KRW Currency = "KRW"
	USD Currency = "USD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
)

// Wallet is a shared expense-tracking context. A wallet owns its member
// roster and optionally a pooled cashbox.
type Wallet struct {
	// ID is the unique identifier for the wallet (UUID format).
	ID uuid.UUID

	// Name is the display name of the wallet (e.g., "Roommates").
	Name string

	// BaseCurrency is the currency all money logs in this wallet use.
	BaseCurrency Currency

	// HasCashbox reports whether the wallet's shared cashbox feature is
	// enabled. Cashbox usage is mutually exclusive with private logs.
	HasCashbox bool

	// Members is the wallet's member roster.
	Members []WalletMember
}

// WalletMember is one member of a wallet's roster. Immutable; settlement
// structures reference members by ID rather than owning them.
type WalletMember struct {
	ID         uuid.UUID
	Nickname   string
	ProfileImg string // optional image URL, empty if unset
}

// SimpleUser is the lightweight user payload carried by settlement entries.
type SimpleUser struct {
	ID         uuid.UUID
	Nickname   string
	ProfileImg string
}

// SimpleUserOf converts a roster entry into its settlement-facing form.
func SimpleUserOf(m WalletMember) SimpleUser {
	return SimpleUser{ID: m.ID, Nickname: m.Nickname, ProfileImg: m.ProfileImg}
}
