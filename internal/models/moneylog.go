package models

import "time"

// TransactionType distinguishes money going out from money coming in.
type TransactionType string

const (
	TransactionSpending TransactionType = "SPENDING"
	TransactionEarning  TransactionType = "EARNING"
)

// MoneyLog is one income or expense transaction recorded in a wallet.
//
// Invariants (enforced by the edit session's Validate, not by this struct):
//   - UseCashbox and IsPrivate are never both true.
//   - SettlementMembers is empty unless Type is spending and the log is not
//     private.
//   - When UseCashbox is true, Asset is nil.
//   - The sum of participant allocations never exceeds Amount while
//     settlement is active.
type MoneyLog struct {
	// Date is the transaction date.
	Date time.Time

	// Currency is the wallet's base currency at the time of entry.
	Currency Currency

	// Amount is the transaction total as a decimal string without grouping
	// separators (e.g., "12345.67").
	Amount string

	// Type is spending or earning.
	Type TransactionType

	// Memo is an optional free-text note.
	Memo string

	// Category is the assigned category, nil until the user picks one.
	Category *Category

	// Asset is the personal asset the transaction draws from or deposits
	// to. Nil when the log uses the cashbox or is a shared spending.
	Asset *UserAsset

	// IsPrivate marks a personal-only log, invisible to other members.
	IsPrivate bool

	// UseCashbox marks the log as drawing from the wallet's pooled cashbox.
	UseCashbox bool

	// SettlementMembers is the ordered participant allocation list. Empty
	// unless settlement is active for this log.
	SettlementMembers []SettlementMember
}

// UserAsset is a personal account or payment method owned by one user
// (e.g., a bank account or card).
type UserAsset struct {
	ID   string
	Name string
}
