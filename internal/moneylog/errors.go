package moneylog

import "errors"

// ErrPrecondition marks caller-contract violations: required upstream data
// (a member ID, an original money log) was missing where the flow
// guarantees it. Returned wrapped, never panicked.
var ErrPrecondition = errors.New("precondition violated")

// InputError is the closed taxonomy of validation failures. Validate sets
// exactly one per pass; the UI reads it and renders the message.
type InputError int

const (
	InputErrorNone InputError = iota
	InputErrorEmptyAmount
	InputErrorInvalidAmount
	InputErrorEmptyCategory
	InputErrorInvalidCategory // declared for taxonomy parity; no rule currently yields it
	InputErrorEmptySettlementMember
	InputErrorInvalidSettlementAmount
	InputErrorEmptyAsset
	InputErrorCashboxUnavailable
	InputErrorCommonInput
)

// Message is the human-readable reason shown under the form.
func (e InputError) Message() string {
	switch e {
	case InputErrorNone:
		return ""
	case InputErrorEmptyAmount:
		return "Enter an amount."
	case InputErrorInvalidAmount:
		return "The amount must be a number."
	case InputErrorEmptyCategory:
		return "Pick a category."
	case InputErrorInvalidCategory:
		return "The selected category is not available."
	case InputErrorEmptySettlementMember:
		return "Pick who shares this expense."
	case InputErrorInvalidSettlementAmount:
		return "Member shares exceed the total amount."
	case InputErrorEmptyAsset:
		return "Pick an asset."
	case InputErrorCashboxUnavailable:
		return "The cashbox cannot be used with a private log."
	default:
		return "Check your input and try again."
	}
}

func (e InputError) String() string {
	switch e {
	case InputErrorNone:
		return "none"
	case InputErrorEmptyAmount:
		return "emptyAmount"
	case InputErrorInvalidAmount:
		return "invalidAmount"
	case InputErrorEmptyCategory:
		return "emptyCategory"
	case InputErrorInvalidCategory:
		return "invalidCategory"
	case InputErrorEmptySettlementMember:
		return "emptySettlementMember"
	case InputErrorInvalidSettlementAmount:
		return "invalidSettlementAmount"
	case InputErrorEmptyAsset:
		return "emptyAsset"
	case InputErrorCashboxUnavailable:
		return "cashboxUnavailable"
	case InputErrorCommonInput:
		return "commonInputError"
	default:
		return "unknown"
	}
}
