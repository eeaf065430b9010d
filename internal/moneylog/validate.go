package moneylog

import (
	"log/slog"

	"github.com/Money-Together/moneytogether/internal/editstate"
	"github.com/Money-Together/moneytogether/internal/models"
	"github.com/Money-Together/moneytogether/internal/moneyfmt"
	"github.com/Money-Together/moneytogether/internal/settlement"
)

// Validate runs the submission rules in fixed order and stops at the
// first failure, recording it as the session's error type. Later rules
// assume the invariants of earlier ones, so the order is load-bearing.
//
// Rules that depend on the log's mode apply silent corrections instead of
// failing: a cashbox flag without a cashbox, an asset on a shared
// spending, or a settlement list on a non-settling log are cleared, not
// reported.
func (s *EditSession) Validate() bool {
	s.errType = InputErrorNone

	// Cashbox first: every later rule may assume the flag is only set
	// when the wallet actually has one.
	if s.draft.UseCashbox && !s.cashboxAvailable() {
		slog.Debug("validate: cashbox unavailable, clearing flag", "wallet_id", s.wallet.ID)
		s.draft.UseCashbox = false
		s.useCashbox = editstate.Classify(&s.baseline.UseCashbox, false, true)
		s.recompute()
	}

	if ok := s.validateAmount(); !ok {
		return false
	}

	if s.draft.Category == nil {
		return s.fail(InputErrorEmptyCategory)
	}

	if s.draft.IsPrivate && s.draft.UseCashbox {
		return s.fail(InputErrorCashboxUnavailable)
	}

	if ok := s.validateAsset(); !ok {
		return false
	}

	return s.validateSettlement()
}

func (s *EditSession) validateAmount() bool {
	if s.draft.Amount == "" {
		return s.fail(InputErrorEmptyAmount)
	}
	if !moneyfmt.IsDecimalStyle(s.draft.Amount) {
		return s.fail(InputErrorInvalidAmount)
	}
	return true
}

// validateAsset applies the mode-dependent asset rule: cashbox logs and
// shared spendings carry no personal asset; private logs and plain
// earnings require one.
func (s *EditSession) validateAsset() bool {
	switch {
	case s.draft.UseCashbox:
		s.forceAssetNil()
	case s.draft.IsPrivate:
		if s.draft.Asset == nil {
			return s.fail(InputErrorEmptyAsset)
		}
	case s.draft.Type == models.TransactionSpending:
		// Shared spending settles among members, not against an asset.
		s.forceAssetNil()
	default:
		if s.draft.Asset == nil {
			return s.fail(InputErrorEmptyAsset)
		}
	}
	return true
}

// validateSettlement applies the settlement-scope rule: only shared
// spendings settle. Active settlement requires a non-empty list whose
// allocations stay within the transaction amount.
func (s *EditSession) validateSettlement() bool {
	if s.draft.Type != models.TransactionSpending || s.draft.IsPrivate {
		if len(s.draft.SettlementMembers) > 0 {
			slog.Debug("validate: settlement out of scope, clearing list",
				"type", s.draft.Type, "private", s.draft.IsPrivate)
			s.setMembers(nil)
			s.recompute()
		}
		return true
	}

	if len(s.draft.SettlementMembers) == 0 {
		return s.fail(InputErrorEmptySettlementMember)
	}
	if !s.isValidLeftAmount() {
		return s.fail(InputErrorInvalidSettlementAmount)
	}
	return true
}

// isValidLeftAmount reports whether the participants' allocations sum to
// no more than the transaction amount.
func (s *EditSession) isValidLeftAmount() bool {
	left, err := settlement.Leftover(s.draft.Amount, s.draft.SettlementMembers, s.fmt)
	if err != nil {
		slog.Warn("validate: leftover computation failed", "error", err)
		return false
	}
	return !left.IsNegative()
}

func (s *EditSession) fail(e InputError) bool {
	s.errType = e
	return false
}

func (s *EditSession) forceAssetNil() {
	if s.draft.Asset == nil {
		return
	}
	s.draft.Asset = nil
	s.asset = editstate.ClassifyFunc(&s.baseline.Asset, nil, true, eqAsset)
	s.recompute()
}
