// Package moneylog implements the money-log editing aggregate: the
// field-by-field update operations, the editing-state bookkeeping that
// gates the completion button, and the mode-dependent validation state
// machine that gates submission.
package moneylog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Money-Together/moneytogether/internal/editstate"
	"github.com/Money-Together/moneytogether/internal/models"
	"github.com/Money-Together/moneytogether/internal/moneyfmt"
)

// EditSession drives one money-log edit flow, create or update. The
// wallet and the user's own ID are read-only collaborator data supplied
// at construction; the session never fetches anything itself. Owned by a
// single goroutine (the UI loop); not safe for concurrent use.
type EditSession struct {
	wallet models.Wallet
	meID   uuid.UUID
	mode   editstate.Mode[models.MoneyLog]
	fmt    moneyfmt.Formatter
	emit   func(Event)

	// baseline holds the original log in update mode, or the seeded
	// defaults in create mode; field diffs run against it.
	baseline models.MoneyLog
	draft    models.MoneyLog

	amount     editstate.Input[string]
	txType     editstate.Input[models.TransactionType]
	date       editstate.Input[time.Time]
	memo       editstate.Input[string]
	category   editstate.Input[*models.Category]
	asset      editstate.Input[*models.UserAsset]
	isPrivate  editstate.Input[bool]
	useCashbox editstate.Input[bool]
	members    editstate.Input[[]models.SettlementMember]

	canComplete bool
	errType     InputError
}

// NewCreateSession starts an edit flow for a brand-new money log in the
// given wallet. emit receives the session's outbound events; nil is
// replaced with a no-op.
func NewCreateSession(wallet models.Wallet, meID uuid.UUID, emit func(Event)) *EditSession {
	defaults := models.MoneyLog{
		Date:     time.Now(),
		Currency: wallet.BaseCurrency,
		Type:     models.TransactionSpending,
	}
	s := newSession(wallet, meID, emit, defaults, editstate.CreateMode[models.MoneyLog]())

	// Required inputs start with no value in create mode.
	s.amount = editstate.EmptyInput[string]()
	s.category = editstate.EmptyInput[*models.Category]()
	s.recompute()
	return s
}

// NewUpdateSession starts an edit flow over an existing money log.
func NewUpdateSession(wallet models.Wallet, meID uuid.UUID, orig models.MoneyLog, emit func(Event)) *EditSession {
	return newSession(wallet, meID, emit, models.MoneyLog{}, editstate.UpdateMode(orig))
}

// newSession diffs against the mode's original when one exists; create
// mode diffs against the seeded defaults so a toggle returned to its
// default classifies as unchanged.
func newSession(wallet models.Wallet, meID uuid.UUID, emit func(Event), defaults models.MoneyLog, mode editstate.Mode[models.MoneyLog]) *EditSession {
	if emit == nil {
		emit = func(Event) {}
	}
	baseline := defaults
	if orig, ok := mode.Original(); ok {
		baseline = orig
	}
	baseline.SettlementMembers = append([]models.SettlementMember(nil), baseline.SettlementMembers...)
	draft := baseline
	draft.SettlementMembers = append([]models.SettlementMember(nil), baseline.SettlementMembers...)

	s := &EditSession{
		wallet:     wallet,
		meID:       meID,
		mode:       mode,
		fmt:        moneyfmt.ForCurrency(string(wallet.BaseCurrency)),
		emit:       emit,
		baseline:   baseline,
		draft:      draft,
		amount:     editstate.UnchangedInput[string](),
		txType:     editstate.UnchangedInput[models.TransactionType](),
		date:       editstate.UnchangedInput[time.Time](),
		memo:       editstate.UnchangedInput[string](),
		category:   editstate.UnchangedInput[*models.Category](),
		asset:      editstate.UnchangedInput[*models.UserAsset](),
		isPrivate:  editstate.UnchangedInput[bool](),
		useCashbox: editstate.UnchangedInput[bool](),
		members:    editstate.UnchangedInput[[]models.SettlementMember](),
	}
	s.recompute()
	return s
}

// Draft returns a copy of the working money log. Nothing in the copy
// aliases session state: the settlement list and the category/asset
// pointees are cloned.
func (s *EditSession) Draft() models.MoneyLog {
	d := s.draft
	d.SettlementMembers = append([]models.SettlementMember(nil), s.draft.SettlementMembers...)
	if s.draft.Category != nil {
		c := *s.draft.Category
		d.Category = &c
	}
	if s.draft.Asset != nil {
		a := *s.draft.Asset
		d.Asset = &a
	}
	return d
}

// DisplayAmount returns the draft amount in live-typing presentation form:
// grouped thousands with any in-progress fractional suffix preserved.
func (s *EditSession) DisplayAmount() string {
	return s.fmt.DecimalWithPoint(s.draft.Amount)
}

// IsCreate reports whether the session creates a new money log rather
// than editing an existing one. The UI titles the screen with it.
func (s *EditSession) IsCreate() bool { return s.mode.IsCreate() }

// CanComplete reports whether the completion button is enabled: every
// tracked field acceptable and at least one actually updated.
func (s *EditSession) CanComplete() bool { return s.canComplete }

// ErrorType returns the failure recorded by the latest Validate pass.
func (s *EditSession) ErrorType() InputError { return s.errType }

// UpdateAmount records a new transaction total from the amount field.
// Input arrives as typed, possibly grouped; it is stored de-grouped.
func (s *EditSession) UpdateAmount(input string) {
	plain := s.fmt.Plain(input)
	s.draft.Amount = plain
	if plain == "" {
		s.amount = editstate.EmptyInput[string]()
		s.recompute()
		return
	}
	s.amount = editstate.Classify(&s.baseline.Amount, plain, moneyfmt.IsDecimalStyle(plain))
	s.recompute()
}

// UpdateTransactionType switches between spending and earning. Leaving
// spending clears the settlement list: settlement only applies to shared
// spending.
func (s *EditSession) UpdateTransactionType(t models.TransactionType) {
	s.draft.Type = t
	s.txType = editstate.Classify(&s.baseline.Type, t, t == models.TransactionSpending || t == models.TransactionEarning)
	if t != models.TransactionSpending && len(s.draft.SettlementMembers) > 0 {
		s.setMembers(nil)
	}
	s.recompute()
}

// UpdateDate records a new transaction date.
func (s *EditSession) UpdateDate(d time.Time) {
	s.draft.Date = d
	s.date = editstate.ClassifyFunc(&s.baseline.Date, d, true, time.Time.Equal)
	s.recompute()
}

// UpdateMemo records the optional note.
func (s *EditSession) UpdateMemo(memo string) {
	s.draft.Memo = memo
	s.memo = editstate.Classify(&s.baseline.Memo, memo, true)
	s.recompute()
}

// UpdateCategory records the picked category.
func (s *EditSession) UpdateCategory(c models.Category) {
	cc := c
	s.draft.Category = &cc
	s.category = editstate.ClassifyFunc(&s.baseline.Category, &cc, true, eqCategory)
	s.recompute()
}

// UpdateAsset records the personal asset, or clears it with nil.
func (s *EditSession) UpdateAsset(a *models.UserAsset) {
	s.draft.Asset = a
	s.asset = editstate.ClassifyFunc(&s.baseline.Asset, a, true, eqAsset)
	s.recompute()
}

// UpdatePrivacy toggles the personal-only flag.
func (s *EditSession) UpdatePrivacy(private bool) {
	s.draft.IsPrivate = private
	s.isPrivate = editstate.Classify(&s.baseline.IsPrivate, private, true)
	s.recompute()
}

// UpdateCashboxUsage toggles drawing from the wallet cashbox. Turning it
// on while the wallet has no cashbox is silently corrected to off.
func (s *EditSession) UpdateCashboxUsage(use bool) {
	if use && !s.cashboxAvailable() {
		use = false
	}
	s.draft.UseCashbox = use
	s.useCashbox = editstate.Classify(&s.baseline.UseCashbox, use, true)
	s.recompute()
}

// UpdateSettlementMembers replaces the allocation list wholesale, as the
// selection screen reports it.
func (s *EditSession) UpdateSettlementMembers(members []models.SettlementMember) {
	s.setMembers(members)
	s.recompute()
}

// UpdateSettlementMemberAmount edits one participant's owed share in
// place. The entry must exist; a missing ID is a caller-contract
// violation.
func (s *EditSession) UpdateSettlementMemberAmount(memberID uuid.UUID, newAmount string) error {
	plain := s.fmt.Plain(newAmount)
	for i := range s.draft.SettlementMembers {
		if s.draft.SettlementMembers[i].ID != memberID {
			continue
		}
		s.draft.SettlementMembers[i].Amount = plain
		s.reclassifyMembers()
		s.recompute()
		return nil
	}
	return fmt.Errorf("%w: settlement member %s not in the current allocation list", ErrPrecondition, memberID)
}

// RequestMemberSelection asks the coordinator to open the roster-selection
// screen seeded with the current settlement entries.
func (s *EditSession) RequestMemberSelection() {
	current := append([]models.SettlementMember(nil), s.draft.SettlementMembers...)
	s.emit(SelectMembersEvent{Current: current})
}

// Complete validates the draft and, on success, emits it for submission.
func (s *EditSession) Complete() bool {
	if !s.Validate() {
		return false
	}
	s.emit(CompletedEvent{Log: s.Draft()})
	return true
}

// Back requests dismissal of the edit screen.
func (s *EditSession) Back() {
	s.emit(BackEvent{})
}

func (s *EditSession) cashboxAvailable() bool {
	return s.wallet.HasCashbox
}

func (s *EditSession) setMembers(members []models.SettlementMember) {
	s.draft.SettlementMembers = append([]models.SettlementMember(nil), members...)
	s.reclassifyMembers()
}

func (s *EditSession) reclassifyMembers() {
	valid := allocationsDecimalStyle(s.draft.SettlementMembers)
	s.members = editstate.ClassifyFunc(&s.baseline.SettlementMembers, s.draft.SettlementMembers, valid, eqMembers)
}

// recompute re-derives completion-button enablement after a field
// transition: all tracked fields acceptable, at least one updated.
func (s *EditSession) recompute() {
	all := true
	any := false
	for _, f := range []interface {
		Acceptable() bool
		IsUpdated() bool
	}{
		s.amount, s.txType, s.date, s.memo, s.category,
		s.asset, s.isPrivate, s.useCashbox, s.members,
	} {
		all = all && f.Acceptable()
		any = any || f.IsUpdated()
	}
	s.canComplete = all && any
}

func allocationsDecimalStyle(members []models.SettlementMember) bool {
	for _, m := range members {
		if !moneyfmt.IsDecimalStyle(m.Amount) {
			return false
		}
	}
	return true
}

func eqCategory(a, b *models.Category) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqAsset(a, b *models.UserAsset) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqMembers(a, b []models.SettlementMember) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].UserInfo.ID != b[i].UserInfo.ID ||
			a[i].Amount != b[i].Amount ||
			a[i].IsPayer != b[i].IsPayer {
			return false
		}
	}
	return true
}
