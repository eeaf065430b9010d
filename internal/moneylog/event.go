package moneylog

import "github.com/Money-Together/moneytogether/internal/models"

// Event is a navigation/result request emitted by the edit session. The
// owning coordinator is the single dispatch point; the session never holds
// UI callbacks of its own.
type Event interface{ isEditEvent() }

// SelectMembersEvent requests the roster-selection screen, carrying the
// current settlement entries so selection can be seeded from them.
type SelectMembersEvent struct {
	Current []models.SettlementMember
}

// CompletedEvent reports a validated money log ready for submission.
type CompletedEvent struct {
	Log models.MoneyLog
}

// BackEvent requests dismissal of the edit screen.
type BackEvent struct{}

func (SelectMembersEvent) isEditEvent() {}
func (CompletedEvent) isEditEvent()     {}
func (BackEvent) isEditEvent()          {}
