package settlement

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Money-Together/moneytogether/internal/models"
)

// Event is a navigation/result request the selection screen's coordinator
// dispatches. Sessions never call back into UI code directly.
type Event interface{ isSelectionEvent() }

// DoneEvent reports the confirmed settlement entries back to the money-log
// edit flow.
type DoneEvent struct {
	Members []models.SettlementMember
}

// BackEvent requests dismissal without confirming.
type BackEvent struct{}

func (DoneEvent) isSelectionEvent() {}
func (BackEvent) isSelectionEvent() {}

// SelectionSession drives the roster-selection screen: which wallet
// members participate in a transaction and who paid. It is owned by a
// single goroutine (the UI loop) and is not safe for concurrent use.
type SelectionSession struct {
	meID    uuid.UUID
	members map[uuid.UUID]SelectableMember
	order   []uuid.UUID // full roster, wallet order

	// displayed is the presentation filter result; it never carries
	// selection state of its own.
	displayed []uuid.UUID

	// selected holds participant IDs, most recently selected first.
	selected []uuid.UUID

	emit func(Event)
}

// NewSelectionSession builds a session from the wallet roster, seeding
// selection and payer flags from the money log's current settlement
// entries. emit receives the session's outbound events; a nil emit is
// replaced with a no-op.
func NewSelectionSession(roster []models.WalletMember, current []models.SettlementMember, meID uuid.UUID, emit func(Event)) *SelectionSession {
	if emit == nil {
		emit = func(Event) {}
	}
	s := &SelectionSession{
		meID:    meID,
		members: make(map[uuid.UUID]SelectableMember, len(roster)),
		order:   make([]uuid.UUID, 0, len(roster)),
		emit:    emit,
	}
	for _, m := range roster {
		s.members[m.ID] = SelectableMember{ID: m.ID, User: models.SimpleUserOf(m)}
		s.order = append(s.order, m.ID)
	}
	s.displayed = append([]uuid.UUID(nil), s.order...)

	// Seed from the existing settlement list, preserving its order.
	for i := len(current) - 1; i >= 0; i-- {
		entry := current[i]
		m, ok := s.members[entry.UserInfo.ID]
		if !ok {
			slog.Warn("settlement entry references unknown wallet member", "user_id", entry.UserInfo.ID)
			continue
		}
		m.IsSelected = true
		m.IsPayer = entry.IsPayer
		s.members[m.ID] = m
		s.selected = append([]uuid.UUID{m.ID}, s.selected...)
	}
	return s
}

// SelectMember marks the member as a participant and prepends it to the
// selected list. Selecting an unknown or already-selected member is a
// logged no-op.
func (s *SelectionSession) SelectMember(id uuid.UUID) {
	m, ok := s.members[id]
	if !ok {
		slog.Warn("select: unknown member", "member_id", id)
		return
	}
	if m.IsSelected {
		slog.Warn("select: member already selected", "member_id", id)
		return
	}
	m.IsSelected = true
	s.members[id] = m
	s.selected = append([]uuid.UUID{id}, s.selected...)
}

// DeselectMember removes the member from the participant list. Payer
// status is revoked along with selection.
func (s *SelectionSession) DeselectMember(id uuid.UUID) {
	m, ok := s.members[id]
	if !ok {
		slog.Warn("deselect: unknown member", "member_id", id)
		return
	}
	m.IsSelected = false
	m.IsPayer = false
	s.members[id] = m
	for i, sel := range s.selected {
		if sel == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			break
		}
	}
}

// SetPayer sets or clears the payer flag. Exactly one payer may hold at a
// time: granting it to one member revokes it from any other.
func (s *SelectionSession) SetPayer(isPayer bool, id uuid.UUID) {
	m, ok := s.members[id]
	if !ok {
		slog.Warn("set payer: unknown member", "member_id", id)
		return
	}
	if isPayer {
		for otherID, other := range s.members {
			if other.IsPayer && otherID != id {
				other.IsPayer = false
				s.members[otherID] = other
			}
		}
	}
	m.IsPayer = isPayer
	s.members[id] = m
}

// FilterDisplayed narrows the displayed roster to members whose nickname
// contains query (case-sensitive). An empty query restores the full
// roster. Selection state is untouched; this is presentation only.
func (s *SelectionSession) FilterDisplayed(query string) {
	if query == "" {
		s.displayed = append(s.displayed[:0], s.order...)
		return
	}
	s.displayed = s.displayed[:0]
	for _, id := range s.order {
		if strings.Contains(s.members[id].User.Nickname, query) {
			s.displayed = append(s.displayed, id)
		}
	}
}

// Displayed returns the roster entries currently visible under the active
// filter, in wallet order.
func (s *SelectionSession) Displayed() []SelectableMember {
	out := make([]SelectableMember, 0, len(s.displayed))
	for _, id := range s.displayed {
		out = append(out, s.members[id])
	}
	return out
}

// Selected returns the participant entries, most recently selected first.
func (s *SelectionSession) Selected() []SelectableMember {
	out := make([]SelectableMember, 0, len(s.selected))
	for _, id := range s.selected {
		out = append(out, s.members[id])
	}
	return out
}

// Member returns the roster entry for id.
func (s *SelectionSession) Member(id uuid.UUID) (SelectableMember, bool) {
	m, ok := s.members[id]
	return m, ok
}

// Done finalizes the selection and emits the confirmed settlement entries.
func (s *SelectionSession) Done() {
	members := make([]models.SettlementMember, 0, len(s.selected))
	for _, id := range s.selected {
		members = append(members, s.members[id].toSettlementMember(s.meID))
	}
	s.emit(DoneEvent{Members: members})
}

// Back requests dismissal without confirming.
func (s *SelectionSession) Back() {
	s.emit(BackEvent{})
}
