// Package settlement implements the participant-selection and allocation
// rules for splitting a spending money log among wallet members.
package settlement

import (
	"github.com/google/uuid"

	"github.com/Money-Together/moneytogether/internal/models"
)

// SelectableMember is the roster-selection working copy of one wallet
// member: a value type keyed by the member's user ID. Mutations replace
// the value in the session's map; nothing aliases these across views.
type SelectableMember struct {
	ID         uuid.UUID // wallet member / user ID
	User       models.SimpleUser
	IsPayer    bool
	IsSelected bool
}

// toSettlementMember finalizes a confirmed selection entry. Every
// confirmation mints a fresh allocation ID and resets the amount and
// status; reopening the selection screen discards prior per-member edits.
func (m SelectableMember) toSettlementMember(meID uuid.UUID) models.SettlementMember {
	return models.SettlementMember{
		ID:       uuid.New(),
		UserInfo: m.User,
		IsPayer:  m.IsPayer,
		IsMe:     m.ID == meID,
		Amount:   "0",
		Status:   models.DefaultSettlementStatus(),
	}
}
