package moneylog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Money-Together/moneytogether/internal/models"
)

func testWallet(hasCashbox bool) (models.Wallet, uuid.UUID) {
	me := uuid.New()
	w := models.Wallet{
		ID:           uuid.New(),
		Name:         "Roommates",
		BaseCurrency: models.USD,
		HasCashbox:   hasCashbox,
		Members: []models.WalletMember{
			{ID: me, Nickname: "haeun"},
			{ID: uuid.New(), Nickname: "minji"},
		},
	}
	return w, me
}

func testCategory() models.Category {
	return models.Category{ID: "cat-1", Name: "Groceries"}
}

func settlementEntry(w models.Wallet, idx int, amount string, payer bool) models.SettlementMember {
	return models.SettlementMember{
		ID:       uuid.New(),
		UserInfo: models.SimpleUserOf(w.Members[idx]),
		IsPayer:  payer,
		Amount:   amount,
		Status:   models.DefaultSettlementStatus(),
	}
}

// validSpendingSession fills a create-mode session up to a submittable
// shared spending.
func validSpendingSession(t *testing.T, w models.Wallet, me uuid.UUID) *EditSession {
	t.Helper()
	s := NewCreateSession(w, me, nil)
	s.UpdateAmount("30000")
	s.UpdateCategory(testCategory())
	s.UpdateSettlementMembers([]models.SettlementMember{
		settlementEntry(w, 0, "10000", true),
		settlementEntry(w, 1, "20000", false),
	})
	return s
}

func TestValidateShortCircuitsOnAmount(t *testing.T) {
	w, me := testWallet(false)
	s := NewCreateSession(w, me, nil)
	// Category is also missing; amount must be reported first.
	require.False(t, s.Validate())
	assert.Equal(t, InputErrorEmptyAmount, s.ErrorType())

	s.UpdateAmount("12a")
	require.False(t, s.Validate())
	assert.Equal(t, InputErrorInvalidAmount, s.ErrorType())

	s.UpdateAmount("12000")
	require.False(t, s.Validate())
	assert.Equal(t, InputErrorEmptyCategory, s.ErrorType())
}

func TestValidateResetsErrorEachPass(t *testing.T) {
	w, me := testWallet(false)
	s := validSpendingSession(t, w, me)

	require.True(t, s.Validate())
	assert.Equal(t, InputErrorNone, s.ErrorType())

	s.UpdateAmount("")
	require.False(t, s.Validate())
	assert.Equal(t, InputErrorEmptyAmount, s.ErrorType())

	s.UpdateAmount("30000")
	require.True(t, s.Validate())
	assert.Equal(t, InputErrorNone, s.ErrorType())
}

func TestCashboxPrivateMutualExclusivity(t *testing.T) {
	w, me := testWallet(true)
	s := NewCreateSession(w, me, nil)
	s.UpdateAmount("5000")
	s.UpdateCategory(testCategory())
	s.UpdatePrivacy(true)
	s.UpdateCashboxUsage(true)

	require.False(t, s.Validate())
	assert.Equal(t, InputErrorCashboxUnavailable, s.ErrorType())

	// After any successful validation the two flags never hold together.
	s.UpdateCashboxUsage(false)
	s.UpdateAsset(&models.UserAsset{ID: "a-1", Name: "Checking"})
	require.True(t, s.Validate())
	d := s.Draft()
	assert.False(t, d.IsPrivate && d.UseCashbox)
}

func TestCashboxSilentlyClearedWhenWalletHasNone(t *testing.T) {
	w, me := testWallet(false)
	s := validSpendingSession(t, w, me)
	s.UpdateCashboxUsage(true) // corrected immediately: no cashbox

	require.True(t, s.Validate())
	assert.False(t, s.Draft().UseCashbox)
}

func TestCashboxForcesAssetNil(t *testing.T) {
	w, me := testWallet(true)
	s := NewCreateSession(w, me, nil)
	s.UpdateAmount("5000")
	s.UpdateCategory(testCategory())
	s.UpdateTransactionType(models.TransactionEarning)
	s.UpdateAsset(&models.UserAsset{ID: "a-1", Name: "Checking"})
	s.UpdateCashboxUsage(true)

	require.True(t, s.Validate())
	assert.Nil(t, s.Draft().Asset)
}

func TestAssetRules(t *testing.T) {
	tests := []struct {
		name    string
		private bool
		txType  models.TransactionType
		asset   *models.UserAsset
		wantOK  bool
		wantErr InputError
	}{
		{"private requires asset", true, models.TransactionSpending, nil, false, InputErrorEmptyAsset},
		{"private with asset passes", true, models.TransactionSpending, &models.UserAsset{ID: "a"}, true, InputErrorNone},
		{"earning requires asset", false, models.TransactionEarning, nil, false, InputErrorEmptyAsset},
		{"earning with asset passes", false, models.TransactionEarning, &models.UserAsset{ID: "a"}, true, InputErrorNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, me := testWallet(false)
			s := NewCreateSession(w, me, nil)
			s.UpdateAmount("5000")
			s.UpdateCategory(testCategory())
			s.UpdateTransactionType(tt.txType)
			s.UpdatePrivacy(tt.private)
			s.UpdateAsset(tt.asset)
			if !tt.private && tt.txType == models.TransactionSpending {
				s.UpdateSettlementMembers([]models.SettlementMember{settlementEntry(w, 0, "5000", true)})
			}

			got := s.Validate()
			assert.Equal(t, tt.wantOK, got)
			assert.Equal(t, tt.wantErr, s.ErrorType())
		})
	}
}

func TestSharedSpendingForcesAssetNil(t *testing.T) {
	w, me := testWallet(false)
	s := validSpendingSession(t, w, me)
	s.UpdateAsset(&models.UserAsset{ID: "a-1", Name: "Checking"})

	require.True(t, s.Validate())
	assert.Nil(t, s.Draft().Asset)
}

func TestSettlementScopeClearedOutsideSharedSpending(t *testing.T) {
	w, me := testWallet(false)

	t.Run("earning clears settlement", func(t *testing.T) {
		s := validSpendingSession(t, w, me)
		s.UpdateTransactionType(models.TransactionEarning)
		s.UpdateAsset(&models.UserAsset{ID: "a-1"})
		require.True(t, s.Validate())
		assert.Empty(t, s.Draft().SettlementMembers)
	})

	t.Run("private clears settlement", func(t *testing.T) {
		s := validSpendingSession(t, w, me)
		s.UpdatePrivacy(true)
		s.UpdateAsset(&models.UserAsset{ID: "a-1"})
		require.True(t, s.Validate())
		assert.Empty(t, s.Draft().SettlementMembers)
	})
}

func TestSettlementRequiredForSharedSpending(t *testing.T) {
	w, me := testWallet(false)
	s := NewCreateSession(w, me, nil)
	s.UpdateAmount("5000")
	s.UpdateCategory(testCategory())

	require.False(t, s.Validate())
	assert.Equal(t, InputErrorEmptySettlementMember, s.ErrorType())
}

func TestLeftoverBound(t *testing.T) {
	w, me := testWallet(false)
	s := validSpendingSession(t, w, me)

	// 10000 + 20000 == 30000: exactly allocated is fine.
	require.True(t, s.Validate())

	require.NoError(t, s.UpdateSettlementMemberAmount(s.Draft().SettlementMembers[0].ID, "20000"))
	require.False(t, s.Validate())
	assert.Equal(t, InputErrorInvalidSettlementAmount, s.ErrorType())

	require.NoError(t, s.UpdateSettlementMemberAmount(s.Draft().SettlementMembers[0].ID, "5000"))
	require.True(t, s.Validate())
}

func TestUpdateSettlementMemberAmountUnknownID(t *testing.T) {
	w, me := testWallet(false)
	s := validSpendingSession(t, w, me)

	err := s.UpdateSettlementMemberAmount(uuid.New(), "100")
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestCompletionEnablement(t *testing.T) {
	w, me := testWallet(false)
	orig := models.MoneyLog{
		Date:     time.Now(),
		Currency: w.BaseCurrency,
		Amount:   "30000",
		Type:     models.TransactionSpending,
		Category: &models.Category{ID: "cat-1", Name: "Groceries"},
		SettlementMembers: []models.SettlementMember{
			settlementEntry(w, 0, "30000", true),
		},
	}

	s := NewUpdateSession(w, me, orig, nil)
	assert.False(t, s.CanComplete(), "nothing changed yet")

	s.UpdateAmount("40000")
	assert.True(t, s.CanComplete())

	s.UpdateAmount("30000")
	assert.False(t, s.CanComplete(), "back to original means nothing updated")

	s.UpdateAmount("4oo")
	assert.False(t, s.CanComplete(), "invalid field blocks the whole form")

	s.UpdateAmount("40000")
	s.UpdateMemo("groceries run")
	assert.True(t, s.CanComplete())
}

func TestUpdateSessionBaselineIsOriginal(t *testing.T) {
	w, me := testWallet(false)
	orig := models.MoneyLog{
		Date:     time.Now(),
		Currency: w.BaseCurrency,
		Amount:   "30000",
		Type:     models.TransactionSpending,
		Memo:     "rent",
		Category: &models.Category{ID: "cat-1", Name: "Housing"},
		SettlementMembers: []models.SettlementMember{
			settlementEntry(w, 0, "30000", true),
		},
	}

	s := NewUpdateSession(w, me, orig, nil)
	assert.False(t, s.IsCreate())

	d := s.Draft()
	assert.Equal(t, orig.Amount, d.Amount)
	assert.Equal(t, orig.Memo, d.Memo)
	assert.Equal(t, orig.Category.Name, d.Category.Name)
	require.Len(t, d.SettlementMembers, 1)

	// Re-entering the original value diffs against it, not against zero.
	s.UpdateMemo("rent")
	assert.False(t, s.CanComplete())
}

func TestDraftDoesNotAliasSessionState(t *testing.T) {
	w, me := testWallet(false)
	s := validSpendingSession(t, w, me)
	s.UpdateAsset(&models.UserAsset{ID: "a-1", Name: "Checking"})

	d := s.Draft()
	d.Category.Name = "mutated"
	d.Asset.Name = "mutated"
	d.SettlementMembers[0].Amount = "999"

	fresh := s.Draft()
	assert.Equal(t, "Groceries", fresh.Category.Name)
	assert.Equal(t, "Checking", fresh.Asset.Name)
	assert.Equal(t, "10000", fresh.SettlementMembers[0].Amount)
}

func TestCreateModeEnablementStartsDisabled(t *testing.T) {
	w, me := testWallet(false)
	s := NewCreateSession(w, me, nil)
	assert.False(t, s.CanComplete(), "required inputs are still empty")

	s.UpdateAmount("5000")
	assert.False(t, s.CanComplete(), "category still empty")

	s.UpdateCategory(testCategory())
	assert.True(t, s.CanComplete())
}

func TestDisplayAmountGroupsWhileTyping(t *testing.T) {
	w, me := testWallet(false)
	s := NewCreateSession(w, me, nil)

	s.UpdateAmount("1234567")
	assert.Equal(t, "1,234,567", s.DisplayAmount())

	s.UpdateAmount("1234.")
	assert.Equal(t, "1,234.", s.DisplayAmount())
}

func TestCompleteEmitsValidatedLog(t *testing.T) {
	w, me := testWallet(false)

	var events []Event
	emit := func(e Event) { events = append(events, e) }

	s := NewCreateSession(w, me, emit)
	s.UpdateAmount("30000")
	s.UpdateCategory(testCategory())

	require.False(t, s.Complete(), "settlement list still empty")
	assert.Empty(t, events)

	s.RequestMemberSelection()
	require.Len(t, events, 1)
	sel, ok := events[0].(SelectMembersEvent)
	require.True(t, ok)
	assert.Empty(t, sel.Current)

	s.UpdateSettlementMembers([]models.SettlementMember{settlementEntry(w, 0, "30000", true)})
	require.True(t, s.Complete())

	done, ok := events[len(events)-1].(CompletedEvent)
	require.True(t, ok)
	assert.Equal(t, "30000", done.Log.Amount)
	require.Len(t, done.Log.SettlementMembers, 1)
}
