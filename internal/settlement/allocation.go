package settlement

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Money-Together/moneytogether/internal/models"
	"github.com/Money-Together/moneytogether/internal/moneyfmt"
)

var (
	ErrNoParticipants = errors.New("must have at least one participant")
)

var hundred = decimal.NewFromInt(100)

// SumAllocations totals the participants' owed amounts.
func SumAllocations(members []models.SettlementMember, f moneyfmt.Formatter) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range members {
		amt, err := f.Amount(m.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("allocation for %s is not a valid amount: %w", m.UserInfo.Nickname, err)
		}
		sum = sum.Add(amt)
	}
	return sum, nil
}

// Leftover computes the transaction total minus the sum of current
// allocations. A negative leftover means the participants have been
// allocated more than the transaction amount.
func Leftover(total string, members []models.SettlementMember, f moneyfmt.Formatter) (decimal.Decimal, error) {
	t, err := f.Amount(total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid transaction amount: %w", err)
	}
	sum, err := SumAllocations(members, f)
	if err != nil {
		return decimal.Zero, err
	}
	return t.Sub(sum), nil
}

// SplitEvenly divides total into n shares that sum exactly to total. The
// division runs in cents with the remainder spread one cent at a time over
// the leading shares, so no money is minted or lost to rounding.
func SplitEvenly(total decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, ErrNoParticipants
	}

	cents := total.Mul(hundred)
	base := cents.Div(decimal.NewFromInt(int64(n))).Floor()
	remainder := cents.Sub(base.Mul(decimal.NewFromInt(int64(n))))

	shares := make([]decimal.Decimal, n)
	one := decimal.NewFromInt(1)
	for i := range shares {
		share := base
		if remainder.GreaterThan(decimal.Zero) {
			share = share.Add(one)
			remainder = remainder.Sub(one)
		}
		shares[i] = share.Div(hundred).Round(2)
	}
	return shares, nil
}
