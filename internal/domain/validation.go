package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxDescriptionLength = 1024
	MaxAmount            = "1000000000000" // 1 trillion
)

var timeOfDayRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)

// ValidateTransaction checks the fields a transaction must carry before it
// may be appended to the ledger. Amounts must be non-negative; exactly one
// of debit/credit being non-zero is a reporting convention, not enforced.
func ValidateTransaction(t *Transaction) error {
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidTransaction)
	}

	if strings.TrimSpace(t.AgentID) == "" {
		return fmt.Errorf("%w: agent id is required", ErrInvalidTransaction)
	}

	if t.Debit.IsNegative() || t.Credit.IsNegative() {
		return fmt.Errorf("%w: debit and credit must be non-negative", ErrInvalidTransaction)
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if t.Debit.GreaterThan(maxAmount) || t.Credit.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: amount exceeds %s", ErrInvalidTransaction, MaxAmount)
	}

	if t.TimeOfDay != "" && !timeOfDayRegex.MatchString(t.TimeOfDay) {
		return fmt.Errorf("%w: time of day must be hh:mm:ss", ErrInvalidTransaction)
	}

	if len(t.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidTransaction, MaxDescriptionLength)
	}

	return nil
}

// ValidateRange checks that a report window is well formed. Both bounds are
// inclusive calendar dates.
func ValidateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: both bounds are required", ErrInvalidRange)
	}

	if Day(from).After(Day(to)) {
		return ErrInvalidRange
	}

	return nil
}
