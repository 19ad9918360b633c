package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bachex/bachex/internal/models"
)

var (
	ErrEmptySplit      = errors.New("splitAmong must not be empty")
	ErrNonFiniteAmount = errors.New("amount must be a finite number")
	ErrBadDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrBadSplitType    = errors.New("splitType must be 'equal' or 'custom'")
)

// Validate rejects transactions that would poison the aggregates with NaN
// or Infinity, or that break the split invariants. It runs at the write
// boundary; the engine itself assumes input that passed here.
func Validate(t *models.Transaction) error {
	if len(t.SplitAmong) == 0 {
		return ErrEmptySplit
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return ErrNonFiniteAmount
	}
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return ErrBadDate
	}
	if t.Desc == "" {
		return errors.New("desc is required")
	}
	if t.PaidBy == "" {
		return errors.New("paidBy is required")
	}

	switch t.SplitType {
	case "", models.SplitEqual:
		if len(t.CustomSplits) > 0 {
			return fmt.Errorf("customSplits requires splitType %q", models.SplitCustom)
		}
	case models.SplitCustom:
		if len(t.CustomSplits) == 0 {
			return fmt.Errorf("splitType %q requires customSplits", models.SplitCustom)
		}
		for p, share := range t.CustomSplits {
			if math.IsNaN(share) || math.IsInf(share, 0) {
				return fmt.Errorf("custom split for %q: %w", p, ErrNonFiniteAmount)
			}
		}
	default:
		return ErrBadSplitType
	}

	return nil
}
