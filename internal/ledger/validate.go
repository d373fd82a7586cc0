package ledger

import (
	"fmt"
	"math"
	"time"
)

// ValidationError reports user input rejected before any state mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ValidateAmount rejects missing, non-finite, zero or negative amounts.
// Amounts must never be silently coerced to zero.
func ValidateAmount(amount *float64) error {
	if amount == nil {
		return invalid("amount", "amount is required")
	}
	if math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return invalid("amount", "amount must be a number")
	}
	if *amount <= 0 {
		return invalid("amount", "amount must be greater than zero")
	}
	return nil
}

// ValidateDate rejects dates not in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return invalid("date", "date must be YYYY-MM-DD")
	}
	return nil
}

// ValidateRate rejects missing or out-of-range profit percentage rates.
func ValidateRate(rate *float64) error {
	if rate == nil {
		return invalid("rate", "rate is required")
	}
	if math.IsNaN(*rate) || *rate <= 0 || *rate > 100 {
		return invalid("rate", "rate must be between 0 and 100")
	}
	return nil
}
