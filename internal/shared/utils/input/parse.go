package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when operator text is not a valid non-negative integer.
var ErrInvalidInput = errors.New("invalid input")

// ParseGuestCount parses an operator-entered guest count. Zero is rejected:
// an event needs at least one guest.
func ParseGuestCount(raw string) (int, error) {
	n, err := parseNonNegative(raw)
	if err != nil {
		return 0, fmt.Errorf("guest count: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("guest count: %w: must be greater than zero", ErrInvalidInput)
	}
	return n, nil
}

// ParseQuantity parses an operator-entered beverage quantity.
func ParseQuantity(raw string) (int, error) {
	n, err := parseNonNegative(raw)
	if err != nil {
		return 0, fmt.Errorf("quantity: %w", err)
	}
	return n, nil
}

func parseNonNegative(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidInput, n)
	}
	return n, nil
}
