package business

import "errors"

var (
	ErrNotFound         = errors.New("business not found")
	ErrModelNotEligible = errors.New("business must use commission-only model")
	ErrRateOutOfBounds  = errors.New("commission rate must be between 10% and 15%")
)
