package entity

import "errors"

var (
	// Dataset errors
	ErrPartyNotFound    = errors.New("party not found")
	ErrPolicyNotFound   = errors.New("policy not found")
	ErrMinistryNotFound = errors.New("ministry not found")

	// Game-state errors
	ErrPartyNotInCoalition  = errors.New("party is not in the coalition")
	ErrPolicyBudgetExceeded = errors.New("policy budget exceeded")
	ErrBelowMajority        = errors.New("coalition is below the majority threshold")
	ErrInvalidStep          = errors.New("invalid step transition")
	ErrQuestionUsed         = errors.New("question has already been used")
	ErrNoReshufflesLeft     = errors.New("no cabinet reshuffles left")
	ErrNoOpposition         = errors.New("no opposition party available")
	ErrNoPrimeMinister      = errors.New("no prime minister candidate")

	// Stats errors
	ErrInvalidSession     = errors.New("invalid session record")
	ErrStoreNotConfigured = errors.New("session store is not configured")

	// AI errors
	ErrProviderNotConfigured = errors.New("no ai provider is configured")
	ErrAllProvidersFailed    = errors.New("all ai providers failed")
)
