package domain

import "errors"

// Error kinds surfaced by the use cases. Callers match them with errors.Is;
// the message that reaches the caller carries the concrete reason.
var (
	ErrInvalidOwner        = errors.New("invalid owner")
	ErrInvalidName         = errors.New("invalid name")
	ErrInvalidTargetAmount = errors.New("invalid target amount")
	ErrInvalidStartDate    = errors.New("invalid start date")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrMilestoneNotFound   = errors.New("milestone not found")
	ErrAlreadyCompleted    = errors.New("milestone already completed")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrStorageFailure      = errors.New("storage failure")

	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidMilestoneID = errors.New("invalid milestone id")
	ErrSavingsNotFound    = errors.New("savings entry not found")

	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidAccount  = errors.New("invalid account")
	ErrAccountExists   = errors.New("account already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidCustomer  = errors.New("invalid customer")
)

// IsRetryable reports whether an operation that failed with err may succeed
// when repeated unchanged. Only storage failures qualify; validation and
// state errors will fail the same way again.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}

// IsNotFound reports whether err is one of the lookup-miss kinds.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMilestoneNotFound) ||
		errors.Is(err, ErrSavingsNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrCustomerNotFound)
}
