package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTransferFailed      = errors.New("transfer failed")
	ErrPartialSettlement   = errors.New("partial settlement: manual intervention required")
	ErrZeroAmount          = errors.New("amount must be positive")
	ErrInsufficientShares  = errors.New("insufficient shares")
	ErrCampaignSettled     = errors.New("campaign already settled")
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrInvalidCampaign     = errors.New("invalid campaign")
	ErrInvalidTTL          = errors.New("ttl must be positive")
	ErrAmountOverflow      = errors.New("amount overflow")
	ErrExceededMaxWithdraw = errors.New("exceeded max withdraw")
	ErrTargetNotReached    = errors.New("campaign target not reached")
	ErrTargetReached       = errors.New("campaign target reached")
	ErrNotExpired          = errors.New("campaign not expired")
	ErrCampaignExpired     = errors.New("campaign expired")
	ErrNotAuthorized       = errors.New("not authorized")

	// ErrGuardRequired is a NotAuthorized failure: the vault only accepts
	// guarded withdrawals.
	ErrGuardRequired = fmt.Errorf("%w: withdrawal guard required", ErrNotAuthorized)
)

// TransferError reports a ledger call that returned false or failed.
type TransferError struct {
	Op     string // "transfer" or "transferFrom"
	From   Identity
	To     Identity
	Amount Amount
	Err    error // nil when the ledger returned false
}

func (e *TransferError) Error() string {
	msg := fmt.Sprintf("%s %s from %s to %s: %s", e.Op, e.Amount, e.From, e.To, ErrTransferFailed)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransferError) Is(target error) bool { return target == ErrTransferFailed }

func (e *TransferError) Unwrap() error { return e.Err }

// ExceededMaxWithdrawError is returned when a holder asks for more than its
// pro-rata entitlement.
type ExceededMaxWithdrawError struct {
	Holder    Identity
	Requested Amount
	Max       Amount
}

func (e *ExceededMaxWithdrawError) Error() string {
	return fmt.Sprintf("%s: %s requested %s, max %s", ErrExceededMaxWithdraw, e.Holder, e.Requested, e.Max)
}

func (e *ExceededMaxWithdrawError) Is(target error) bool { return target == ErrExceededMaxWithdraw }

// TargetNotReachedError rejects a sweep while the balance is below target.
type TargetNotReachedError struct {
	Balance Amount
}

func (e *TargetNotReachedError) Error() string {
	return fmt.Sprintf("%s: balance %s", ErrTargetNotReached, e.Balance)
}

func (e *TargetNotReachedError) Is(target error) bool { return target == ErrTargetNotReached }

// TargetReachedError rejects refunds once the balance reached the target.
type TargetReachedError struct {
	Balance Amount
}

func (e *TargetReachedError) Error() string {
	return fmt.Sprintf("%s: balance %s", ErrTargetReached, e.Balance)
}

func (e *TargetReachedError) Is(target error) bool { return target == ErrTargetReached }

// NotExpiredError rejects settlement actions before the deadline.
type NotExpiredError struct {
	Expiration time.Time
}

func (e *NotExpiredError) Error() string {
	return fmt.Sprintf("%s: expires at %s", ErrNotExpired, e.Expiration.UTC().Format(time.RFC3339))
}

func (e *NotExpiredError) Is(target error) bool { return target == ErrNotExpired }

// CampaignExpiredError rejects deposits and extensions once the deadline passed.
type CampaignExpiredError struct {
	Expiration time.Time
}

func (e *CampaignExpiredError) Error() string {
	return fmt.Sprintf("%s at %s", ErrCampaignExpired, e.Expiration.UTC().Format(time.RFC3339))
}

func (e *CampaignExpiredError) Is(target error) bool { return target == ErrCampaignExpired }

// NotAuthorizedError names the caller that was refused.
type NotAuthorizedError struct {
	Caller Identity
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotAuthorized, e.Caller)
}

func (e *NotAuthorizedError) Is(target error) bool { return target == ErrNotAuthorized }

// ErrorKind names the failure kind of err for logs, metrics and API
// responses. Unknown errors are "internal".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPartialSettlement):
		return "partial_settlement"
	case errors.Is(err, ErrTransferFailed):
		return "transfer_failed"
	case errors.Is(err, ErrExceededMaxWithdraw):
		return "exceeded_max_withdraw"
	case errors.Is(err, ErrTargetNotReached):
		return "campaign_target_not_reached"
	case errors.Is(err, ErrTargetReached):
		return "campaign_target_reached"
	case errors.Is(err, ErrNotExpired):
		return "campaign_not_expired"
	case errors.Is(err, ErrCampaignExpired):
		return "campaign_expired"
	case errors.Is(err, ErrCampaignSettled):
		return "campaign_settled"
	case errors.Is(err, ErrNotAuthorized):
		return "not_authorized"
	case errors.Is(err, ErrInsufficientShares):
		return "insufficient_shares"
	case errors.Is(err, ErrZeroAmount):
		return "zero_amount"
	case errors.Is(err, ErrInvalidTTL):
		return "invalid_ttl"
	case errors.Is(err, ErrAmountOverflow):
		return "amount_overflow"
	case errors.Is(err, ErrCampaignNotFound):
		return "campaign_not_found"
	case errors.Is(err, ErrInvalidCampaign):
		return "invalid_campaign"
	default:
		return "internal"
	}
}
