package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies a vault log record.
type EventKind string

const (
	EventFunded             EventKind = "funded"
	EventWithdrawal         EventKind = "withdrawal"
	EventFee                EventKind = "fee"
	EventRefunded           EventKind = "refunded"
	EventExpirationExtended EventKind = "expiration_extended"
)

// Event is an observable record of a committed vault operation.
//
//	Funded:             Account = contributor, Amount = deposited assets, Shares = minted
//	Withdrawal:         Account = beneficiary, Amount = total swept balance
//	Fee:                Account = platform beneficiary, Amount = fee
//	Refunded:           Account = holder, Counterparty = receiver, Amount = assets, Shares = burned
//	ExpirationExtended: Expiration = new deadline
type Event struct {
	ID           uuid.UUID
	CampaignID   uuid.UUID
	Kind         EventKind
	Account      Identity
	Counterparty Identity
	Amount       Amount
	Shares       Amount
	Expiration   *time.Time
	CreatedAt    time.Time
}

func newEvent(campaignID uuid.UUID, kind EventKind, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		CampaignID: campaignID,
		Kind:       kind,
		CreatedAt:  at.UTC(),
	}
}

// NewFunded records shares minted to a contributor for a deposit.
func NewFunded(campaignID uuid.UUID, contributor Identity, amount, shares Amount, at time.Time) Event {
	e := newEvent(campaignID, EventFunded, at)
	e.Account = contributor
	e.Amount = amount
	e.Shares = shares
	return e
}

// NewWithdrawal records the beneficiary sweep. total is the whole balance
// swept, fee included.
func NewWithdrawal(campaignID uuid.UUID, beneficiary Identity, total Amount, at time.Time) Event {
	e := newEvent(campaignID, EventWithdrawal, at)
	e.Account = beneficiary
	e.Amount = total
	return e
}

// NewFee records the platform fee paid on settlement.
func NewFee(campaignID uuid.UUID, platform Identity, fee Amount, at time.Time) Event {
	e := newEvent(campaignID, EventFee, at)
	e.Account = platform
	e.Amount = fee
	return e
}

// NewRefunded records a contributor refund: shares burned from holder and
// assets paid to receiver.
func NewRefunded(campaignID uuid.UUID, holder, receiver Identity, assets, shares Amount, at time.Time) Event {
	e := newEvent(campaignID, EventRefunded, at)
	e.Account = holder
	e.Counterparty = receiver
	e.Amount = assets
	e.Shares = shares
	return e
}

// NewExpirationExtended records a new campaign deadline.
func NewExpirationExtended(campaignID uuid.UUID, expiration, at time.Time) Event {
	e := newEvent(campaignID, EventExpirationExtended, at)
	exp := expiration.UTC()
	e.Expiration = &exp
	return e
}
