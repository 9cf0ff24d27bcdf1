package domain

import "time"

// Phase is the settlement state of a campaign. It is derived from a
// Snapshot on every call and never stored.
type Phase int

const (
	PhasePending Phase = iota
	PhaseTargetReached
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseTargetReached:
		return "target_reached"
	case PhaseExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Snapshot is the input of the settlement decision: the vault's ledger
// balance, the campaign target and deadline, and the evaluation time.
type Snapshot struct {
	Balance    Amount
	Target     Amount
	Expiration time.Time
	Now        time.Time
	Settled    bool
}

// Guard is a settlement predicate evaluated by the vault under its lock,
// immediately before a withdrawal executes.
type Guard func(Snapshot) error

// NewSnapshot captures the settlement inputs of c at now.
func NewSnapshot(c *Campaign, balance Amount, now time.Time) Snapshot {
	return Snapshot{
		Balance:    balance,
		Target:     c.Target,
		Expiration: c.Expiration,
		Now:        now,
		Settled:    c.Settled(),
	}
}

// Phase classifies the snapshot. The target check comes first: a campaign
// that reached its target stays TargetReached past its expiration.
func (s Snapshot) Phase() Phase {
	switch {
	case s.Balance >= s.Target:
		return PhaseTargetReached
	case s.Now.Before(s.Expiration):
		return PhasePending
	default:
		return PhaseExpired
	}
}

// CheckBeneficiaryWithdraw permits the beneficiary sweep only once the
// target is reached.
func (s Snapshot) CheckBeneficiaryWithdraw() error {
	if s.Settled {
		return ErrCampaignSettled
	}
	switch s.Phase() {
	case PhaseTargetReached:
		return nil
	case PhasePending:
		return &NotExpiredError{Expiration: s.Expiration}
	default:
		return &TargetNotReachedError{Balance: s.Balance}
	}
}

// CheckContributorRefund permits pro-rata refunds only after the campaign
// expired without reaching its target.
func (s Snapshot) CheckContributorRefund() error {
	if s.Settled {
		return ErrCampaignSettled
	}
	switch s.Phase() {
	case PhaseExpired:
		return nil
	case PhaseTargetReached:
		return &TargetReachedError{Balance: s.Balance}
	default:
		return &NotExpiredError{Expiration: s.Expiration}
	}
}
