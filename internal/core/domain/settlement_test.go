package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotPhase(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		balance    Amount
		expiration time.Time
		want       Phase
	}{
		{"pending", 50, now.Add(time.Hour), PhasePending},
		{"target reached before deadline", 100, now.Add(time.Hour), PhaseTargetReached},
		{"target reached after deadline", 150, now.Add(-time.Hour), PhaseTargetReached},
		{"expired", 99, now.Add(-time.Hour), PhaseExpired},
		{"expires exactly now", 0, now, PhaseExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Snapshot{Balance: tt.balance, Target: 100, Expiration: tt.expiration, Now: now}
			assert.Equal(t, tt.want, s.Phase())
		})
	}
}

func TestSnapshotChecks(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pending := Snapshot{Balance: 10, Target: 100, Expiration: now.Add(time.Hour), Now: now}
	reached := Snapshot{Balance: 100, Target: 100, Expiration: now.Add(time.Hour), Now: now}
	expired := Snapshot{Balance: 10, Target: 100, Expiration: now.Add(-time.Hour), Now: now}

	require.NoError(t, reached.CheckBeneficiaryWithdraw())
	require.ErrorIs(t, pending.CheckBeneficiaryWithdraw(), ErrNotExpired)
	require.ErrorIs(t, expired.CheckBeneficiaryWithdraw(), ErrTargetNotReached)

	require.NoError(t, expired.CheckContributorRefund())
	require.ErrorIs(t, pending.CheckContributorRefund(), ErrNotExpired)
	require.ErrorIs(t, reached.CheckContributorRefund(), ErrTargetReached)

	var target *TargetNotReachedError
	require.ErrorAs(t, expired.CheckBeneficiaryWithdraw(), &target)
	assert.Equal(t, Amount(10), target.Balance)

	reached.Settled = true
	expired.Settled = true
	require.ErrorIs(t, reached.CheckBeneficiaryWithdraw(), ErrCampaignSettled)
	require.ErrorIs(t, expired.CheckContributorRefund(), ErrCampaignSettled)
}

func TestNewSnapshot(t *testing.T) {
	c := newCampaign()
	now := time.Now()
	s := NewSnapshot(&c, 42, now)
	assert.Equal(t, Amount(42), s.Balance)
	assert.Equal(t, c.Target, s.Target)
	assert.Equal(t, c.Expiration, s.Expiration)
	assert.False(t, s.Settled)

	c.SettledAt = &now
	assert.True(t, NewSnapshot(&c, 0, now).Settled)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "pending", PhasePending.String())
	assert.Equal(t, "target_reached", PhaseTargetReached.String())
	assert.Equal(t, "expired", PhaseExpired.String())
}
