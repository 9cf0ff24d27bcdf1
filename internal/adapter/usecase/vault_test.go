package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-vault/internal/adapter/memory"
	"campaign-vault/internal/adapter/wallet"
	"campaign-vault/internal/core/domain"
	"campaign-vault/internal/core/port"
	"campaign-vault/internal/core/port/mocks"
)

const (
	vaultAccount domain.Identity = "vault"
	beneficiary  domain.Identity = "beneficiary"
	platform     domain.Identity = "platform"
	controller   domain.Identity = "settlement-gate"
)

var start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCampaign() domain.Campaign {
	return domain.Campaign{
		ID:                  uuid.New(),
		Asset:               "USDC",
		Vault:               vaultAccount,
		Beneficiary:         beneficiary,
		PlatformBeneficiary: platform,
		FeeBps:              1000,
		Target:              100,
		Expiration:          start.Add(24 * time.Hour),
	}
}

// fixture wires a vault, wallet and gate over the in-memory adapters.
type fixture struct {
	ctx      context.Context
	clock    *testClock
	repo     *memory.CampaignRepository
	ledger   *memory.Ledger
	vault    *Vault
	gate     *SettlementGate
	campaign *domain.Campaign
}

func newFixture(t *testing.T, opts ...func(c *domain.Campaign)) *fixture {
	t.Helper()
	ctx := context.Background()
	clock := &testClock{now: start}
	repo := memory.NewCampaignRepository()
	ledger := memory.NewLedger()

	campaign := newTestCampaign()
	for _, opt := range opts {
		opt(&campaign)
	}
	c, err := repo.EnsureCampaign(ctx, campaign)
	require.NoError(t, err)

	logger := discardLogger()
	vault := NewVault(c.ID, repo, ledger, logger, WithClock(clock.Now))
	w := wallet.New(c.Beneficiary, controller, vault, logger)
	return &fixture{
		ctx:      ctx,
		clock:    clock,
		repo:     repo,
		ledger:   ledger,
		vault:    vault,
		gate:     NewSettlementGate(controller, vault, w, logger),
		campaign: c,
	}
}

// fund mints amount to who and approves the vault to pull all of it.
func (f *fixture) fund(t *testing.T, who domain.Identity, amount domain.Amount) {
	t.Helper()
	require.NoError(t, f.ledger.Mint(f.ctx, who, amount))
	require.NoError(t, f.ledger.Approve(f.ctx, who, vaultAccount, amount))
}

func (f *fixture) deposit(t *testing.T, who domain.Identity, amount domain.Amount) domain.Amount {
	t.Helper()
	f.fund(t, who, amount)
	shares, err := f.vault.Deposit(f.ctx, who, amount)
	require.NoError(t, err)
	return shares
}

func (f *fixture) balance(t *testing.T, who domain.Identity) domain.Amount {
	t.Helper()
	b, err := f.ledger.BalanceOf(f.ctx, who)
	require.NoError(t, err)
	return b
}

func (f *fixture) state(t *testing.T) *domain.Campaign {
	t.Helper()
	c, err := f.vault.Campaign(f.ctx)
	require.NoError(t, err)
	return c
}

func (f *fixture) expire() {
	f.clock.Advance(25 * time.Hour)
}

func TestDepositBootstrapsOneToOne(t *testing.T) {
	f := newFixture(t)

	shares := f.deposit(t, "alice", 100)

	assert.Equal(t, domain.Amount(100), shares)
	c := f.state(t)
	assert.Equal(t, domain.Amount(100), c.TotalShares)
	assert.Equal(t, domain.Amount(100), c.TotalAssets)
	assert.Equal(t, domain.Amount(100), f.balance(t, vaultAccount))
	assert.Equal(t, domain.Amount(0), f.balance(t, "alice"))
}

func TestDepositWithoutApprovalFails(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ledger.Mint(f.ctx, "alice", 100))

	_, err := f.vault.Deposit(f.ctx, "alice", 100)

	require.ErrorIs(t, err, domain.ErrTransferFailed)
	c := f.state(t)
	assert.Zero(t, c.TotalShares)
	assert.Zero(t, c.TotalAssets)
	assert.Equal(t, domain.Amount(100), f.balance(t, "alice"))
	events, err := f.vault.Events(f.ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDepositRejections(t *testing.T) {
	f := newFixture(t)

	_, err := f.vault.Deposit(f.ctx, "alice", 0)
	require.ErrorIs(t, err, domain.ErrZeroAmount)

	f.fund(t, "alice", 10)
	f.expire()
	_, err = f.vault.Deposit(f.ctx, "alice", 10)
	require.ErrorIs(t, err, domain.ErrCampaignExpired)
	assert.Equal(t, domain.Amount(10), f.balance(t, "alice"))
}

func TestSettleTargetReached(t *testing.T) {
	f := newFixture(t)
	f.deposit(t, "alice", 100)

	res, err := f.gate.SettleToBeneficiary(f.ctx, beneficiary)

	require.NoError(t, err)
	assert.Equal(t, domain.Amount(90), res.Net)
	assert.Equal(t, domain.Amount(10), res.Fee)
	assert.Equal(t, domain.Amount(10), f.balance(t, platform))
	assert.Equal(t, domain.Amount(90), f.balance(t, beneficiary))
	assert.Equal(t, domain.Amount(0), f.balance(t, vaultAccount))
	assert.True(t, f.state(t).Settled())

	events, err := f.vault.Events(f.ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventFee, events[0].Kind)
	assert.Equal(t, domain.Amount(10), events[0].Amount)
	assert.Equal(t, domain.EventWithdrawal, events[1].Kind)
	assert.Equal(t, domain.Amount(100), events[1].Amount)
	assert.Equal(t, domain.EventFunded, events[2].Kind)
}

func TestSettleSweepsDonations(t *testing.T) {
	f := newFixture(t)
	f.deposit(t, "alice", 90)
	require.NoError(t, f.ledger.Mint(f.ctx, "bob", 60))
	ok, err := f.ledger.Transfer(f.ctx, "bob", vaultAccount, 60)
	require.NoError(t, err)
	require.True(t, ok)

	res, err := f.gate.SettleToBeneficiary(f.ctx, platform)

	require.NoError(t, err)
	assert.Equal(t, domain.Amount(135), res.Net)
	assert.Equal(t, domain.Amount(15), res.Fee)
	assert.Equal(t, domain.Amount(0), f.balance(t, vaultAccount))
}

func TestUnreachedCampaignRefundsAfterExpiration(t *testing.T) {
	f := newFixture(t)
	f.deposit(t, "alice", 99)

	_, err := f.gate.SettleToBeneficiary(f.ctx, beneficiary)
	require.ErrorIs(t, err, domain.ErrNotExpired)
	assert.Equal(t, domain.Amount(99), f.balance(t, vaultAccount))
	assert.Equal(t, domain.Amount(0), f.balance(t, beneficiary))

	_, err = f.gate.Refund(f.ctx, "alice", 0, "")
	require.ErrorIs(t, err, domain.ErrNotExpired)

	f.expire()

	_, err = f.gate.SettleToBeneficiary(f.ctx, beneficiary)
	require.ErrorIs(t, err, domain.ErrTargetNotReached)

	res, err := f.gate.Refund(f.ctx, "alice", 0, "")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(99), res.Assets)
	assert.Equal(t, domain.Amount(99), res.Shares)
	assert.Equal(t, domain.Amount(99), f.balance(t, "alice"))

	c := f.state(t)
	assert.Zero(t, c.TotalShares)
	assert.Zero(t, c.TotalAssets)
	h, err := f.vault.Holding(f.ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, h.Shares)
}

func TestRefundRejectedOnceTargetReached(t *testing.T) {
	f := newFixture(t)
	f.deposit(t, "alice", 99)
	f.expire()

	// A direct transfer lifts the balance to the target after the deadline.
	require.NoError(t, f.ledger.Mint(f.ctx, "bob", 1))
	ok, err := f.ledger.Transfer(f.ctx, "bob", vaultAccount, 1)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.gate.Refund(f.ctx, "alice", 0, "")
	require.ErrorIs(t, err, domain.ErrTargetReached)

	res, err := f.gate.SettleToBeneficiary(f.ctx, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(90), res.Net)
	assert.Equal(t, domain.Amount(10), res.Fee)
}

func TestPartialRefundsStayProportional(t *testing.T) {
	f := newFixture(t)
	f.deposit(t, "alice", 60)
	f.deposit(t, "bob", 30)
	f.expire()

	res, err := f.gate.Refund(f.ctx, "alice", 25, "carol")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(25), res.Assets)
	assert.Equal(t, domain.Amount(25), f.balance(t, "carol"))
	assert.Equal(t, domain.Amount(0), f.balance(t, "alice"))

	_, err = f.gate.Refund(f.ctx, "bob", 31, "")
	require.ErrorIs(t, err, domain.ErrExceededMaxWithdraw)
	var exceeded *domain.ExceededMaxWithdrawError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, domain.Amount(30), exceeded.Max)

	c := f.state(t)
	assert.Equal(t, domain.Amount(65), c.TotalShares)
	assert.Equal(t, domain.Amount(65), c.TotalAssets)
	assert.Equal(t, c.TotalShares, f.repo.TotalHeldShares(c.ID))

	_, err = f.gate.Refund(f.ctx, "bob", 0, "")
	require.NoError(t, err)
	_, err = f.gate.Refund(f.ctx, "alice", 0, "")
	require.NoError(t, err)

	c = f.state(t)
	assert.Zero(t, c.TotalShares)
	assert.Zero(t, c.TotalAssets)
	assert.Equal(t, domain.Amount(0), f.balance(t, vaultAccount))
	assert.Equal(t, domain.Amount(35), f.balance(t, "alice"))
	assert.Equal(t, domain.Amount(30), f.balance(t, "bob"))

	_, err = f.gate.Refund(f.ctx, "alice", 0, "")
	require.ErrorIs(t, err, domain.ErrZeroAmount)
}

func TestLastWithdrawalTakesRemainingAssets(t *testing.T) {
	repo := memory.NewCampaignRepository()
	ledger := memory.NewLedger()
	ctx := context.Background()
	c := newTestCampaign()
	c.TotalShares = 3
	c.TotalAssets = 10
	stored, err := repo.EnsureCampaign(ctx, c)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, stored.ID, func(ctx context.Context, unit port.CampaignUnit) error {
		return unit.PutHolding(ctx, domain.Holding{CampaignID: stored.ID, Holder: "alice", Shares: 3})
	}))
	require.NoError(t, ledger.Mint(ctx, vaultAccount, 10))

	v := NewVault(stored.ID, repo, ledger, discardLogger(), WithClock(func() time.Time { return start }))

	// previewWithdraw(9) = ceil(9*3/10) burns every share, so the whole pool is paid.
	shares, paid, err := v.ContributorWithdraw(ctx, "alice", "alice", 9, "", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(3), shares)
	assert.Equal(t, domain.Amount(10), paid)

	got, err := v.Campaign(ctx)
	require.NoError(t, err)
	assert.Zero(t, got.TotalShares)
	assert.Zero(t, got.TotalAssets)
	b, err := ledger.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(10), b)
}

func TestContributorWithdrawAuthorization(t *testing.T) {
	f := newFixture(t)
	f.deposit(t, "alice", 50)

	_, _, err := f.vault.ContributorWithdraw(f.ctx, "mallory", "alice", 10, "mallory", nil)
	require.ErrorIs(t, err, domain.ErrNotAuthorized)

	_, _, err = f.vault.ContributorWithdraw(f.ctx, "alice", "alice", 0, "", nil)
	require.ErrorIs(t, err, domain.ErrZeroAmount)

	// The unguarded owner path lets a holder exit at any time before settlement.
	shares, paid, err := f.vault.ContributorWithdraw(f.ctx, "alice", "alice", 10, "", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(10), shares)
	assert.Equal(t, domain.Amount(10), paid)
}

func TestGuardIsReevaluatedUnderLock(t *testing.T) {
	f := newFixture(t)
	f.deposit(t, "alice", 99)

	_, _, err := f.vault.BeneficiaryWithdraw(f.ctx, beneficiary, domain.Snapshot.CheckBeneficiaryWithdraw)
	require.ErrorIs(t, err, domain.ErrNotExpired)

	f.expire()
	_, _, err = f.vault.ContributorWithdraw(f.ctx, beneficiary, "alice", 10, "", func(domain.Snapshot) error {
		return domain.ErrTargetReached
	})
	require.ErrorIs(t, err, domain.ErrTargetReached)
	assert.Equal(t, domain.Amount(99), f.balance(t, vaultAccount))
}

func TestRejectedCallsLeaveMaxWithdrawUnchanged(t *testing.T) {
	f := newFixture(t)
	f.deposit(t, "alice", 60)
	f.deposit(t, "bob", 20)

	maxWithdraw := func() domain.Amount {
		t.Helper()
		m, err := f.vault.MaxWithdraw(f.ctx, "alice")
		require.NoError(t, err)
		return m
	}
	before := maxWithdraw()
	require.Equal(t, domain.Amount(60), before)

	f.fund(t, "carol", 10)
	require.NoError(t, f.ledger.Mint(f.ctx, "dave", 10))

	pending := []struct {
		name string
		call func() error
		want error
	}{
		{
			name: "guarded refund while pending",
			call: func() error {
				_, err := f.gate.Refund(f.ctx, "alice", 10, "")
				return err
			},
			want: domain.ErrNotExpired,
		},
		{
			name: "guard rejects under the lock",
			call: func() error {
				_, _, err := f.vault.ContributorWithdraw(f.ctx, beneficiary, "alice", 10, "", domain.Snapshot.CheckContributorRefund)
				return err
			},
			want: domain.ErrNotExpired,
		},
		{
			name: "withdraw above entitlement",
			call: func() error {
				_, _, err := f.vault.ContributorWithdraw(f.ctx, "alice", "alice", 61, "", nil)
				return err
			},
			want: domain.ErrExceededMaxWithdraw,
		},
		{
			name: "sweep before expiration",
			call: func() error {
				_, err := f.gate.SettleToBeneficiary(f.ctx, beneficiary)
				return err
			},
			want: domain.ErrNotExpired,
		},
		{
			name: "deposit without allowance by another holder",
			call: func() error {
				_, err := f.vault.Deposit(f.ctx, "dave", 10)
				return err
			},
			want: domain.ErrTransferFailed,
		},
		{
			name: "zero deposit by another holder",
			call: func() error {
				_, err := f.vault.Deposit(f.ctx, "carol", 0)
				return err
			},
			want: domain.ErrZeroAmount,
		},
	}
	for _, tt := range pending {
		require.ErrorIs(t, tt.call(), tt.want, tt.name)
		assert.Equal(t, before, maxWithdraw(), tt.name)
	}

	f.expire()
	expired := []struct {
		name string
		call func() error
		want error
	}{
		{
			name: "refund above entitlement after expiration",
			call: func() error {
				_, err := f.gate.Refund(f.ctx, "alice", 61, "")
				return err
			},
			want: domain.ErrExceededMaxWithdraw,
		},
		{
			name: "sweep with target not reached",
			call: func() error {
				_, err := f.gate.SettleToBeneficiary(f.ctx, beneficiary)
				return err
			},
			want: domain.ErrTargetNotReached,
		},
		{
			name: "deposit after expiration",
			call: func() error {
				_, err := f.vault.Deposit(f.ctx, "carol", 10)
				return err
			},
			want: domain.ErrCampaignExpired,
		},
	}
	for _, tt := range expired {
		require.ErrorIs(t, tt.call(), tt.want, tt.name)
		assert.Equal(t, before, maxWithdraw(), tt.name)
	}

	c := f.state(t)
	assert.Equal(t, domain.Amount(80), c.TotalShares)
	assert.Equal(t, domain.Amount(80), c.TotalAssets)
	assert.Equal(t, domain.Amount(80), f.balance(t, vaultAccount))
	assert.Equal(t, domain.Amount(10), f.balance(t, "carol"))
}

func TestRequireGuardsRefusesUnguardedWithdrawals(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: start}
	repo := memory.NewCampaignRepository()
	ledger := memory.NewLedger()
	c, err := repo.EnsureCampaign(ctx, newTestCampaign())
	require.NoError(t, err)

	logger := discardLogger()
	v := NewVault(c.ID, repo, ledger, logger, WithClock(clock.Now), RequireGuards())
	gate := NewSettlementGate(controller, v, wallet.New(c.Beneficiary, controller, v, logger), logger)

	require.NoError(t, ledger.Mint(ctx, "alice", 50))
	require.NoError(t, ledger.Approve(ctx, "alice", vaultAccount, 50))
	_, err = v.Deposit(ctx, "alice", 50)
	require.NoError(t, err)

	_, _, err = v.ContributorWithdraw(ctx, "alice", "alice", 10, "", nil)
	require.ErrorIs(t, err, domain.ErrGuardRequired)
	require.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.Equal(t, "not_authorized", domain.ErrorKind(err))

	_, _, err = v.BeneficiaryWithdraw(ctx, beneficiary, nil)
	require.ErrorIs(t, err, domain.ErrGuardRequired)

	m, err := v.MaxWithdraw(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(50), m)

	clock.Advance(25 * time.Hour)
	res, err := gate.Refund(ctx, "alice", 0, "")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(50), res.Assets)
}

func TestEventsWithNonPositiveLimit(t *testing.T) {
	f := newFixture(t)
	f.deposit(t, "alice", 10)

	for _, limit := range []int{0, -1} {
		events, err := f.vault.Events(f.ctx, limit)
		require.NoError(t, err)
		assert.Empty(t, events)
	}
}

func TestSettledCampaignIsClosed(t *testing.T) {
	f := newFixture(t)
	f.deposit(t, "alice", 100)
	_, err := f.gate.SettleToBeneficiary(f.ctx, beneficiary)
	require.NoError(t, err)

	_, err = f.gate.SettleToBeneficiary(f.ctx, beneficiary)
	require.ErrorIs(t, err, domain.ErrCampaignSettled)

	f.fund(t, "bob", 10)
	_, err = f.vault.Deposit(f.ctx, "bob", 10)
	require.ErrorIs(t, err, domain.ErrCampaignSettled)

	_, err = f.gate.ExtendExpiration(f.ctx, beneficiary, time.Hour)
	require.ErrorIs(t, err, domain.ErrCampaignSettled)

	f.expire()
	_, err = f.gate.Refund(f.ctx, "alice", 0, "")
	require.ErrorIs(t, err, domain.ErrCampaignSettled)
}

func TestSetExpiration(t *testing.T) {
	f := newFixture(t)

	exp, err := f.gate.ExtendExpiration(f.ctx, beneficiary, 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, start.Add(48*time.Hour), exp)
	assert.Equal(t, exp, f.state(t).Expiration)

	_, err = f.gate.ExtendExpiration(f.ctx, "alice", time.Hour)
	require.ErrorIs(t, err, domain.ErrNotAuthorized)

	_, err = f.gate.ExtendExpiration(f.ctx, beneficiary, 0)
	require.ErrorIs(t, err, domain.ErrInvalidTTL)

	events, err := f.vault.Events(f.ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventExpirationExtended, events[0].Kind)
	require.NotNil(t, events[0].Expiration)
	assert.Equal(t, exp, *events[0].Expiration)

	f.clock.Advance(49 * time.Hour)
	_, err = f.gate.ExtendExpiration(f.ctx, beneficiary, time.Hour)
	require.ErrorIs(t, err, domain.ErrCampaignExpired)
}

func TestDepositTransferFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCampaignRepository()
	c, err := repo.EnsureCampaign(ctx, newTestCampaign())
	require.NoError(t, err)

	ledger := mocks.NewMockAssetLedger(t)
	ledger.EXPECT().
		TransferFrom(mock.Anything, vaultAccount, domain.Identity("alice"), vaultAccount, domain.Amount(40)).
		Return(false, errors.New("ledger unavailable"))

	v := NewVault(c.ID, repo, ledger, discardLogger(), WithClock(func() time.Time { return start }))
	_, err = v.Deposit(ctx, "alice", 40)

	require.ErrorIs(t, err, domain.ErrTransferFailed)
	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, got.TotalShares)
	h, err := repo.GetHolding(ctx, c.ID, "alice")
	require.NoError(t, err)
	assert.Zero(t, h.Shares)
}

func TestRefundTransferFailureKeepsShares(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCampaignRepository()
	c, err := repo.EnsureCampaign(ctx, newTestCampaign())
	require.NoError(t, err)

	ledger := mocks.NewMockAssetLedger(t)
	ledger.EXPECT().
		TransferFrom(mock.Anything, vaultAccount, domain.Identity("alice"), vaultAccount, domain.Amount(50)).
		Return(true, nil)
	ledger.EXPECT().
		Transfer(mock.Anything, vaultAccount, domain.Identity("alice"), domain.Amount(20)).
		Return(false, nil)

	v := NewVault(c.ID, repo, ledger, discardLogger(), WithClock(func() time.Time { return start }))
	_, err = v.Deposit(ctx, "alice", 50)
	require.NoError(t, err)

	_, _, err = v.ContributorWithdraw(ctx, "alice", "alice", 20, "", nil)
	require.ErrorIs(t, err, domain.ErrTransferFailed)

	h, err := repo.GetHolding(ctx, c.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(50), h.Shares)
	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(50), got.TotalAssets)
}

func TestSettlementTransferFailures(t *testing.T) {
	setup := func(t *testing.T) (*Vault, *mocks.MockAssetLedger, *memory.CampaignRepository, uuid.UUID) {
		ctx := context.Background()
		repo := memory.NewCampaignRepository()
		c, err := repo.EnsureCampaign(ctx, newTestCampaign())
		require.NoError(t, err)
		ledger := mocks.NewMockAssetLedger(t)
		ledger.EXPECT().BalanceOf(mock.Anything, vaultAccount).Return(100, nil)
		return NewVault(c.ID, repo, ledger, discardLogger(), WithClock(func() time.Time { return start })), ledger, repo, c.ID
	}

	t.Run("fee transfer fails", func(t *testing.T) {
		v, ledger, repo, id := setup(t)
		ledger.EXPECT().Transfer(mock.Anything, vaultAccount, platform, domain.Amount(10)).Return(false, nil)

		_, _, err := v.BeneficiaryWithdraw(context.Background(), beneficiary, nil)

		require.ErrorIs(t, err, domain.ErrTransferFailed)
		require.NotErrorIs(t, err, domain.ErrPartialSettlement)
		c, err := repo.GetCampaign(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, c.Settled())
	})

	t.Run("beneficiary transfer fails after fee", func(t *testing.T) {
		v, ledger, repo, id := setup(t)
		ledger.EXPECT().Transfer(mock.Anything, vaultAccount, platform, domain.Amount(10)).Return(true, nil)
		ledger.EXPECT().Transfer(mock.Anything, vaultAccount, beneficiary, domain.Amount(90)).Return(false, errors.New("timeout"))

		_, _, err := v.BeneficiaryWithdraw(context.Background(), beneficiary, nil)

		require.ErrorIs(t, err, domain.ErrPartialSettlement)
		require.ErrorIs(t, err, domain.ErrTransferFailed)
		assert.Equal(t, "partial_settlement", domain.ErrorKind(err))
		c, err := repo.GetCampaign(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, c.Settled())
		events, err := repo.ListEvents(context.Background(), id, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("caller is not the beneficiary", func(t *testing.T) {
		ctx := context.Background()
		repo := memory.NewCampaignRepository()
		c, err := repo.EnsureCampaign(ctx, newTestCampaign())
		require.NoError(t, err)
		v := NewVault(c.ID, repo, mocks.NewMockAssetLedger(t), discardLogger())

		_, _, err = v.BeneficiaryWithdraw(ctx, platform, nil)
		require.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}

func TestConcurrentDepositsAndRefunds(t *testing.T) {
	f := newFixture(t, func(c *domain.Campaign) { c.Target = 1000 })
	const contributors = 20

	var wg sync.WaitGroup
	for i := 0; i < contributors; i++ {
		who := domain.Identity(fmt.Sprintf("contributor-%d", i))
		f.fund(t, who, domain.Amount(i+1))
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.vault.Deposit(f.ctx, who, domain.Amount(i+1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// 1 + 2 + ... + 20
	const total domain.Amount = 210
	c := f.state(t)
	assert.Equal(t, total, c.TotalShares)
	assert.Equal(t, total, c.TotalAssets)
	assert.Equal(t, total, f.balance(t, vaultAccount))
	assert.Equal(t, c.TotalShares, f.repo.TotalHeldShares(c.ID))

	f.expire()

	for i := 0; i < contributors; i++ {
		who := domain.Identity(fmt.Sprintf("contributor-%d", i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.gate.Refund(f.ctx, who, 0, "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	c = f.state(t)
	assert.Zero(t, c.TotalShares)
	assert.Zero(t, c.TotalAssets)
	assert.Equal(t, domain.Amount(0), f.balance(t, vaultAccount))
	for i := 0; i < contributors; i++ {
		assert.Equal(t, domain.Amount(i+1), f.balance(t, domain.Identity(fmt.Sprintf("contributor-%d", i))))
	}
	assert.Equal(t, total, f.ledger.Supply())
}
