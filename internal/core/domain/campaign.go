package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxFeeBps is the upper bound of Campaign.FeeBps (100%).
const MaxFeeBps = 10000

// Campaign is the singleton funding campaign of a deployment together with
// the vault's aggregate share accounting.
//
// Asset, Vault, Beneficiary, PlatformBeneficiary, FeeBps and Target are fixed
// at creation. Expiration may be extended by the beneficiary until the
// campaign is settled. TotalShares and TotalAssets only change through vault
// operations.
type Campaign struct {
	ID                  uuid.UUID
	Asset               string
	Vault               Identity // ledger account holding the pooled funds
	Beneficiary         Identity
	PlatformBeneficiary Identity
	FeeBps              uint16 // fee = floor(balance * FeeBps / 10000)
	Target              Amount
	Expiration          time.Time
	TotalShares         Amount
	TotalAssets         Amount
	SettledAt           *time.Time // set once the beneficiary sweep ran
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Holding is a contributor's share balance. Holdings are zeroed on full
// withdrawal and never deleted.
type Holding struct {
	CampaignID uuid.UUID
	Holder     Identity
	Shares     Amount
}

// Validate checks the construction parameters and the at-rest invariant
// TotalShares == 0 <=> TotalAssets == 0.
func (c *Campaign) Validate() error {
	switch {
	case c.ID == uuid.Nil:
		return fmt.Errorf("%w: missing id", ErrInvalidCampaign)
	case c.Vault == "":
		return fmt.Errorf("%w: missing vault account", ErrInvalidCampaign)
	case c.Beneficiary == "":
		return fmt.Errorf("%w: missing beneficiary", ErrInvalidCampaign)
	case c.PlatformBeneficiary == "":
		return fmt.Errorf("%w: missing platform beneficiary", ErrInvalidCampaign)
	case c.FeeBps > MaxFeeBps:
		return fmt.Errorf("%w: fee %d bps exceeds %d", ErrInvalidCampaign, c.FeeBps, MaxFeeBps)
	case (c.TotalShares == 0) != (c.TotalAssets == 0):
		return fmt.Errorf("%w: %s shares against %s assets", ErrInvalidCampaign, c.TotalShares, c.TotalAssets)
	}
	return nil
}

// Settled reports whether the beneficiary sweep already ran.
func (c *Campaign) Settled() bool {
	return c.SettledAt != nil
}

// ConvertToShares returns the shares minted for a deposit of assets. The
// first deposit prices shares 1:1; later deposits round down so the pool,
// never the depositor, keeps the remainder.
func (c *Campaign) ConvertToShares(assets Amount) (Amount, error) {
	if c.TotalShares == 0 || c.TotalAssets == 0 {
		return assets, nil
	}
	return mulDivDown(assets, c.TotalShares, c.TotalAssets)
}

// PreviewWithdraw returns the shares burned to withdraw assets, rounded up.
func (c *Campaign) PreviewWithdraw(assets Amount) (Amount, error) {
	if c.TotalAssets == 0 {
		return 0, nil
	}
	return mulDivUp(assets, c.TotalShares, c.TotalAssets)
}

// MaxWithdraw returns the assets redeemable for shares, rounded down.
func (c *Campaign) MaxWithdraw(shares Amount) (Amount, error) {
	if c.TotalShares == 0 {
		return 0, nil
	}
	return mulDivDown(shares, c.TotalAssets, c.TotalShares)
}

// SplitFee divides a swept balance into the beneficiary's net amount and the
// platform fee. The fee rounds down and net + fee == balance.
func (c *Campaign) SplitFee(balance Amount) (net, fee Amount, err error) {
	fee, err = mulDivDown(balance, Amount(c.FeeBps), MaxFeeBps)
	if err != nil {
		return 0, 0, err
	}
	return balance - fee, fee, nil
}
