package configs

import (
	"time"

	"github.com/google/uuid"

	"campaign-vault/internal/core/domain"
)

// Campaign holds the construction parameters of the deployment's campaign.
// They are applied once, when the campaign does not exist yet; afterwards
// the stored values win. FeeBps is in basis points, so 1000 is a 10% fee.
type Campaign struct {
	ID                  uuid.UUID     `env:"ID" envDefault:"7b0c8a52-4f0e-4d55-9a3c-2f6f1c1d9e01"`
	Asset               string        `env:"ASSET" envDefault:"USDC"`
	VaultAccount        string        `env:"VAULT_ACCOUNT" envDefault:"vault"`
	Beneficiary         string        `env:"BENEFICIARY" envDefault:"beneficiary"`
	PlatformBeneficiary string        `env:"PLATFORM_BENEFICIARY" envDefault:"platform"`
	FeeBps              uint16        `env:"FEE_BPS" envDefault:"1000"`
	Target              uint64        `env:"TARGET" envDefault:"100"`
	TTL                 time.Duration `env:"TTL" envDefault:"720h"`
	// Controller is the identity of the settlement gate registered as the
	// wallet's only module.
	Controller string `env:"CONTROLLER" envDefault:"settlement-gate"`
}

// Domain builds the initial campaign with its expiration at now + TTL.
func (c Campaign) Domain(now time.Time) domain.Campaign {
	return domain.Campaign{
		ID:                  c.ID,
		Asset:               c.Asset,
		Vault:               domain.Identity(c.VaultAccount),
		Beneficiary:         domain.Identity(c.Beneficiary),
		PlatformBeneficiary: domain.Identity(c.PlatformBeneficiary),
		FeeBps:              c.FeeBps,
		Target:              domain.Amount(c.Target),
		Expiration:          now.Add(c.TTL).UTC(),
	}
}
