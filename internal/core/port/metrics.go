package port

import "campaign-vault/internal/core/domain"

// Metrics records vault activity. Implementations must be safe for
// concurrent use.
type Metrics interface {
	Deposited(amount, shares domain.Amount)
	Refunded(assets, shares domain.Amount)
	Settled(net, fee domain.Amount)
	Rejected(op string, err error)
	Observe(s domain.Snapshot, totalShares, totalAssets domain.Amount)
}
