package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-vault/internal/core/domain"
)

// Prometheus implements port.Metrics with Prometheus collectors registered
// on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	deposits       prometheus.Counter
	depositAssets  prometheus.Counter
	refunds        prometheus.Counter
	refundedAssets prometheus.Counter
	settledNet     prometheus.Counter
	feesPaid       prometheus.Counter
	rejections     *prometheus.CounterVec
	balance        prometheus.Gauge
	target         prometheus.Gauge
	totalShares    prometheus.Gauge
	totalAssets    prometheus.Gauge
	phase          *prometheus.GaugeVec
}

// NewPrometheus creates the vault collectors on a fresh registry.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Prometheus{
		registry: reg,
		deposits: f.NewCounter(prometheus.CounterOpts{
			Namespace: "vault", Name: "deposits_total",
			Help: "Number of committed deposits.",
		}),
		depositAssets: f.NewCounter(prometheus.CounterOpts{
			Namespace: "vault", Name: "deposited_assets_total",
			Help: "Assets pulled into the vault by deposits.",
		}),
		refunds: f.NewCounter(prometheus.CounterOpts{
			Namespace: "vault", Name: "refunds_total",
			Help: "Number of committed contributor refunds.",
		}),
		refundedAssets: f.NewCounter(prometheus.CounterOpts{
			Namespace: "vault", Name: "refunded_assets_total",
			Help: "Assets paid out by contributor refunds.",
		}),
		settledNet: f.NewCounter(prometheus.CounterOpts{
			Namespace: "vault", Name: "settled_net_assets_total",
			Help: "Assets swept to the beneficiary.",
		}),
		feesPaid: f.NewCounter(prometheus.CounterOpts{
			Namespace: "vault", Name: "fees_paid_total",
			Help: "Platform fees paid on settlement.",
		}),
		rejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vault", Name: "rejections_total",
			Help: "Rejected vault operations by operation and error kind.",
		}, []string{"op", "kind"}),
		balance: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "vault", Name: "ledger_balance",
			Help: "Ledger balance of the vault account at the last snapshot.",
		}),
		target: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "vault", Name: "target",
			Help: "Campaign funding target.",
		}),
		totalShares: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "vault", Name: "total_shares",
			Help: "Outstanding shares at the last snapshot.",
		}),
		totalAssets: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "vault", Name: "total_assets",
			Help: "Assets accounted to shares at the last snapshot.",
		}),
		phase: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "vault", Name: "phase",
			Help: "1 for the current settlement phase, 0 otherwise.",
		}, []string{"phase"}),
	}
}

// Deposited counts a committed deposit and the assets it pulled in.
func (p *Prometheus) Deposited(amount, _ domain.Amount) {
	p.deposits.Inc()
	p.depositAssets.Add(float64(amount))
}

// Refunded counts a committed refund and the assets paid out.
func (p *Prometheus) Refunded(assets, _ domain.Amount) {
	p.refunds.Inc()
	p.refundedAssets.Add(float64(assets))
}

// Settled records the amounts swept to the beneficiary and the platform.
func (p *Prometheus) Settled(net, fee domain.Amount) {
	p.settledNet.Add(float64(net))
	p.feesPaid.Add(float64(fee))
}

// Rejected counts a failed operation under its error kind, e.g.
// op="contributor_withdraw", kind="campaign_not_expired".
func (p *Prometheus) Rejected(op string, err error) {
	p.rejections.WithLabelValues(op, domain.ErrorKind(err)).Inc()
}

// Observe updates the state gauges from a snapshot. Exactly one phase
// series is set to 1.
func (p *Prometheus) Observe(s domain.Snapshot, totalShares, totalAssets domain.Amount) {
	p.balance.Set(float64(s.Balance))
	p.target.Set(float64(s.Target))
	p.totalShares.Set(float64(totalShares))
	p.totalAssets.Set(float64(totalAssets))
	current := s.Phase()
	for _, ph := range []domain.Phase{domain.PhasePending, domain.PhaseTargetReached, domain.PhaseExpired} {
		v := 0.0
		if ph == current {
			v = 1
		}
		p.phase.WithLabelValues(ph.String()).Set(v)
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
