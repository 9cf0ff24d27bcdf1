package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-vault/internal/core/domain"
)

// handleStatus returns the campaign parameters, share totals, the vault's
// ledger balance and the derived settlement phase.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	c := st.Campaign
	h.writeJSON(w, http.StatusOK, campaignResponse{
		ID:                  c.ID.String(),
		Asset:               c.Asset,
		Vault:               string(c.Vault),
		Beneficiary:         string(c.Beneficiary),
		PlatformBeneficiary: string(c.PlatformBeneficiary),
		FeeBps:              c.FeeBps,
		Target:              uint64(c.Target),
		Expiration:          c.Expiration,
		TotalShares:         uint64(c.TotalShares),
		TotalAssets:         uint64(c.TotalAssets),
		SettledAt:           c.SettledAt,
		Phase:               st.Phase.String(),
		Balance:             uint64(st.Balance),
	})
}

// handleHolding returns a holder's shares and pro-rata entitlement.
func (h *Handler) handleHolding(w http.ResponseWriter, r *http.Request) {
	holder := chi.URLParam(r, "holder")
	if holder == "" {
		h.badRequest(w, "missing holder")
		return
	}
	view, err := h.svc.Holding(r.Context(), domain.Identity(holder))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, holdingResponse{
		Holder:      string(view.Holder),
		Shares:      uint64(view.Shares),
		MaxWithdraw: uint64(view.MaxWithdraw),
	})
}

// handlePreviewWithdraw returns the shares burned for ?assets=N.
func (h *Handler) handlePreviewWithdraw(w http.ResponseWriter, r *http.Request) {
	assets, err := strconv.ParseUint(r.URL.Query().Get("assets"), 10, 64)
	if err != nil {
		h.badRequest(w, "invalid 'assets'")
		return
	}
	shares, err := h.svc.PreviewWithdraw(r.Context(), domain.Amount(assets))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]uint64{"shares": uint64(shares)})
}

// handleEvents lists recent vault events, newest first. ?limit defaults to 100.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			h.badRequest(w, "invalid 'limit'")
			return
		}
		limit = n
	}
	events, err := h.svc.Events(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventResponse{
			ID:           e.ID.String(),
			Kind:         string(e.Kind),
			Account:      string(e.Account),
			Counterparty: string(e.Counterparty),
			Amount:       uint64(e.Amount),
			Shares:       uint64(e.Shares),
			Expiration:   e.Expiration,
			CreatedAt:    e.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}
