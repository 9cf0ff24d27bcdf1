package httpadapter

import (
	"net/http"
	"time"

	"campaign-vault/internal/core/domain"
)

// handleDeposit pulls the requested amount from the caller's ledger account
// into the vault. The caller must have approved the vault account first; a
// missing approval surfaces as 402 transfer_failed.
func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.unauthenticated(w, err)
		return
	}
	var req depositRequest
	if err = h.decode(r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	shares, err := h.svc.Deposit(r.Context(), who, domain.Amount(req.Amount))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]uint64{"shares": uint64(shares)})
}

// handleSettle sweeps the vault to the beneficiary through the settlement
// gate.
func (h *Handler) handleSettle(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.unauthenticated(w, err)
		return
	}
	res, err := h.svc.Settle(r.Context(), who)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]uint64{"net": uint64(res.Net), "fee": uint64(res.Fee)})
}

// handleRefund pays the caller's pro-rata share back after an unsuccessful
// campaign expired.
func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.unauthenticated(w, err)
		return
	}
	var req refundRequest
	if err = h.decode(r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	res, err := h.svc.Refund(r.Context(), who, domain.Amount(req.Assets), domain.Identity(req.Receiver))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"shares":   uint64(res.Shares),
		"assets":   uint64(res.Assets),
		"receiver": string(res.Receiver),
	})
}

// handleExpiration moves the campaign deadline to now + ttl_seconds.
func (h *Handler) handleExpiration(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.unauthenticated(w, err)
		return
	}
	var req expirationRequest
	if err = h.decode(r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	exp, err := h.svc.ExtendExpiration(r.Context(), who, time.Duration(req.TTLSeconds)*time.Second)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]time.Time{"expiration": exp})
}
