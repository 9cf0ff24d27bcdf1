package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"campaign-vault/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type campaignResponse struct {
	ID                  string     `json:"id"`
	Asset               string     `json:"asset"`
	Vault               string     `json:"vault"`
	Beneficiary         string     `json:"beneficiary"`
	PlatformBeneficiary string     `json:"platform_beneficiary"`
	FeeBps              uint16     `json:"fee_bps"`
	Target              uint64     `json:"target"`
	Expiration          time.Time  `json:"expiration"`
	TotalShares         uint64     `json:"total_shares"`
	TotalAssets         uint64     `json:"total_assets"`
	SettledAt           *time.Time `json:"settled_at,omitempty"`
	Phase               string     `json:"phase"`
	Balance             uint64     `json:"balance"`
}

type holdingResponse struct {
	Holder      string `json:"holder"`
	Shares      uint64 `json:"shares"`
	MaxWithdraw uint64 `json:"max_withdraw"`
}

type eventResponse struct {
	ID           string     `json:"id"`
	Kind         string     `json:"kind"`
	Account      string     `json:"account,omitempty"`
	Counterparty string     `json:"counterparty,omitempty"`
	Amount       uint64     `json:"amount"`
	Shares       uint64     `json:"shares,omitempty"`
	Expiration   *time.Time `json:"expiration,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps a domain failure kind to its HTTP status. Unknown errors
// are logged and answered with a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	kind := domain.ErrorKind(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", slog.String("kind", kind), slog.Any("error", err))
		if kind == "internal" {
			h.writeJSON(w, status, errorResponse{Error: kind, Message: "internal error"})
			return
		}
	}
	h.writeJSON(w, status, errorResponse{Error: kind, Message: err.Error()})
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: msg})
}

func (h *Handler) unauthenticated(w http.ResponseWriter, err error) {
	h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthenticated", Message: err.Error()})
}

func statusFor(kind string) int {
	switch kind {
	case "not_authorized":
		return http.StatusForbidden
	case "transfer_failed":
		return http.StatusPaymentRequired
	case "exceeded_max_withdraw", "campaign_target_not_reached", "campaign_target_reached",
		"campaign_not_expired", "campaign_expired", "campaign_settled", "insufficient_shares":
		return http.StatusConflict
	case "zero_amount", "invalid_ttl", "amount_overflow":
		return http.StatusBadRequest
	case "campaign_not_found":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
