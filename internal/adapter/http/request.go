package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"campaign-vault/internal/core/domain"
)

var errMissingCaller = errors.New("missing " + CallerHeader + " header")

type depositRequest struct {
	Amount uint64 `json:"amount" validate:"gt=0"`
}

type refundRequest struct {
	// Assets is optional; zero refunds the caller's whole entitlement.
	Assets   uint64 `json:"assets"`
	Receiver string `json:"receiver" validate:"omitempty,max=128"`
}

type expirationRequest struct {
	// The max bound is math.MaxInt64 / int64(time.Second), so ttl_seconds
	// converts to a time.Duration without wrapping.
	TTLSeconds int64 `json:"ttl_seconds" validate:"gt=0,max=9223372036"`
}

// caller reads the acting identity from the request headers.
func caller(r *http.Request) (domain.Identity, error) {
	id := r.Header.Get(CallerHeader)
	if id == "" {
		return "", errMissingCaller
	}
	return domain.Identity(id), nil
}

// decode parses a JSON body into dst and validates its tags. An empty body
// leaves dst at its zero value.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return h.validate.Struct(dst)
}
