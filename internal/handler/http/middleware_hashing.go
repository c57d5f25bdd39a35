package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/flux-signup/internal/app"
	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/internal/utils"
)

// checkHash verifies the HashSHA256 header against the HMAC-SHA256 of the raw
// request body. It runs after gzip decoding, so the client signs the
// uncompressed JSON. Without a configured key the check is skipped.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if !h.hasher.Verify(body, signature) {
			log.Warn().Str("func", "*Handler.checkHash").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.checkHash").Msg("hashes are equal")
		next.ServeHTTP(w, r)
	})
}
