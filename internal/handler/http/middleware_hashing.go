package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-sealed-table/internal/app"
	"github.com/MKhiriev/go-sealed-table/internal/utils"
)

// hashHeader carries the hex HMAC-SHA256 of a request or response body,
// keyed with the shared hash key.
const hashHeader = "HashSHA256"

// withHashing checks the HashSHA256 header of every request with a body and
// signs every response body the same way.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("func", "*Handler.withHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if err = checkBodyHash(body, r.Header.Get(hashHeader)); err != nil {
			h.logger.Err(err).Str("func", "*Handler.withHashing").Msg("integrity check failed")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		hw := &hashingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(hw, r)

		if hw.body.Len() > 0 {
			w.Header().Set(hashHeader, utils.SignBody(hw.body.Bytes()))
		}
		w.WriteHeader(hw.status)
		w.Write(hw.body.Bytes())
	})
}

func checkBodyHash(body []byte, header string) error {
	if len(body) == 0 {
		return nil
	}
	if header == "" {
		return ErrMissingHashHeader
	}

	if !utils.VerifyBody(body, header) {
		return ErrHashMismatch
	}
	return nil
}

// hashingResponseWriter buffers the response so its hash can be sent as a
// header ahead of the body.
type hashingResponseWriter struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}
