package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryService/internal/api/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ProxySignature проверяет HMAC-SHA256 подпись app-proxy запросов.
// Подпись считается по query параметрам, отсортированным по имени и
// склеенным в строку "k=v" без разделителей; параметр signature исключается.
// Значения одного параметра объединяются через запятую. Сравнение
// constant-time, несовпадение - 401.
func ProxySignature(secret string, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			provided := query.Get("signature")
			if provided == "" {
				logger.Warn("ProxySignature: missing signature for %s", r.URL.Path)
				handlers.RespondUnauthorized(w, "missing signature")
				return
			}

			keys := make([]string, 0, len(query))
			for k := range query {
				if k == "signature" {
					continue
				}
				keys = append(keys, k)
			}
			sort.Strings(keys)

			var sb strings.Builder
			for _, k := range keys {
				sb.WriteString(k)
				sb.WriteString("=")
				sb.WriteString(strings.Join(query[k], ","))
			}

			mac := hmac.New(sha256.New, []byte(secret))
			mac.Write([]byte(sb.String()))
			expected := hex.EncodeToString(mac.Sum(nil))

			if !hmac.Equal([]byte(expected), []byte(provided)) {
				logger.Warn("ProxySignature: signature mismatch for %s", r.URL.Path)
				handlers.RespondUnauthorized(w, "invalid signature")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
