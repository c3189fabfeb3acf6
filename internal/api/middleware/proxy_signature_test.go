package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testSecret = "shpss_test_secret"

func sign(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	// каноническая форма: сортировка по имени, k=v без разделителей
	sort.Strings(keys)
	payload := ""
	for _, k := range keys {
		payload += k + "=" + params[k][0]
	}
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func newProxyRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(ProxySignature(testSecret, nopLogger{}))
	r.HandleFunc("/proxy/delivery/settings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestProxySignatureAccepted(t *testing.T) {
	params := url.Values{}
	params.Set("shop", "demo.myshopify.com")
	params.Set("timestamp", "1735689600")
	signature := sign(params)
	params.Set("signature", signature)

	req := httptest.NewRequest(http.MethodGet, "/proxy/delivery/settings?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	newProxyRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProxySignatureMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/proxy/delivery/settings?shop=demo.myshopify.com", nil)
	rec := httptest.NewRecorder()
	newProxyRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProxySignatureMismatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/proxy/delivery/settings?shop=demo.myshopify.com&signature=deadbeef", nil)
	rec := httptest.NewRecorder()
	newProxyRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProxySignatureTamperedParam(t *testing.T) {
	params := url.Values{}
	params.Set("shop", "demo.myshopify.com")
	signature := sign(params)

	params.Set("shop", "evil.myshopify.com")
	params.Set("signature", signature)

	req := httptest.NewRequest(http.MethodGet, "/proxy/delivery/settings?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	newProxyRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
