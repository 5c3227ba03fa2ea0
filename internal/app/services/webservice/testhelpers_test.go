package webservice

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/services/session"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedRequest struct {
	Method        string
	Path          string
	EscapedPath   string
	Authorization string
	ContentType   string
	RequestID     string
	Body          []byte
}

type stubServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func (s *stubServer) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest(nil), s.requests...)
}

// newStubServer answers every request with status and body.
func newStubServer(t *testing.T, status int, body string) *stubServer {
	t.Helper()
	return newStubServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

func newStubServerWithHandler(t *testing.T, handler http.HandlerFunc) *stubServer {
	t.Helper()
	stub := &stubServer{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		stub.mu.Lock()
		stub.requests = append(stub.requests, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			EscapedPath:   r.URL.EscapedPath(),
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			RequestID:     r.Header.Get("X-Request-ID"),
			Body:          body,
		})
		stub.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(stub.Close)
	return stub
}

func newTestWebService(t *testing.T, baseUrl string, store *session.Store) contracts.WebService {
	t.Helper()
	service, err := NewWebService(Options{
		BaseUrl: baseUrl,
		Timeout: 2 * time.Second,
	}, store, zap.NewNop())
	require.NoError(t, err)
	return service
}

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}
