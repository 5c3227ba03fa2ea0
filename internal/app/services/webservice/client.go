package webservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Options struct {
	BaseUrl   string
	Timeout   time.Duration
	UserAgent string
	// HTTPClient replaces the default client; its Timeout is left untouched.
	HTTPClient *http.Client
}

type webService struct {
	BaseUrl    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Session    contracts.TokenStore
	Log        *zap.Logger
}

// apiRequest describes one round trip. ExpectedStatus 0 accepts any 2xx.
// ContentType forces the JSON Content-Type header on a request without a body.
type apiRequest struct {
	Operation      string
	Method         string
	Path           string
	Resource       string
	Body           interface{}
	ContentType    bool
	AuthRequired   bool
	ExpectedStatus int
}

func NewWebService(opts Options, tokenStore contracts.TokenStore, logger *zap.Logger) (contracts.WebService, error) {
	baseUrl := strings.TrimRight(strings.TrimSpace(opts.BaseUrl), "/")
	parsed, err := url.Parse(baseUrl)
	if err != nil {
		return nil, exceptions.ErrInvalidEndpoint(err, opts.BaseUrl)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, exceptions.ErrInvalidEndpoint(nil, opts.BaseUrl)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = constvars.DefaultUserAgent
	}

	return &webService{
		BaseUrl:    baseUrl,
		Timeout:    opts.Timeout,
		UserAgent:  userAgent,
		HTTPClient: httpClient,
		Session:    tokenStore,
		Log:        logger,
	}, nil
}

func (c *webService) send(ctx context.Context, request apiRequest, out interface{}) error {
	requestID := utils.RequestIDFromContext(ctx)

	var token string
	if request.AuthRequired {
		var ok bool
		token, ok = c.Session.Token()
		if !ok {
			err := exceptions.ErrTokenMissing(nil)
			c.Log.Error(request.Operation+" authorization token missing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return err
		}
	}

	endpoint := c.BaseUrl + request.Path
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		c.Log.Error(request.Operation+" error building endpoint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrInvalidEndpoint(err, endpoint)
	}

	var body io.Reader
	if request.Body != nil {
		requestJSON, err := json.Marshal(request.Body)
		if err != nil {
			c.Log.Error(request.Operation+" error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(requestJSON)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, endpoint, body)
	if err != nil {
		c.Log.Error(request.Operation+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderUserAgent, c.UserAgent)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if body != nil || request.ContentType {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if request.AuthRequired {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		customErr := classifyTransportError(ctx, err)
		c.Log.Error(request.Operation+" error sending HTTP request",
			append(utils.ErrorFields(customErr),
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, request.Method),
				zap.String(constvars.LoggingEndpointKey, request.Path),
			)...,
		)
		return customErr
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	c.Log.Debug(request.Operation+" response received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.Method),
		zap.String(constvars.LoggingEndpointKey, request.Path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if !isExpectedStatus(resp.StatusCode, request.ExpectedStatus) {
		customErr := exceptions.ErrUnexpectedStatusCode(resp.StatusCode, request.Resource).
			WithServerMessage(readServerMessage(resp.Body))
		c.Log.Error(request.Operation+" unexpected status code",
			append(utils.ErrorFields(customErr),
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)...,
		)
		return customErr
	}

	if out == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			customErr = exceptions.ErrRequestTimeout(err)
		} else {
			customErr = exceptions.ErrDecodeResponse(err, request.Resource)
		}
		c.Log.Error(request.Operation+" error decoding response",
			append(utils.ErrorFields(customErr),
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)...,
		)
		return customErr
	}
	return nil
}

func isExpectedStatus(statusCode, expected int) bool {
	if expected != 0 {
		return statusCode == expected
	}
	return statusCode >= 200 && statusCode < 300
}

func classifyTransportError(ctx context.Context, err error) *exceptions.CustomError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return exceptions.ErrRequestTimeout(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return exceptions.ErrRequestTimeout(err)
	}
	return exceptions.ErrSendHTTPRequest(err)
}

// readServerMessage pulls "message" or "error" out of a JSON error body, falling back to the raw text.
func readServerMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, constvars.MaxErrorBodyBytes))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// pathWithID escapes id so reserved characters cannot change the route.
func pathWithID(format, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", exceptions.ErrInvalidEndpoint(nil, fmt.Sprintf(format, "<empty>"))
	}
	return fmt.Sprintf(format, url.PathEscape(id)), nil
}
