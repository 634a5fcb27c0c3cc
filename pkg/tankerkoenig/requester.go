package tankerkoenig

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Executor dispatches HTTP calls for the requester. Implementations must
// fail with an error on network or HTTP-status failures and are expected
// to be safe for concurrent use. The client is agnostic to the concrete
// HTTP stack behind it.
type Executor interface {
	// Get executes a GET request with the given query parameters and
	// returns the raw response body.
	Get(ctx context.Context, requestURL string, query url.Values) ([]byte, error)

	// Post executes a POST request with an URL-encoded form body and
	// returns the raw response body.
	Post(ctx context.Context, requestURL string, form url.Values) ([]byte, error)
}

// HTTPExecutor is the default Executor on top of net/http.
type HTTPExecutor struct {
	client *http.Client
}

// NewHTTPExecutor creates an HTTPExecutor with a 30 second timeout.
func NewHTTPExecutor() *HTTPExecutor {
	return &HTTPExecutor{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewHTTPExecutorWithClient creates an HTTPExecutor using the supplied
// client. Timeouts and retries are the callers responsibility.
func NewHTTPExecutorWithClient(client *http.Client) *HTTPExecutor {
	return &HTTPExecutor{client: client}
}

// Get executes a GET request with a query string.
func (e *HTTPExecutor) Get(ctx context.Context, requestURL string, query url.Values) ([]byte, error) {
	fullURL := requestURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &TransportError{URL: fullURL, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	return e.do(req, fullURL)
}

// Post executes a POST request with an URL-encoded form body.
func (e *HTTPExecutor) Post(ctx context.Context, requestURL string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	return e.do(req, requestURL)
}

func (e *HTTPExecutor) do(req *http.Request, fullURL string) ([]byte, error) {
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: fullURL, Err: fmt.Errorf("executing request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: fullURL, Err: fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))}
	}

	return body, nil
}

// requester orchestrates validate, build-params, transport-call for a
// request and returns the raw response body. Failures of any stage are
// wrapped into a *RequestError.
type requester struct {
	executor Executor
	baseURL  string
	apiKey   string
	logger   zerolog.Logger
	now      func() time.Time
}

func (r *requester) execute(ctx context.Context, req request) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, &RequestError{Endpoint: req.Endpoint(), Err: err}
	}

	params := req.parameters()
	params["apikey"] = r.apiKey
	if _, ok := params["ts"]; !ok {
		params["ts"] = strconv.FormatInt(r.now().Unix(), 10)
	}

	values := make(url.Values, len(params))
	for key, value := range params {
		if value == "" {
			continue
		}
		values.Set(key, value)
	}

	requestURL := r.baseURL + req.Endpoint()

	r.logger.Debug().
		Str("endpoint", req.Endpoint()).
		Str("method", req.Method()).
		Msg("dispatching request")

	var body []byte
	var err error
	switch req.Method() {
	case http.MethodGet:
		body, err = r.executor.Get(ctx, requestURL, values)
	case http.MethodPost:
		body, err = r.executor.Post(ctx, requestURL, values)
	default:
		err = fmt.Errorf("unsupported request method %s", req.Method())
	}
	if err != nil {
		return nil, &RequestError{Endpoint: req.Endpoint(), Err: err}
	}

	return body, nil
}

// wrapDecode turns a mapper failure into the common execution failure.
func wrapDecode[R any](endpoint string, result R, err error) (R, error) {
	if err != nil {
		var zero R
		return zero, &RequestError{Endpoint: endpoint, Err: &MappingError{Err: err}}
	}
	return result, nil
}
