package tankerkoenig

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records dispatched calls and returns a canned body.
type fakeExecutor struct {
	body []byte
	err  error

	calls  int
	method string
	url    string
	params url.Values
}

func (f *fakeExecutor) Get(ctx context.Context, requestURL string, query url.Values) ([]byte, error) {
	f.calls++
	f.method = "GET"
	f.url = requestURL
	f.params = query
	return f.body, f.err
}

func (f *fakeExecutor) Post(ctx context.Context, requestURL string, form url.Values) ([]byte, error) {
	f.calls++
	f.method = "POST"
	f.url = requestURL
	f.params = form
	return f.body, f.err
}

func newFakeAPI(t *testing.T, executor *fakeExecutor) *API {
	t.Helper()
	api, err := New("test-key", WithBaseURL("https://example.test/json/"), WithExecutor(executor))
	require.NoError(t, err)
	api.requester.now = func() time.Time { return time.Unix(1700000000, 0) }
	return api
}

func TestExecuteInjectsAPIKeyAndTimestamp(t *testing.T) {
	executor := &fakeExecutor{body: []byte(`{"ok": true, "stations": []}`)}
	api := newFakeAPI(t, executor)

	result, err := api.List(52.52, 13.4).Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OK)

	assert.Equal(t, "GET", executor.method)
	assert.Equal(t, "https://example.test/json/list.php", executor.url)
	assert.Equal(t, "test-key", executor.params.Get("apikey"))
	assert.Equal(t, "1700000000", executor.params.Get("ts"))
	assert.Equal(t, "52.52", executor.params.Get("lat"))
}

func TestExecuteValidationFailureSkipsTransport(t *testing.T) {
	executor := &fakeExecutor{body: []byte(`{"ok": true}`)}
	api := newFakeAPI(t, executor)

	_, err := api.List(200, 0).Execute(context.Background())
	require.Error(t, err)

	var requestErr *RequestError
	require.ErrorAs(t, err, &requestErr)
	assert.Equal(t, "list.php", requestErr.Endpoint)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	assert.Zero(t, executor.calls, "validation failures never reach the network")
}

func TestExecuteRevalidatesOnEachCall(t *testing.T) {
	executor := &fakeExecutor{body: []byte(`{"ok": true, "prices": {}}`)}
	api := newFakeAPI(t, executor)

	req := api.Prices()
	_, err := req.Execute(context.Background())
	assert.Error(t, err, "no ids added yet")
	assert.Zero(t, executor.calls)

	req.AddID("station-1")
	_, err = req.Execute(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, executor.calls)
}

func TestExecuteWrapsTransportFailure(t *testing.T) {
	transportErr := &TransportError{URL: "https://example.test/json/detail.php", Err: errors.New("connection refused")}
	executor := &fakeExecutor{err: transportErr}
	api := newFakeAPI(t, executor)

	_, err := api.Detail("station-1").Execute(context.Background())
	require.Error(t, err)

	var requestErr *RequestError
	require.ErrorAs(t, err, &requestErr)

	var gotTransport *TransportError
	require.ErrorAs(t, err, &gotTransport)
	assert.Equal(t, "https://example.test/json/detail.php", gotTransport.URL)
}

func TestExecuteWrapsMappingFailure(t *testing.T) {
	executor := &fakeExecutor{body: []byte("<html>not json</html>")}
	api := newFakeAPI(t, executor)

	_, err := api.Detail("station-1").Execute(context.Background())
	require.Error(t, err)

	var mappingErr *MappingError
	assert.ErrorAs(t, err, &mappingErr)
}

func TestExecuteCorrectionUsesPost(t *testing.T) {
	executor := &fakeExecutor{body: []byte(`{"ok": true}`)}
	api := newFakeAPI(t, executor)

	result, err := api.Correction("station-1", CorrectionWrongStatusOpen).Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OK)

	assert.Equal(t, "POST", executor.method)
	assert.Equal(t, "https://example.test/json/complaint.php", executor.url)
	assert.Equal(t, "wrongStatusOpen", executor.params.Get("type"))
}

func TestExecuteDropsEmptyParameters(t *testing.T) {
	executor := &fakeExecutor{body: []byte(`{"ok": true, "prices": {}}`)}
	api := newFakeAPI(t, executor)

	_, err := api.Prices().AddID("station-1").Execute(context.Background())
	require.NoError(t, err)

	for key, values := range executor.params {
		for _, value := range values {
			assert.NotEmptyf(t, value, "parameter %s must not be empty on the wire", key)
		}
	}
}

// Ensures the error chain is printable end to end.
func TestRequestErrorMessage(t *testing.T) {
	err := &RequestError{
		Endpoint: "prices.php",
		Err:      &TransportError{URL: "https://example.test/json/prices.php", Err: fmt.Errorf("unexpected status code 503")},
	}

	assert.Contains(t, err.Error(), "prices.php")
	assert.Contains(t, err.Error(), "503")
}
