package tankerkoenig

const (
	endpointList       = "list.php"
	endpointDetail     = "detail.php"
	endpointPrices     = "prices.php"
	endpointCorrection = "complaint.php"
)

// request is the contract every endpoint-specific request type fulfills.
// Requests are single-use value builders; Execute may be called multiple
// times and re-runs validation each time.
type request interface {
	// Endpoint returns the fixed API endpoint path.
	Endpoint() string

	// Method returns the HTTP method, http.MethodGet or http.MethodPost.
	Method() string

	// Validate checks the accumulated parameters against the documented
	// constraints and returns a *ValidationError on the first violation.
	Validate() error

	// parameters builds the wire parameter map. The API key and timestamp
	// are injected later by the requester.
	parameters() map[string]string
}
