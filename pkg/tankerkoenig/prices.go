package tankerkoenig

import (
	"context"
	"net/http"
	"sort"
	"strings"
)

// PricesRequest obtains gas prices for a set of stations. Between 1 and
// 10 station IDs can and must be supplied, or the request will fail
// validation.
type PricesRequest struct {
	requester  *requester
	stationIDs map[string]struct{}
}

// AddID adds a station ID. Empty IDs are ignored and IDs are added
// uniquely; the insertion order is irrelevant.
func (r *PricesRequest) AddID(stationID string) *PricesRequest {
	if stationID != "" {
		r.stationIDs[stationID] = struct{}{}
	}
	return r
}

// AddIDs adds multiple station IDs with the same rules as AddID.
func (r *PricesRequest) AddIDs(stationIDs ...string) *PricesRequest {
	for _, stationID := range stationIDs {
		r.AddID(stationID)
	}
	return r
}

// Endpoint returns the prices endpoint path.
func (r *PricesRequest) Endpoint() string {
	return endpointPrices
}

// Method returns the HTTP method of the request.
func (r *PricesRequest) Method() string {
	return http.MethodGet
}

// Validate checks that between 1 and 10 unique station IDs were added.
func (r *PricesRequest) Validate() error {
	ids := r.ids()
	if err := validateNonEmptyCollection(ids, "IDs"); err != nil {
		return err
	}
	return validateMaxCount(ids, 10, "IDs")
}

func (r *PricesRequest) parameters() map[string]string {
	return newParamBuilder().add("ids", strings.Join(r.ids(), ",")).build()
}

func (r *PricesRequest) ids() []string {
	ids := make([]string, 0, len(r.stationIDs))
	for id := range r.stationIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Execute runs the request and returns the prices result.
func (r *PricesRequest) Execute(ctx context.Context) (*PricesResult, error) {
	body, err := r.requester.execute(ctx, r)
	if err != nil {
		return nil, err
	}
	result, err := decodePrices(body)
	return wrapDecode(r.Endpoint(), result, err)
}
