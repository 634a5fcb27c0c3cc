package tankerkoenig

import (
	"context"
	"net/http"
)

// StationDetailRequest obtains detail information for a single station,
// identified by the unique ID from a previous station list result.
type StationDetailRequest struct {
	requester *requester
	stationID string
}

// Endpoint returns the detail endpoint path.
func (r *StationDetailRequest) Endpoint() string {
	return endpointDetail
}

// Method returns the HTTP method of the request.
func (r *StationDetailRequest) Method() string {
	return http.MethodGet
}

// Validate checks that a station ID was supplied.
func (r *StationDetailRequest) Validate() error {
	return validateNonEmpty(r.stationID, "ID")
}

func (r *StationDetailRequest) parameters() map[string]string {
	return newParamBuilder().add("id", r.stationID).build()
}

// Execute runs the request and returns the station detail result.
func (r *StationDetailRequest) Execute(ctx context.Context) (*StationDetailResult, error) {
	body, err := r.requester.execute(ctx, r)
	if err != nil {
		return nil, err
	}
	result, err := decodeStationDetail(body)
	return wrapDecode(r.Endpoint(), result, err)
}
