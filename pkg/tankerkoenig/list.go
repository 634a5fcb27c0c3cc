package tankerkoenig

import (
	"context"
	"net/http"
)

// GasRequestType defines which price data a list request asks for, either
// a specific fuel type or ALL.
type GasRequestType string

const (
	GasRequestDiesel GasRequestType = "diesel"
	GasRequestE5     GasRequestType = "e5"
	GasRequestE10    GasRequestType = "e10"
	GasRequestALL    GasRequestType = "all"
)

// QueryParam returns the wire representation of the gas request type.
func (t GasRequestType) QueryParam() string {
	return string(t)
}

// SortingType is the result order of a station list request.
type SortingType string

const (
	SortingPrice    SortingType = "price"
	SortingDistance SortingType = "dist"
)

// QueryParam returns the wire representation of the sorting type.
func (t SortingType) QueryParam() string {
	return string(t)
}

// StationListRequest obtains a list of stations. The search is based
// around the coordinates, which are mandatory and must be within the
// documented boundaries.
type StationListRequest struct {
	requester *requester

	lat          *float64
	lng          *float64
	searchRadius float64
	gasType      GasRequestType
	sorting      SortingType
}

// SetCoordinates sets the center of the search. lat must be between -90
// and 90, lng between -180 and 180.
func (r *StationListRequest) SetCoordinates(lat, lng float64) *StationListRequest {
	r.lat = &lat
	r.lng = &lng
	return r
}

// SetSearchRadius sets the search radius in kilometers, between 1 and 25.
// Default is 5.
func (r *StationListRequest) SetSearchRadius(radius float64) *StationListRequest {
	r.searchRadius = radius
	return r
}

// SetGasRequestType sets which gas prices should be requested, either a
// specific fuel type or ALL. Default is ALL.
func (r *StationListRequest) SetGasRequestType(gasType GasRequestType) *StationListRequest {
	r.gasType = gasType
	return r
}

// SetSorting sets the result order. Default is SortingDistance. Price
// sorting is only meaningful for a single fuel type: with GasRequestALL
// the results are always sorted by distance.
func (r *StationListRequest) SetSorting(sorting SortingType) *StationListRequest {
	r.sorting = sorting
	return r
}

// Endpoint returns the list endpoint path.
func (r *StationListRequest) Endpoint() string {
	return endpointList
}

// Method returns the HTTP method of the request.
func (r *StationListRequest) Method() string {
	return http.MethodGet
}

// Validate checks the coordinates and the search radius against their
// documented bounds.
func (r *StationListRequest) Validate() error {
	if err := validateRequired(r.lat, "Latitude"); err != nil {
		return err
	}
	if err := validateRequired(r.lng, "Longitude"); err != nil {
		return err
	}
	if err := validateInRange(*r.lat, -90, 90, "Latitude"); err != nil {
		return err
	}
	if err := validateInRange(*r.lng, -180, 180, "Longitude"); err != nil {
		return err
	}
	if err := validateInRange(r.searchRadius, 1, 25, "Radius"); err != nil {
		return err
	}
	if err := validateNonEmpty(string(r.gasType), "Gas Request Type"); err != nil {
		return err
	}
	return validateNonEmpty(string(r.sorting), "Sorting")
}

func (r *StationListRequest) parameters() map[string]string {
	// With the ALL filter, price sorting is undefined; force distance.
	sorting := r.sorting
	if r.gasType == GasRequestALL {
		sorting = SortingDistance
	}

	return newParamBuilder().
		add("lat", *r.lat).
		add("lng", *r.lng).
		add("rad", r.searchRadius).
		add("type", r.gasType).
		add("sort", sorting).
		build()
}

// Execute runs the request and returns the station list result.
func (r *StationListRequest) Execute(ctx context.Context) (*StationListResult, error) {
	body, err := r.requester.execute(ctx, r)
	if err != nil {
		return nil, err
	}
	result, err := decodeStationList(body)
	return wrapDecode(r.Endpoint(), result, err)
}
