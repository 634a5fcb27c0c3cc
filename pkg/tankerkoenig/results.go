package tankerkoenig

// ResultInfo is the success envelope shared by all API responses. When OK
// is false the endpoint-specific payload is absent and Message explains
// why.
type ResultInfo struct {
	OK bool
	// Status is "ok" or "error". Not filled for correction requests.
	Status string
	// Message carries the error description when OK is false.
	Message string
	// License is the APIs license attribution. Not filled for correction
	// requests.
	License string
	// Data names the original data supplier. Not filled for correction
	// requests.
	Data string
}

// StationListResult is the result of a StationListRequest.
type StationListResult struct {
	ResultInfo
	Stations []Station
}

// StationDetailResult is the result of a StationDetailRequest. Station is
// nil in case of an error.
type StationDetailResult struct {
	ResultInfo
	Station *Station
}

// PricesResult is the result of a PricesRequest.
type PricesResult struct {
	ResultInfo
	// Prices maps station IDs to their gas prices.
	Prices map[string]GasPrices
}

// GasPrices returns the prices for a station, if present in the result.
func (r *PricesResult) GasPrices(stationID string) (GasPrices, bool) {
	prices, ok := r.Prices[stationID]
	return prices, ok
}

// CorrectionResult is the result of a CorrectionRequest. It carries no
// payload beyond the envelope.
type CorrectionResult struct {
	ResultInfo
}
