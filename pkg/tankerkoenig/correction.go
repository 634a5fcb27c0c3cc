package tankerkoenig

import (
	"context"
	"net/http"
)

// CorrectionType is the kind of crowdsourced data fix submitted with a
// CorrectionRequest. Each type declares whether it requires an
// accompanying correction value.
type CorrectionType string

const (
	// CorrectionWrongName corrects the stations name. Requires a string value.
	CorrectionWrongName CorrectionType = "wrongPetrolStationName"
	// CorrectionWrongStatusOpen reports a station wrongly listed as open. Requires no value.
	CorrectionWrongStatusOpen CorrectionType = "wrongStatusOpen"
	// CorrectionWrongStatusClosed reports a station wrongly listed as closed. Requires no value.
	CorrectionWrongStatusClosed CorrectionType = "wrongStatusClosed"
	// CorrectionWrongPriceE5 corrects the E5 price. Requires a decimal value (#.##).
	CorrectionWrongPriceE5 CorrectionType = "wrongPriceE5"
	// CorrectionWrongPriceE10 corrects the E10 price. Requires a decimal value (#.##).
	CorrectionWrongPriceE10 CorrectionType = "wrongPriceE10"
	// CorrectionWrongPriceDiesel corrects the diesel price. Requires a decimal value (#.##).
	CorrectionWrongPriceDiesel CorrectionType = "wrongPriceDiesel"
	// CorrectionWrongBrand corrects the stations brand. Requires a string value.
	CorrectionWrongBrand CorrectionType = "wrongPetrolStationBrand"
	// CorrectionWrongStreet corrects the stations street. Requires a string value.
	CorrectionWrongStreet CorrectionType = "wrongPetrolStationStreet"
	// CorrectionWrongHouseNumber corrects the stations house number. Requires a string value.
	CorrectionWrongHouseNumber CorrectionType = "wrongPetrolStationHouseNumber"
	// CorrectionWrongPostCode corrects the stations post code. Requires a 5-digit value.
	CorrectionWrongPostCode CorrectionType = "wrongPetrolStationPostcode"
	// CorrectionWrongPlace corrects the stations city. Requires a string value.
	CorrectionWrongPlace CorrectionType = "wrongPetrolStationPlace"
	// CorrectionWrongLocation corrects the stations coordinates. Requires a "lat,lng" value.
	CorrectionWrongLocation CorrectionType = "wrongPetrolStationLocation"
)

// QueryParam returns the wire representation of the correction type.
func (t CorrectionType) QueryParam() string {
	return string(t)
}

// RequiresValue reports whether the correction type requires an
// accompanying correction value. Only the two status corrections do not.
func (t CorrectionType) RequiresValue() bool {
	return t != CorrectionWrongStatusOpen && t != CorrectionWrongStatusClosed
}

// CorrectionRequest submits a station data correction. The station ID is
// always required; the correction value and its format depend on the
// correction type.
type CorrectionRequest struct {
	requester       *requester
	correctionType  CorrectionType
	stationID       string
	correctionValue string
}

// SetStationID sets the station the correction applies to.
func (r *CorrectionRequest) SetStationID(stationID string) *CorrectionRequest {
	r.stationID = stationID
	return r
}

// SetCorrectionValue sets the corrected value. The expected format is
// determined by the correction type: a decimal number for the price
// corrections, a 5-digit post code for CorrectionWrongPostCode, a
// "lat,lng" pair for CorrectionWrongLocation and any non-empty string for
// the rest.
func (r *CorrectionRequest) SetCorrectionValue(value string) *CorrectionRequest {
	r.correctionValue = value
	return r
}

// Endpoint returns the complaint endpoint path.
func (r *CorrectionRequest) Endpoint() string {
	return endpointCorrection
}

// Method returns the HTTP method of the request.
func (r *CorrectionRequest) Method() string {
	return http.MethodPost
}

// Validate checks the station ID and, depending on the correction type,
// the presence and format of the correction value.
func (r *CorrectionRequest) Validate() error {
	if err := validateNonEmpty(string(r.correctionType), "Type"); err != nil {
		return err
	}
	if err := validateNonEmpty(r.stationID, "Station ID"); err != nil {
		return err
	}

	if !r.correctionType.RequiresValue() {
		return nil
	}
	if err := validateNonEmpty(r.correctionValue, "Correction Value"); err != nil {
		return err
	}

	switch r.correctionType {
	case CorrectionWrongPriceE5, CorrectionWrongPriceE10, CorrectionWrongPriceDiesel:
		return validateFloatString(r.correctionValue, "Correction Value")
	case CorrectionWrongPostCode:
		return validatePostCode(r.correctionValue)
	case CorrectionWrongLocation:
		return validateLatLngPair(r.correctionValue)
	}
	return nil
}

func (r *CorrectionRequest) parameters() map[string]string {
	builder := newParamBuilder().
		add("id", r.stationID).
		add("type", r.correctionType)

	if r.correctionType.RequiresValue() {
		builder.add("correction", r.correctionValue)
	}
	return builder.build()
}

// Execute runs the request and returns the correction result.
func (r *CorrectionRequest) Execute(ctx context.Context) (*CorrectionResult, error) {
	body, err := r.requester.execute(ctx, r)
	if err != nil {
		return nil, err
	}
	result, err := decodeCorrection(body)
	return wrapDecode(r.Endpoint(), result, err)
}
