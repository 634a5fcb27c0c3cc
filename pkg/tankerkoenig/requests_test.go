package tankerkoenig

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	api, err := New(DemoAPIKey)
	require.NoError(t, err)
	return api
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestStationListRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		lat       float64
		lng       float64
		radius    float64
		wantField string
	}{
		{name: "valid", lat: 52.52, lng: 13.4, radius: 5},
		{name: "lat lower bound", lat: -90, lng: 0, radius: 5},
		{name: "lat upper bound", lat: 90, lng: 0, radius: 5},
		{name: "lng bounds", lat: 0, lng: -180, radius: 25},
		{name: "lat too small", lat: -90.1, lng: 0, radius: 5, wantField: "Latitude"},
		{name: "lat too large", lat: 90.1, lng: 0, radius: 5, wantField: "Latitude"},
		{name: "lng too small", lat: 0, lng: -180.1, radius: 5, wantField: "Longitude"},
		{name: "lng too large", lat: 0, lng: 180.1, radius: 5, wantField: "Longitude"},
		{name: "radius too small", lat: 0, lng: 0, radius: 0.5, wantField: "Radius"},
		{name: "radius too large", lat: 0, lng: 0, radius: 25.5, wantField: "Radius"},
	}

	api := newTestAPI(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := api.List(tt.lat, tt.lng).SetSearchRadius(tt.radius)
			err := req.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestStationListRequestDefaults(t *testing.T) {
	api := newTestAPI(t)
	params := api.List(52.52, 13.4).parameters()

	assert.Equal(t, "52.52", params["lat"])
	assert.Equal(t, "13.4", params["lng"])
	assert.Equal(t, "5", params["rad"])
	assert.Equal(t, "all", params["type"])
	assert.Equal(t, "dist", params["sort"])
}

func TestStationListRequestForcesDistanceSortingForALL(t *testing.T) {
	api := newTestAPI(t)
	req := api.List(52.52, 13.4).
		SetGasRequestType(GasRequestALL).
		SetSorting(SortingPrice)

	params := req.parameters()
	assert.Equal(t, "dist", params["sort"], "price sorting is only meaningful for a single fuel type")
}

func TestStationListRequestKeepsPriceSortingForSingleFuelType(t *testing.T) {
	api := newTestAPI(t)
	req := api.List(52.52, 13.4).
		SetGasRequestType(GasRequestDiesel).
		SetSorting(SortingPrice)

	params := req.parameters()
	assert.Equal(t, "diesel", params["type"])
	assert.Equal(t, "price", params["sort"])
}

func TestStationDetailRequestValidate(t *testing.T) {
	api := newTestAPI(t)

	assert.NoError(t, api.Detail("51d4b5a3-a095-1aa0-e100-80009459e03a").Validate())
	assert.Error(t, api.Detail("").Validate())
}

func TestPricesRequestValidate(t *testing.T) {
	api := newTestAPI(t)

	t.Run("no ids", func(t *testing.T) {
		assert.Error(t, api.Prices().Validate())
	})

	t.Run("one id", func(t *testing.T) {
		assert.NoError(t, api.Prices().AddID("a").Validate())
	})

	t.Run("ten ids", func(t *testing.T) {
		req := api.Prices()
		for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
			req.AddID(id)
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("eleven ids", func(t *testing.T) {
		req := api.Prices()
		for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
			req.AddID(id)
		}
		assert.Error(t, req.Validate())
	})
}

func TestPricesRequestDeduplicatesIDs(t *testing.T) {
	api := newTestAPI(t)
	req := api.Prices().AddID("a").AddID("a").AddIDs("a", "b", "")

	assert.NoError(t, req.Validate())
	assert.Equal(t, "a,b", req.parameters()["ids"], "ids are added uniquely, empty ids are ignored")
}

func TestCorrectionRequestValidate(t *testing.T) {
	tests := []struct {
		name           string
		correctionType CorrectionType
		value          string
		wantErr        bool
	}{
		{name: "status open needs no value", correctionType: CorrectionWrongStatusOpen, value: "", wantErr: false},
		{name: "status closed needs no value", correctionType: CorrectionWrongStatusClosed, value: "", wantErr: false},
		{name: "name needs a value", correctionType: CorrectionWrongName, value: "", wantErr: true},
		{name: "name with value", correctionType: CorrectionWrongName, value: "Shell Berlin", wantErr: false},
		{name: "price without value", correctionType: CorrectionWrongPriceDiesel, value: "", wantErr: true},
		{name: "price with non-decimal value", correctionType: CorrectionWrongPriceDiesel, value: "149", wantErr: true},
		{name: "price with decimal value", correctionType: CorrectionWrongPriceDiesel, value: "1.49", wantErr: false},
		{name: "post code invalid", correctionType: CorrectionWrongPostCode, value: "123", wantErr: true},
		{name: "post code valid", correctionType: CorrectionWrongPostCode, value: "10247", wantErr: false},
		{name: "location invalid", correctionType: CorrectionWrongLocation, value: "52.52", wantErr: true},
		{name: "location valid", correctionType: CorrectionWrongLocation, value: "52.52, 13.40", wantErr: false},
	}

	api := newTestAPI(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := api.Correction("station-1", tt.correctionType)
			if tt.value != "" {
				req.SetCorrectionValue(tt.value)
			}

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCorrectionRequestRequiresStationID(t *testing.T) {
	api := newTestAPI(t)
	err := api.Correction("", CorrectionWrongStatusOpen).Validate()

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Station ID", validationErr.Field)
}

func TestCorrectionRequestParameters(t *testing.T) {
	api := newTestAPI(t)

	params := api.Correction("station-1", CorrectionWrongStatusOpen).parameters()
	assert.Equal(t, "station-1", params["id"])
	assert.Equal(t, "wrongStatusOpen", params["type"])
	_, ok := params["correction"]
	assert.False(t, ok, "status corrections carry no correction value")

	params = api.Correction("station-1", CorrectionWrongPriceE10).SetCorrectionValue("1.39").parameters()
	assert.Equal(t, "wrongPriceE10", params["type"])
	assert.Equal(t, "1.39", params["correction"])
}

func TestRequestMethods(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.MethodGet, api.List(0, 0).Method())
	assert.Equal(t, "list.php", api.List(0, 0).Endpoint())
	assert.Equal(t, http.MethodGet, api.Detail("a").Method())
	assert.Equal(t, "detail.php", api.Detail("a").Endpoint())
	assert.Equal(t, http.MethodGet, api.Prices().Method())
	assert.Equal(t, "prices.php", api.Prices().Endpoint())
	assert.Equal(t, http.MethodPost, api.Correction("a", CorrectionWrongName).Method())
	assert.Equal(t, "complaint.php", api.Correction("a", CorrectionWrongName).Endpoint())
}
