package tankerkoenig

// GasType identifies one of the fuel types reported by the API.
type GasType string

const (
	GasTypeDiesel GasType = "diesel"
	GasTypeE5     GasType = "e5"
	GasTypeE10    GasType = "e10"
)

// gasTypes lists all known fuel types in the order they appear in API
// responses.
var gasTypes = []GasType{GasTypeDiesel, GasTypeE5, GasTypeE10}

// Status is the open/closed/not-found state of a station as reported by
// the data source.
type Status string

const (
	StatusOpen     Status = "open"
	StatusClosed   Status = "closed"
	StatusNotFound Status = "not found"
)

// parseStatus maps a status string to its Status value. Anything outside
// the three known statuses maps to StatusNotFound rather than failing.
func parseStatus(s string) Status {
	switch Status(s) {
	case StatusOpen, StatusClosed, StatusNotFound:
		return Status(s)
	default:
		return StatusNotFound
	}
}

// GasPrices holds the full price set of a station.
type GasPrices struct {
	// Prices maps each available fuel type to its price in EUR per liter.
	// Fuel types without a price are absent from the map.
	Prices map[GasType]float64
	// Status is the stations availability. StatusNotFound means the
	// supplied station ID was wrong or the station is temporarily
	// unavailable.
	Status Status
}

// Price returns the price for the given fuel type, if available.
func (g GasPrices) Price(gasType GasType) (float64, bool) {
	price, ok := g.Prices[gasType]
	return price, ok
}

// HasPrice reports whether a price for the given fuel type is available.
func (g GasPrices) HasPrice(gasType GasType) bool {
	_, ok := g.Prices[gasType]
	return ok
}

// HasPrices reports whether any price is available.
func (g GasPrices) HasPrices() bool {
	return len(g.Prices) > 0
}
