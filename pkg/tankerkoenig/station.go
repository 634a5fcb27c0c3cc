package tankerkoenig

// State is a German federal state code as used by the API.
type State string

const (
	StateBrandenburg           State = "deBB"
	StateBerlin                State = "deBE"
	StateBadenWuerttemberg     State = "deBW"
	StateBavaria               State = "deBY"
	StateBremen                State = "deHB"
	StateHesse                 State = "deHE"
	StateHamburg               State = "deHH"
	StateMecklenburgVorpommern State = "deMV"
	StateLowerSaxony           State = "deNI"
	StateNorthRhineWestphalia  State = "deNW"
	StateRhinelandPalatinate   State = "deRP"
	StateSchleswigHolstein     State = "deSH"
	StateSaarland              State = "deSL"
	StateSaxony                State = "deSN"
	StateSaxonyAnhalt          State = "deST"
	StateThuringia             State = "deTH"
)

var states = map[string]State{
	"deBB": StateBrandenburg,
	"deBE": StateBerlin,
	"deBW": StateBadenWuerttemberg,
	"deBY": StateBavaria,
	"deHB": StateBremen,
	"deHE": StateHesse,
	"deHH": StateHamburg,
	"deMV": StateMecklenburgVorpommern,
	"deNI": StateLowerSaxony,
	"deNW": StateNorthRhineWestphalia,
	"deRP": StateRhinelandPalatinate,
	"deSH": StateSchleswigHolstein,
	"deSL": StateSaarland,
	"deSN": StateSaxony,
	"deST": StateSaxonyAnhalt,
	"deTH": StateThuringia,
}

// parseState looks up a state code. Unknown or empty codes yield false,
// never an error; the upstream data is inconsistently populated.
func parseState(s string) (State, bool) {
	state, ok := states[s]
	return state, ok
}

// Location is the geographical location of a Station. Apart from the
// coordinates, the upstream data populates the address fields
// inconsistently, so all of them are optional.
type Location struct {
	Lat float64
	Lng float64
	// Street may contain the house number; some station owners put it
	// inside the street name.
	Street      string
	HouseNumber string
	PostCode    string
	City        string
	// State is empty most of the time.
	State State
	// Distance in km to the search coordinates. Only populated for
	// StationListResult, absent for detail lookups.
	Distance *float64
}

// OpeningTime describes one opening-hours entry of a Station. Text is
// authoritative; Days, Start and End are derived best-effort.
type OpeningTime struct {
	Text string
	// Days lists weekday numbers (1=Monday .. 7=Sunday) the entry applies
	// to. Nil if the text could not be parsed.
	Days []int
	// Start and End are times of day in HH:MM:SS format.
	Start string
	End   string
	// IncludesHolidays reports whether the entry covers public holidays.
	IncludesHolidays bool
}

// Station is a single fuel retail location. Stations are constructed
// exclusively by the response mapper and immutable afterwards. Two
// stations are considered the same iff their IDs match.
type Station struct {
	// ID is the opaque station identifier and the equality key.
	ID string
	// Name is not always populated.
	Name string
	// Brand is often empty for stations in private ownership.
	Brand string
	IsOpen bool
	// Price is only populated for list requests with a single fuel type.
	Price *float64
	// GasPrices is only populated for detail requests and list requests
	// with the ALL fuel filter.
	GasPrices *GasPrices
	Location  *Location
	// OpeningTimes is only populated for detail requests.
	OpeningTimes []OpeningTime
	// Overrides are arbitrary free-text strings describing temporary
	// changes to the opening times.
	Overrides []string
	// WholeDay reports whether the station is open around the clock.
	// Absent is equivalent to false.
	WholeDay *bool
}

// Equal reports whether both stations refer to the same retail location.
func (s Station) Equal(other Station) bool {
	return s.ID == other.ID
}
