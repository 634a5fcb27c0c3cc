package tankerkoenig

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The mapper converts raw JSON response bodies into the typed result
// shapes. Every field mapping is enumerated explicitly per shape; the
// heterogeneous payloads (field-presence-dependent parsing, lenient enum
// coercion) rule out plain struct tags.

func decodeStationList(body []byte) (*StationListResult, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	result := &StationListResult{ResultInfo: decodeResultInfo(obj)}
	if raw, ok := obj["stations"].([]any); ok {
		result.Stations = make([]Station, 0, len(raw))
		for _, entry := range raw {
			if stationObj, ok := entry.(map[string]any); ok {
				result.Stations = append(result.Stations, decodeStation(stationObj))
			}
		}
	}
	return result, nil
}

func decodeStationDetail(body []byte) (*StationDetailResult, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	result := &StationDetailResult{ResultInfo: decodeResultInfo(obj)}
	if stationObj, ok := obj["station"].(map[string]any); ok {
		station := decodeStation(stationObj)
		result.Station = &station
	}
	return result, nil
}

func decodePrices(body []byte) (*PricesResult, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	result := &PricesResult{ResultInfo: decodeResultInfo(obj)}
	if raw, ok := obj["prices"].(map[string]any); ok {
		result.Prices = make(map[string]GasPrices, len(raw))
		for stationID, entry := range raw {
			if pricesObj, ok := entry.(map[string]any); ok {
				result.Prices[stationID] = decodeGasPrices(pricesObj)
			}
		}
	}
	return result, nil
}

func decodeCorrection(body []byte) (*CorrectionResult, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	return &CorrectionResult{ResultInfo: decodeResultInfo(obj)}, nil
}

func decodeObject(body []byte) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("parsing response JSON: %w", err)
	}
	return obj, nil
}

func decodeResultInfo(obj map[string]any) ResultInfo {
	return ResultInfo{
		OK:      getBool(obj, "ok"),
		Status:  getString(obj, "status"),
		Message: getString(obj, "message"),
		License: getString(obj, "license"),
		Data:    getString(obj, "data"),
	}
}

// decodeGasPrices extracts a price per known fuel type. Values that fail
// numeric coercion are silently dropped rather than failing the whole
// parse; an unknown status maps to not found.
func decodeGasPrices(obj map[string]any) GasPrices {
	prices := make(map[GasType]float64)
	for _, gasType := range gasTypes {
		value, ok := obj[string(gasType)]
		if !ok || value == nil {
			continue
		}
		if price, ok := toFloat(value); ok {
			prices[gasType] = price
		}
	}

	status := StatusNotFound
	if s, ok := obj["status"].(string); ok {
		status = parseStatus(s)
	}

	return GasPrices{Prices: prices, Status: status}
}

func decodeStation(obj map[string]any) Station {
	station := Station{
		ID:     getString(obj, "id"),
		Name:   getString(obj, "name"),
		Brand:  getString(obj, "brand"),
		IsOpen: getBool(obj, "isOpen"),
		Price:  getFloat(obj, "price"),
	}

	if wholeDay, ok := obj["wholeDay"].(bool); ok {
		station.WholeDay = &wholeDay
	}

	if hasAnyKey(obj, "lat", "lng", "street", "postCode", "place") {
		location := decodeLocation(obj)
		station.Location = &location
	}

	if hasAnyKey(obj, "e5", "e10", "diesel", "status") {
		gasPrices := decodeGasPrices(obj)
		if gasPrices.HasPrices() {
			station.GasPrices = &gasPrices
		}
	}

	if raw, ok := obj["openingTimes"].([]any); ok && len(raw) > 0 {
		station.OpeningTimes = make([]OpeningTime, 0, len(raw))
		for _, entry := range raw {
			if timeObj, ok := entry.(map[string]any); ok {
				station.OpeningTimes = append(station.OpeningTimes, decodeOpeningTime(timeObj))
			}
		}
	}

	if raw, ok := obj["overrides"].([]any); ok && len(raw) > 0 {
		station.Overrides = make([]string, 0, len(raw))
		for _, entry := range raw {
			if s, ok := entry.(string); ok {
				station.Overrides = append(station.Overrides, s)
			}
		}
	}

	return station
}

// decodeLocation never fails: coordinates default to 0 and an
// unrecognized state code yields no state.
func decodeLocation(obj map[string]any) Location {
	location := Location{
		Street:      getString(obj, "street"),
		HouseNumber: getString(obj, "houseNumber"),
		PostCode:    getStringOrNumber(obj, "postCode"),
		City:        getString(obj, "place"),
		Distance:    getFloat(obj, "dist"),
	}
	if lat, ok := toFloat(obj["lat"]); ok {
		location.Lat = lat
	}
	if lng, ok := toFloat(obj["lng"]); ok {
		location.Lng = lng
	}
	if state, ok := parseState(getString(obj, "state")); ok {
		location.State = state
	}
	return location
}

func decodeOpeningTime(obj map[string]any) OpeningTime {
	openingTime := OpeningTime{
		Text:  getString(obj, "text"),
		Start: getString(obj, "start"),
		End:   getString(obj, "end"),
	}
	if openingTime.Text != "" {
		openingTime.Days, openingTime.IncludesHolidays = deriveDays(openingTime.Text)
	}
	return openingTime
}

// dayNumbers maps German day names and their abbreviations to weekday
// numbers, with 8 standing for public holidays.
var dayNumbers = map[string]int{
	"Montag": 1, "Mo": 1,
	"Dienstag": 2, "Di": 2,
	"Mittwoch": 3, "Mi": 3,
	"Donnerstag": 4, "Do": 4,
	"Freitag": 5, "Fr": 5,
	"Samstag": 6, "Sa": 6,
	"Sonntag": 7, "So": 7,
	"Feiertag": 8,
}

// deriveDays derives the weekday list from an opening-times text.
// Derivation is best-effort: unparseable text yields nil days, never an
// error. If a derivation yields day 8, the holiday flag is set and 8 is
// removed from the list.
func deriveDays(text string) (days []int, includesHolidays bool) {
	switch text {
	case "täglich ausser Feiertag":
		return []int{1, 2, 3, 4, 5, 6, 7}, false
	case "täglich":
		return []int{1, 2, 3, 4, 5, 6, 7}, true
	case "täglich ausser Sonn- und Feiertagen":
		return []int{1, 2, 3, 4, 5, 6}, false
	}

	days, ok := parseDayNames(text)
	if !ok {
		return nil, false
	}

	withoutHolidays := days[:0]
	for _, day := range days {
		if day == 8 {
			includesHolidays = true
			continue
		}
		withoutHolidays = append(withoutHolidays, day)
	}
	return withoutHolidays, includesHolidays
}

// parseDayNames parses a day range ("Mo-Fr"), a comma-separated day list
// ("Mo,Mi,Fr") or a single day name against the fixed German day table.
// Any unrecognized name aborts the derivation.
func parseDayNames(text string) ([]int, bool) {
	if strings.Contains(text, "-") {
		parts := strings.SplitN(text, "-", 2)
		from, fromOK := dayNumbers[strings.TrimSpace(parts[0])]
		to, toOK := dayNumbers[strings.TrimSpace(parts[1])]
		if !fromOK || !toOK {
			return nil, false
		}
		days := make([]int, 0, to-from+1)
		for day := from; day <= to; day++ {
			days = append(days, day)
		}
		return days, true
	}

	if strings.Contains(text, ",") {
		parts := strings.Split(text, ",")
		days := make([]int, 0, len(parts))
		for _, part := range parts {
			day, ok := dayNumbers[strings.TrimSpace(part)]
			if !ok {
				return nil, false
			}
			days = append(days, day)
		}
		return days, true
	}

	day, ok := dayNumbers[strings.TrimSpace(text)]
	if !ok {
		return nil, false
	}
	return []int{day}, true
}

func hasAnyKey(obj map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}

func getString(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}

// getStringOrNumber reads a field the API serves inconsistently as either
// a string or a number, e.g. postCode.
func getStringOrNumber(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func getBool(obj map[string]any, key string) bool {
	if b, ok := obj[key].(bool); ok {
		return b
	}
	return false
}

func getFloat(obj map[string]any, key string) *float64 {
	if f, ok := toFloat(obj[key]); ok {
		return &f
	}
	return nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
