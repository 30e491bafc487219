package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names.
const (
	ParamInstallation = "installation"
	ParamTechnology   = "technology"
	ParamVendor       = "vendor"
	ParamStatus       = "status"
	ParamTechNeeds    = "techNeeds"
	ParamCost         = "cost"
)

var dimensionParams = map[Dimension]string{
	DimInstallation:   ParamInstallation,
	DimTechnologyType: ParamTechnology,
	DimVendor:         ParamVendor,
	DimStatus:         ParamStatus,
	DimTechNeeds:      ParamTechNeeds,
}

// Encode serializes the non-default dimensions of a state into a query
// string. Values are escaped individually and joined by literal commas.
// Values that themselves contain commas do not survive a round trip.
func Encode(state State) string {
	var parts []string
	for _, dim := range Dimensions {
		values := dedupe(state.Values(dim))
		if len(values) == 0 {
			continue
		}
		escaped := make([]string, 0, len(values))
		for _, v := range values {
			escaped = append(escaped, url.QueryEscape(v))
		}
		parts = append(parts, dimensionParams[dim]+"="+strings.Join(escaped, ","))
	}
	if !state.Cost.IsDefault() && state.Cost.Valid() {
		parts = append(parts, ParamCost+"="+strconv.Itoa(state.Cost.Min)+","+strconv.Itoa(state.Cost.Max))
	}
	return strings.Join(parts, "&")
}

// Decode parses a raw query string. Unknown parameters are ignored, empty
// tokens dropped, and a malformed cost falls back to the default range.
// Values are not checked against the catalog.
func Decode(rawQuery string) State {
	state := Default()
	for _, pair := range strings.Split(strings.TrimPrefix(rawQuery, "?"), "&") {
		if pair == "" {
			continue
		}
		key, raw, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		if name == ParamCost {
			state.Cost = decodeCost(raw)
			continue
		}
		for dim, param := range dimensionParams {
			if param == name {
				state = state.With(dim, append(state.Values(dim), splitValues(raw)...))
			}
		}
	}
	return state
}

// Link builds a shareable URL for the state. A default state yields the
// bare base path with any existing query removed.
func Link(base string, state State) string {
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	q := Encode(state)
	if q == "" {
		return base
	}
	return base + "?" + q
}

func splitValues(raw string) []string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	var out []string
	for _, token := range strings.Split(decoded, ",") {
		v := strings.TrimSpace(token)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func decodeCost(raw string) CostRange {
	v, err := url.QueryUnescape(raw)
	if err != nil {
		return DefaultCostRange
	}
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return DefaultCostRange
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return DefaultCostRange
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return DefaultCostRange
	}
	r := CostRange{Min: lo, Max: hi}
	if !r.Valid() {
		return DefaultCostRange
	}
	return r
}
