package filter_test

import (
	"testing"

	"github.com/rpggio/resiliency/internal/domain/filter"
	"github.com/stretchr/testify/require"
)

func TestEncode_DefaultIsEmpty(t *testing.T) {
	require.Equal(t, "", filter.Encode(filter.Default()))
}

func TestEncode(t *testing.T) {
	state := filter.Default().
		With(filter.DimInstallation, []string{"Fort A", "Base B"}).
		With(filter.DimStatus, []string{"Level 1"})
	state.Cost = filter.CostRange{Min: 10, Max: 60}

	require.Equal(t, "installation=Fort+A,Base+B&status=Level+1&cost=10,60", filter.Encode(state))
}

func TestRoundTrip(t *testing.T) {
	states := []filter.State{
		filter.Default(),
		filter.Default().With(filter.DimVendor, []string{"Acme & Sons", "Volt"}),
		filter.Default().With(filter.DimTechNeeds, []string{"Storage"}).With(filter.DimTechnologyType, []string{"Fuel Cell"}),
		func() filter.State { s := filter.Default(); s.Cost = filter.CostRange{Min: 0, Max: 0}; return s }(),
		func() filter.State {
			s := filter.Default().With(filter.DimInstallation, []string{"Fort A"})
			s.Cost = filter.CostRange{Min: 25, Max: 100}
			return s
		}(),
	}
	for _, state := range states {
		decoded := filter.Decode(filter.Encode(state))
		require.True(t, state.Equal(decoded), "state %+v decoded as %+v", state, decoded)
	}
}

func TestDecode_BrowserEncodedCommas(t *testing.T) {
	state := filter.Decode("installation=Fort%20A%2CBase%20B&cost=5%2C50")
	require.Equal(t, []string{"Fort A", "Base B"}, state.Installation)
	require.Equal(t, filter.CostRange{Min: 5, Max: 50}, state.Cost)
}

func TestDecode_CommaAlwaysSeparates(t *testing.T) {
	state := filter.Default().
		With(filter.DimTechNeeds, []string{"Storage, Thermal"}).
		With(filter.DimVendor, []string{" Acme"})
	decoded := filter.Decode(filter.Encode(state))

	// an escaped comma inside a value still splits it; edge spaces are trimmed
	require.Equal(t, []string{"Storage", "Thermal"}, decoded.TechNeeds)
	require.Equal(t, []string{"Acme"}, decoded.Vendor)
}

func TestDecode_DropsEmptyTokensAndUnknownParams(t *testing.T) {
	state := filter.Decode("?vendor=Acme,,Volt,&color=red&status=")
	require.Equal(t, []string{"Acme", "Volt"}, state.Vendor)
	require.Empty(t, state.Status)
	require.NotNil(t, state.Status)
}

func TestDecode_MalformedCostFallsBack(t *testing.T) {
	for _, raw := range []string{"cost=abc,10", "cost=10", "cost=1,2,3", "cost=80,20", "cost=-5,20", "cost=0,101", "cost="} {
		require.Equal(t, filter.DefaultCostRange, filter.Decode(raw).Cost, raw)
	}
}

func TestLink(t *testing.T) {
	state := filter.Default().With(filter.DimVendor, []string{"Acme"})
	require.Equal(t, "/dashboard?vendor=Acme", filter.Link("/dashboard", state))
	require.Equal(t, "/dashboard?vendor=Acme", filter.Link("/dashboard?installation=Old", state))

	// clearing filters returns the bare path
	require.Equal(t, "/dashboard", filter.Link("/dashboard?vendor=Acme", filter.Default()))
}
