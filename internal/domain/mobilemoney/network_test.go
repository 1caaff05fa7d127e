package mobilemoney

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNetworkProvider(t *testing.T) {
	cases := map[string]string{
		"MTN MoMo":              NetworkMTN,
		"  mtn   mobile money ": NetworkMTN,
		"Vodafone Cash":         NetworkVodafone,
		"Telecel":               NetworkVodafone,
		"02":                    NetworkVodafone,
		"AirtelTigo Money":      NetworkAirtelTigo,
		"AT":                    NetworkAirtelTigo,
		"3":                     NetworkAirtelTigo,
		"glo":                   DefaultNetwork,
		"":                      DefaultNetwork,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeNetworkProvider(in), "input %q", in)
	}
}

func TestNormalizer_WithDefaultNetwork(t *testing.T) {
	n := Normalizer{}.WithDefaultNetwork("Vodafone Cash")
	assert.Equal(t, NetworkVodafone, n.NetworkProvider("unknown"))
	assert.Equal(t, NetworkMTN, n.NetworkProvider("momo"))

	unchanged := Normalizer{}.WithDefaultNetwork("glo")
	assert.Equal(t, DefaultNetwork, unchanged.NetworkProvider("unknown"))
}

func TestIsKnownNetwork(t *testing.T) {
	assert.True(t, IsKnownNetwork("Airtel Tigo"))
	assert.False(t, IsKnownNetwork("glo"))
}
