package mobilemoney

import "strings"

const (
	NetworkMTN        = "mtn"
	NetworkVodafone   = "vodafone"
	NetworkAirtelTigo = "airteltigo"
)

// DefaultNetwork is used when a network selection is not recognized.
// Most payers are on MTN, so an unknown alias falls back to it instead of failing.
const DefaultNetwork = NetworkMTN

var networkAliases = map[string]string{
	"mtn":              NetworkMTN,
	"mtn momo":         NetworkMTN,
	"mtn mobile money": NetworkMTN,
	"momo":             NetworkMTN,
	"1":                NetworkMTN,
	"01":               NetworkMTN,

	"vodafone":      NetworkVodafone,
	"vodafone cash": NetworkVodafone,
	"voda":          NetworkVodafone,
	"telecel":       NetworkVodafone,
	"telecel cash":  NetworkVodafone,
	"2":             NetworkVodafone,
	"02":            NetworkVodafone,

	"airteltigo":       NetworkAirtelTigo,
	"airtel tigo":      NetworkAirtelTigo,
	"airtel-tigo":      NetworkAirtelTigo,
	"airteltigo money": NetworkAirtelTigo,
	"at money":         NetworkAirtelTigo,
	"at":               NetworkAirtelTigo,
	"airtel":           NetworkAirtelTigo,
	"tigo":             NetworkAirtelTigo,
	"3":                NetworkAirtelTigo,
	"03":               NetworkAirtelTigo,
}

// NormalizeNetworkProvider maps any known alias to its canonical lowercase id.
// Unrecognized input returns DefaultNetwork.
func NormalizeNetworkProvider(input string) string {
	return Normalizer{}.NetworkProvider(input)
}

// WithDefaultNetwork returns a copy of n that falls back to the given network for
// unrecognized selections. An unknown fallback is ignored.
func (n Normalizer) WithDefaultNetwork(network string) Normalizer {
	if id, ok := networkAliases[aliasKey(network)]; ok {
		n.DefaultNetwork = id
	}
	return n
}

// NetworkProvider maps any known alias to its canonical id, falling back to the
// normalizer's default network.
func (n Normalizer) NetworkProvider(input string) string {
	if id, ok := networkAliases[aliasKey(input)]; ok {
		return id
	}
	if n.DefaultNetwork != "" {
		return n.DefaultNetwork
	}
	return DefaultNetwork
}

// IsKnownNetwork reports whether input is a recognized alias.
func IsKnownNetwork(input string) bool {
	_, ok := networkAliases[aliasKey(input)]
	return ok
}

func aliasKey(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), " ")
}
