package search

import "strings"

// PlatformRef pairs a filter key with its upstream catalog identity.
type PlatformRef struct {
	UpstreamID  int64
	DisplayName string
}

// platformTable is the closed set of supported platform filters. The upstream
// taxonomy is fixed; unknown keys are ignored rather than rejected.
var platformTable = map[string]PlatformRef{
	"nes":      {UpstreamID: 49, DisplayName: "NES"},
	"snes":     {UpstreamID: 83, DisplayName: "SNES"},
	"genesis":  {UpstreamID: 167, DisplayName: "Genesis"},
	"game-boy": {UpstreamID: 26, DisplayName: "Game Boy"},
}

// ResolvePlatform maps a client filter key to its upstream reference.
func ResolvePlatform(filter string) (PlatformRef, bool) {
	key := strings.ToLower(strings.TrimSpace(filter))
	if key == "" {
		return PlatformRef{}, false
	}
	ref, ok := platformTable[key]
	return ref, ok
}
