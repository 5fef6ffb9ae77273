package playerid

import (
	"testing"

	"l4d2stats/internal/errcode"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		keyword string
		kind    Kind
		steamID string
	}{
		{keyword: "STEAM_1:0:203395448", kind: KindSteamID, steamID: "STEAM_1:0:203395448"},
		{keyword: "STEAM_0:0:203395448", kind: KindSteamID, steamID: "STEAM_1:0:203395448"},
		{keyword: " steam_1:1:12345 ", kind: KindSteamID, steamID: "STEAM_1:1:12345"},
		{keyword: "[U:1:406790896]", kind: KindSteamID, steamID: "STEAM_1:0:203395448"},
		{keyword: "76561198367056624", kind: KindSteamID, steamID: "STEAM_1:0:203395448"},
		{keyword: "Ellis", kind: KindName},
		{keyword: "STEAM_1:0:coach", kind: KindName},
		{keyword: "12345", kind: KindName},
	}

	for _, test := range testCases {
		t.Run(test.keyword, func(t *testing.T) {
			id, err := Parse(test.keyword)
			require.NoError(t, err)
			require.Equal(t, test.kind, id.Kind)
			if test.kind == KindSteamID {
				require.Equal(t, test.steamID, id.SteamID)
				require.Equal(t, test.steamID, id.String())
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("   ")
	code, ok := errcode.CodeOf(err)
	require.True(t, ok)
	require.Equal(t, errcode.BadParams, code)
	require.Equal(t, errcode.KindCaller, errcode.KindOf(err))
}

func TestLegacy(t *testing.T) {
	require.Equal(t, "STEAM_1:0:203395448", Legacy(76561198367056624))
	require.Equal(t, "STEAM_1:1:0", Legacy(76561197960265729))
}

func TestBestMatch(t *testing.T) {
	candidates := []string{"Nick", "Ellis the Mechanic", "ellis", "Rochelle"}

	require.Equal(t, 2, BestMatch("Ellis", candidates))
	require.Equal(t, 0, BestMatch("nick", candidates))
	require.Equal(t, -1, BestMatch("Ellis", nil))
	require.Equal(t, 0, BestMatch("Coach", []string{"Zoey", "Zoey"}))
}
