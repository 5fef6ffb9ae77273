package anne

import (
	"context"
	"net/http"
	"testing"

	"l4d2stats/internal/components/telemetry"
	"l4d2stats/internal/errcode"
	"l4d2stats/lib/testutil"

	"github.com/stretchr/testify/require"
)

func setupClient(t testing.TB) (*Client, *testutil.Upstream, *telemetry.Recorder) {
	site := testutil.NewUpstream(t)
	rec := &telemetry.Recorder{}

	client, err := NewClient(Options{
		PlayerURL: site.URL("/l4d_stats/ranking/player.php"),
		SearchURL: site.URL("/l4d_stats/ranking/search.php"),
		RankURL:   site.URL("/l4d_stats/ranking/index.php"),
	}, rec)
	if err != nil {
		t.Fatal(err)
	}
	return client, site, rec
}

func TestSearchPlayers(t *testing.T) {
	client, site, _ := setupClient(t)
	site.Handle("/l4d_stats/ranking/search.php", http.StatusOK, fixture(t, "search_8.html"))

	results, err := client.SearchPlayers(context.Background(), " Ellis ")
	require.NoError(t, err)
	require.Len(t, results, 5)

	requests := site.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, http.MethodPost, requests[0].Method)
	require.Equal(t, "Ellis", requests[0].Form.Get("search"))
}

func TestSearchPlayersEmptyKeyword(t *testing.T) {
	client, site, _ := setupClient(t)

	_, err := client.SearchPlayers(context.Background(), "  ")
	code, _ := errcode.CodeOf(err)
	require.Equal(t, errcode.BadParams, code)
	require.Empty(t, site.Requests())
}

func TestPlayerDetailBySteamID(t *testing.T) {
	client, site, _ := setupClient(t)
	site.Handle("/l4d_stats/ranking/player.php", http.StatusOK, fixture(t, "player.html"))

	record, err := client.PlayerDetail(context.Background(), "[U:1:406790896]")
	require.NoError(t, err)
	require.Equal(t, "Ellis", record.Info.Name)

	requests := site.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, http.MethodGet, requests[0].Method)
	require.Equal(t, "STEAM_1:0:203395448", requests[0].Query.Get("steamid"))
}

func TestPlayerDetailByName(t *testing.T) {
	client, site, _ := setupClient(t)
	site.Handle("/l4d_stats/ranking/search.php", http.StatusOK, fixture(t, "search_8.html"))
	site.Handle("/l4d_stats/ranking/player.php", http.StatusOK, fixture(t, "player.html"))

	_, err := client.PlayerDetail(context.Background(), "ellis2")
	require.NoError(t, err)

	requests := site.Requests()
	require.Len(t, requests, 2)
	require.Equal(t, "/l4d_stats/ranking/search.php", requests[0].Path)
	require.Equal(t, "STEAM_1:0:1188420", requests[1].Query.Get("steamid"))
}

func TestPlayerDetailErrors(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   []byte
		code   errcode.Code
		kind   errcode.Kind
		level  telemetry.ReportLevel
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			body:   []byte("<html>gone</html>"),
			code:   errcode.NotFound,
			kind:   errcode.KindTransport,
			level:  telemetry.LevelWarning,
		},
		{
			name:   "broken page",
			status: http.StatusOK,
			body:   fixture(t, "player_no_container.html"),
			code:   errcode.ServerBroken,
			kind:   errcode.KindStructuralParse,
			level:  telemetry.LevelBroken,
		},
		{
			name:   "missing tables",
			status: http.StatusOK,
			body:   fixture(t, "player_four_tables.html"),
			code:   errcode.EmptyResult,
			kind:   errcode.KindStructuralParse,
			level:  telemetry.LevelBroken,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			client, site, rec := setupClient(t)
			site.Handle("/l4d_stats/ranking/player.php", test.status, test.body)

			record, err := client.PlayerDetail(context.Background(), "STEAM_1:0:203395448")
			require.Equal(t, PlayerRecord{}, record)
			code, ok := errcode.CodeOf(err)
			require.True(t, ok)
			require.Equal(t, test.code, code)
			require.Equal(t, test.kind, errcode.KindOf(err))
			require.True(t, rec.Has(test.level, report_client_player_detail))
		})
	}
}

func TestPlayerDetailNameWithoutResults(t *testing.T) {
	client, site, _ := setupClient(t)
	site.Handle("/l4d_stats/ranking/search.php", http.StatusOK, fixture(t, "search_empty.html"))

	_, err := client.PlayerDetail(context.Background(), "Francis")
	code, _ := errcode.CodeOf(err)
	require.Equal(t, errcode.EmptyResult, code)
	require.Len(t, site.Requests(), 1)
}

func TestTop(t *testing.T) {
	client, site, _ := setupClient(t)
	site.Handle("/l4d_stats/ranking/index.php", http.StatusOK, fixture(t, "rank.html"))

	results, err := client.Top(context.Background())
	require.NoError(t, err)
	require.Len(t, results, DefaultTopLimit)

	requests := site.Requests()
	require.Equal(t, "coop", requests[0].Query.Get("type"))
}
