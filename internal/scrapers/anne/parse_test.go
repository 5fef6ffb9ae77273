package anne

import (
	"bytes"
	"embed"
	"reflect"
	"strings"
	"testing"

	"l4d2stats/internal/errcode"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/*.html
var testdata embed.FS

func fixture(t testing.TB, name string) []byte {
	content, err := testdata.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	return content
}

// requireFilled fails when any string field of a sub-record is empty.
func requireFilled(t testing.TB, name string, record any, fields int) {
	value := reflect.ValueOf(record)
	require.Equal(t, fields, value.NumField(), "%s field count", name)
	for i := 0; i < value.NumField(); i++ {
		require.NotEmpty(t, value.Field(i).String(), "%s.%s", name, value.Type().Field(i).Name)
	}
}

func TestParsePlayerPage(t *testing.T) {
	record, err := ParsePlayerPage(fixture(t, "player.html"))
	require.NoError(t, err)

	requireFilled(t, "info", record.Info, 5)
	requireFilled(t, "detail", record.Detail, 8)
	requireFilled(t, "errors", record.Errors, 6)
	requireFilled(t, "infected_averages", record.InfectedAverages, 7)
	requireFilled(t, "survivor", record.Survivor, 18)
	requireFilled(t, "infected", record.Infected, 7)

	require.Equal(t, "Ellis Killed 486,221 infected and 902 tanks", record.KillSummary)

	require.Equal(t, Info{
		Name:     "Ellis",
		Avatar:   "https://avatars.steamstatic.com/ellis_full.jpg",
		SteamID:  "STEAM_1:0:203395448",
		PlayTime: "12 days 3 hours 41 min",
		LastSeen: "2024-06-01 21:33",
	}, record.Info)
	require.Equal(t, "128", record.Detail.Rank)
	require.Equal(t, "3,412", record.Detail.MapsPlayed)
	require.Equal(t, "2,311", record.Errors.FriendlyFire)
	require.Equal(t, "41", record.Errors.WitchesStartled)
	require.Equal(t, "4.1", record.InfectedAverages.Smoker)
	require.Equal(t, "0.6", record.InfectedAverages.Tank)
	require.Equal(t, "2,980", record.Survivor.MapsCleared)
	require.Equal(t, "77", record.Survivor.WitchesCrowned)
	require.Equal(t, "1,334", record.Infected.SurvivorsIncapped)
	require.Equal(t, "61", record.Infected.MultiCharges)
}

func TestParsePlayerPageIdempotent(t *testing.T) {
	markup := fixture(t, "player.html")

	first, err := ParsePlayerPage(markup)
	require.NoError(t, err)
	second, err := ParsePlayerPage(markup)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("records differ (-first +second):\n%s", diff)
	}
}

func TestParsePlayerPageDeckWithExtraClass(t *testing.T) {
	markup := fixture(t, "player.html")
	expected, err := ParsePlayerPage(markup)
	require.NoError(t, err)

	spaced := bytes.ReplaceAll(markup, []byte(`class="card-deck"`), []byte(`class="card-deck mb-3"`))
	require.NotEqual(t, markup, spaced)

	record, err := ParsePlayerPage(spaced)
	require.NoError(t, err)
	if diff := cmp.Diff(expected, record); diff != "" {
		t.Fatalf("records differ (-plain +extra class):\n%s", diff)
	}
}

func TestParsePlayerPageErrors(t *testing.T) {
	testCases := []struct {
		fixture string
		code    errcode.Code
		kind    errcode.Kind
		stage   string
	}{
		{fixture: "player_no_container.html", code: errcode.ServerBroken, kind: errcode.KindStructuralParse, stage: "container"},
		{fixture: "player_no_kill.html", code: errcode.EmptyResult, kind: errcode.KindStructuralParse, stage: "kill_summary"},
		{fixture: "player_four_tables.html", code: errcode.EmptyResult, kind: errcode.KindStructuralParse, stage: "tables"},
		{fixture: "player_short_row.html", code: errcode.EmptyResult, kind: errcode.KindStructuralParse, stage: "survivor.witches_crowned"},
		{fixture: "search_8.html", code: errcode.ServerBroken, kind: errcode.KindStructuralParse, stage: "container"},
	}

	for _, test := range testCases {
		t.Run(test.fixture, func(t *testing.T) {
			record, err := ParsePlayerPage(fixture(t, test.fixture))
			require.Error(t, err)
			require.Equal(t, PlayerRecord{}, record)

			var target *errcode.Error
			require.ErrorAs(t, err, &target)
			require.Equal(t, test.code, target.Code)
			require.Equal(t, test.kind, target.Kind)
			require.Equal(t, test.stage, target.Stage)
		})
	}
}

func TestParsePlayerPageGarbage(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("not html at all"),
		[]byte(`<div class="content text-center text-md-left" style="background-color: #f2f2f2;">`),
		[]byte(strings.Repeat(`<div class="container text-left">`, 3)),
	}
	for _, input := range inputs {
		_, err := ParsePlayerPage(input)
		require.Error(t, err)
		_, ok := errcode.CodeOf(err)
		require.True(t, ok)
	}
}

func TestParseSearchPage(t *testing.T) {
	results, err := ParseSearchPage(fixture(t, "search_8.html"))
	require.NoError(t, err)
	require.Len(t, results, SearchLimit)

	for i, result := range results {
		requireFilled(t, "search", result, 6)
		require.Equal(t, strings.TrimSpace(result.Rank), result.Rank)
		require.Equal(t, string(rune('1'+i)), result.Rank)
	}
	require.Equal(t, SearchResult{
		Rank:     "1",
		Name:     "Ellis",
		Score:    "1,204,553",
		PlayTime: "12 days 3 hours",
		LastSeen: "2024-06-01 21:33",
		SteamID:  "STEAM_1:0:203395448",
	}, results[0])
	require.Equal(t, "Keith's Friend Ellis", results[4].Name)
	require.Equal(t, "STEAM_1:0:9001", results[4].SteamID)
}

func TestParseSearchPageEmpty(t *testing.T) {
	for _, name := range []string{"search_empty.html", "search_no_table.html"} {
		t.Run(name, func(t *testing.T) {
			results, err := ParseSearchPage(fixture(t, name))
			require.Nil(t, results)
			code, ok := errcode.CodeOf(err)
			require.True(t, ok)
			require.Equal(t, errcode.EmptyResult, code)
		})
	}
}

func TestParseSearchPageMalformedRow(t *testing.T) {
	markup := `<table><tbody>
		<tr onclick="window.location='player.php?steamid=STEAM_1:0:1'"><td>1</td><td>a</td><td>1</td><td>1h</td><td>now</td></tr>
		<tr><td>2</td><td>b</td><td>1</td><td>1h</td><td>now</td></tr>
	</tbody></table>`

	_, err := ParseSearchPage([]byte(markup))
	var target *errcode.Error
	require.ErrorAs(t, err, &target)
	require.Equal(t, errcode.KindStructuralParse, target.Kind)
	require.Equal(t, "search.row[1]", target.Stage)

	markup = `<table><tbody>
		<tr onclick="window.location='player.php?steamid=STEAM_1:0:1'"><td>1</td><td>a</td></tr>
	</tbody></table>`
	_, err = ParseSearchPage([]byte(markup))
	require.ErrorAs(t, err, &target)
	require.Equal(t, "search.row[0]", target.Stage)
}

func TestSteamIDFromOnclick(t *testing.T) {
	testCases := []struct {
		onclick  string
		expected string
		fails    bool
	}{
		{onclick: "window.location='player.php?steamid=STEAM_1:0:42'", expected: "STEAM_1:0:42"},
		{onclick: "go('steamid=x&steamid=STEAM_1:1:7''", expected: "STEAM_1:1:7"},
		{onclick: "window.location='player.php?steamid='", fails: true},
		{onclick: "window.location='player.php'", fails: true},
	}
	for _, test := range testCases {
		id, err := steamIDFromOnclick(test.onclick)
		if test.fails {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, test.expected, id)
	}
}

func TestParseRankPage(t *testing.T) {
	markup := fixture(t, "rank.html")

	results, err := ParseRankPage(markup, 10)
	require.NoError(t, err)
	require.Len(t, results, 10)
	require.Equal(t, "Survivor 1", results[0].Name)
	require.Equal(t, "STEAM_1:1:1009", results[9].SteamID)

	all, err := ParseRankPage(markup, 0)
	require.NoError(t, err)
	require.Len(t, all, 12)
}

func TestSummary(t *testing.T) {
	record, err := ParsePlayerPage(fixture(t, "player.html"))
	require.NoError(t, err)

	summary := Summary(record)
	require.True(t, strings.HasPrefix(summary, "-- player info --\n\nEllis Killed 486,221 infected and 902 tanks\n"))
	require.Contains(t, summary, "Name: Ellis\n")
	require.Contains(t, summary, "Rank: 128\n")
	require.Contains(t, summary, "Headshot rate: 24.69 %\n")
	require.Contains(t, summary, "Witches startled: 41\n")
	require.NotContains(t, summary, "Tanks killed")
}
