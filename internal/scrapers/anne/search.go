package anne

import (
	"bytes"
	"fmt"
	"strings"

	"l4d2stats/internal/errcode"
	"l4d2stats/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// SearchLimit is the number of candidates a search returns at most.
const SearchLimit = 5

const steamIDMarker = "steamid="

// ParseSearchPage extracts at most SearchLimit candidates from a search
// results page in page order.
func ParseSearchPage(markup []byte) ([]SearchResult, error) {
	return parseResultTable(markup, "search", SearchLimit)
}

// ParseRankPage extracts at most limit rows of the ranking page. A limit of
// zero or less keeps every row.
func ParseRankPage(markup []byte, limit int) ([]SearchResult, error) {
	return parseResultTable(markup, "rank", limit)
}

func parseResultTable(markup []byte, page string, limit int) ([]SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, errcode.Parse(errcode.EmptyResult, page, err)
	}

	tbody := doc.Find("tbody").First()
	if tbody.Length() == 0 {
		return nil, errcode.Parse(errcode.EmptyResult, page+".tbody", nil)
	}
	rows := tbody.Find("tr")
	if rows.Length() == 0 {
		return nil, errcode.Upstream(errcode.EmptyResult)
	}

	n := rows.Length()
	if limit > 0 && n > limit {
		n = limit
	}
	results := make([]SearchResult, 0, n)
	for i := 0; i < n; i++ {
		result, err := parseResultRow(rows.Eq(i))
		if err != nil {
			return nil, errcode.Parse(errcode.EmptyResult, fmt.Sprintf("%s.row[%d]", page, i), err)
		}
		results = append(results, result)
	}
	return results, nil
}

func parseResultRow(row *goquery.Selection) (SearchResult, error) {
	onclick, ok := row.Attr("onclick")
	if !ok {
		return SearchResult{}, fmt.Errorf("missing onclick")
	}
	steamID, err := steamIDFromOnclick(onclick)
	if err != nil {
		return SearchResult{}, err
	}

	cells := row.Find("td")
	if cells.Length() < 5 {
		return SearchResult{}, fmt.Errorf("expected 5 cells, got %d", cells.Length())
	}
	return SearchResult{
		Rank:     htmlutil.TrimmedText(cells.Eq(0)),
		Name:     htmlutil.TrimmedText(cells.Eq(1)),
		Score:    htmlutil.TrimmedText(cells.Eq(2)),
		PlayTime: htmlutil.TrimmedText(cells.Eq(3)),
		LastSeen: htmlutil.TrimmedText(cells.Eq(4)),
		SteamID:  steamID,
	}, nil
}

// steamIDFromOnclick reads the id out of handlers like
// window.location='player.php?steamid=STEAM_1:0:1234'
func steamIDFromOnclick(onclick string) (string, error) {
	idx := strings.LastIndex(onclick, steamIDMarker)
	if idx < 0 {
		return "", fmt.Errorf("no %q in onclick %q", steamIDMarker, onclick)
	}
	id := strings.TrimRight(onclick[idx+len(steamIDMarker):], "'")
	if id == "" {
		return "", fmt.Errorf("empty steam id in onclick %q", onclick)
	}
	return id, nil
}
