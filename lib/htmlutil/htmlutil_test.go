package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t testing.TB, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestJoinText(t *testing.T) {
	doc := parse(t, `<div id="kill">
		<h5>  Killed  </h5>
		<span>12,345</span>
		<!-- not text -->
		<script>var x = 1;</script>
		<p>infected <b>in</b>
		   total</p>
	</div>`)

	require.Equal(t, "Killed 12,345 infected in total", JoinText(doc.Find("#kill"), " "))
}

func TestTrimmedText(t *testing.T) {
	doc := parse(t, "<table><tr><td>\n\t 1h 20m \n</td></tr></table>")
	require.Equal(t, "1h 20m", TrimmedText(doc.Find("td")))
}

func TestStrippedStringsEmpty(t *testing.T) {
	doc := parse(t, `<div id="empty">   <span>  </span> </div>`)
	require.Empty(t, StrippedStrings(doc.Find("#empty").Nodes[0]))
	require.Equal(t, "", JoinText(doc.Find("#missing"), " "))
}
