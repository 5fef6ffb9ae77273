package anne

import (
	"bytes"
	"fmt"

	"l4d2stats/internal/errcode"
	"l4d2stats/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Multi-class selectors match the class attribute as a whole string. Decks
// only need to carry the card-deck class.
const (
	containerSelector = `div[class="content text-center text-md-left"][style="background-color: #f2f2f2;"]`
	killSelector      = `div[class="card-body worldmap d-flex flex-column justify-content-center text-center"]`
	wrapperSelector   = `div[class="container text-left"]`
	deckSelector      = `div.card-deck`
	cardSelector      = `div[class="card rounded-0"]`
)

// ParsePlayerPage extracts a PlayerRecord from a player page. It fails with
// errcode.ServerBroken when the stats container is missing and with
// errcode.EmptyResult for any other missing region, table, row or cell.
func ParsePlayerPage(markup []byte) (PlayerRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return PlayerRecord{}, errcode.Parse(errcode.EmptyResult, "document", err)
	}

	container := doc.Find(containerSelector).First()
	if container.Length() == 0 {
		return PlayerRecord{}, errcode.Parse(errcode.ServerBroken, "container", nil)
	}
	kill := container.Find(killSelector).First()
	if kill.Length() == 0 {
		return PlayerRecord{}, errcode.Parse(errcode.EmptyResult, "kill_summary", nil)
	}

	record := PlayerRecord{
		KillSummary: htmlutil.JoinText(kill, " "),
	}

	tables, err := statsTables(doc)
	if err != nil {
		return PlayerRecord{}, err
	}
	for i, schema := range playerTables {
		err := fillTable(&record, schema, tables[i])
		if err != nil {
			return PlayerRecord{}, err
		}
	}

	return record, nil
}

// statsTables collects the cards of every deck under the second wrapper, then
// the last two cards under the wrapper, which hold the survivor and infected
// tables outside of any deck.
func statsTables(doc *goquery.Document) ([]*goquery.Selection, error) {
	wrapper := doc.Find(wrapperSelector).Eq(1)
	if wrapper.Length() == 0 {
		return nil, errcode.Parse(errcode.EmptyResult, "tables", fmt.Errorf("stats wrapper not found"))
	}

	var tables []*goquery.Selection
	wrapper.Find(deckSelector).Each(func(_ int, deck *goquery.Selection) {
		deck.Find(cardSelector).Each(func(_ int, card *goquery.Selection) {
			tables = append(tables, card)
		})
	})

	cards := wrapper.Find(cardSelector)
	if cards.Length() < 2 {
		return nil, errcode.Parse(
			errcode.EmptyResult,
			"tables",
			fmt.Errorf("expected at least 2 cards, got %d", cards.Length()),
		)
	}
	tables = append(tables, cards.Eq(cards.Length()-2), cards.Eq(cards.Length()-1))

	if len(tables) < len(playerTables) {
		return nil, errcode.Parse(
			errcode.EmptyResult,
			"tables",
			fmt.Errorf("expected %d tables, got %d", len(playerTables), len(tables)),
		)
	}
	return tables[:len(playerTables)], nil
}

func fillTable(record *PlayerRecord, schema table, card *goquery.Selection) error {
	rows := card.Find("tr")
	for i, f := range schema.fields {
		stage := schema.name + "." + f.name
		if i >= rows.Length() {
			return errcode.Parse(
				errcode.EmptyResult,
				stage,
				fmt.Errorf("row %d out of range, table has %d rows", i, rows.Length()),
			)
		}
		cells := rows.Eq(i).Find("td")
		if cells.Length() < 2 {
			return errcode.Parse(
				errcode.EmptyResult,
				stage,
				fmt.Errorf("row %d has %d cells", i, cells.Length()),
			)
		}
		f.set(record, htmlutil.TrimmedText(cells.Eq(1)))
	}
	return nil
}
