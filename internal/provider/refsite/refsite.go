// Package refsite defines the reference-site contract: given pre-fetched
// HTML text, parse the line-score and box-score tables keyed by element
// id into neutral row maps. The HTML fetch itself, and any general-purpose
// HTML layout handling, are external boundaries — this package implements
// only the minimal table-by-id scan the contract requires.
package refsite

import (
	"strings"

	"golang.org/x/net/html"
)

// Table is one parsed HTML table: header names plus row maps keyed by
// header.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// Parser parses reference-site boxscore pages.
type Parser struct{}

// NewParser builds a Parser.
func NewParser() *Parser { return &Parser{} }

// ParseBoxscore scans htmlText for tables whose id is "line_score" or
// begins with "box-", returning each as a Table keyed by its id.
func (p *Parser) ParseBoxscore(htmlText string) (map[string]Table, error) {
	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	out := map[string]Table{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			if id, ok := attr(n, "id"); ok && (id == "line_score" || strings.HasPrefix(id, "box-")) {
				out[id] = parseTable(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out, nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func parseTable(tableNode *html.Node) Table {
	var headers []string
	var rows []map[string]string

	var headerRowSeen bool
	var walkRows func(*html.Node)
	walkRows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			cells := textCellsOf(n)
			if !headerRowSeen && hasThChild(n) {
				headers = cells
				headerRowSeen = true
			} else if headerRowSeen {
				row := make(map[string]string, len(headers))
				for i, h := range headers {
					if i < len(cells) {
						row[h] = cells[i]
					}
				}
				rows = append(rows, row)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkRows(c)
		}
	}
	walkRows(tableNode)
	return Table{Headers: headers, Rows: rows}
}

func hasThChild(tr *html.Node) bool {
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "th" {
			return true
		}
	}
	return false
}

func textCellsOf(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, textContent(c))
		}
	}
	return cells
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
