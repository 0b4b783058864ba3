package docgen

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// State is what reconciliation recovers from a saved document: the
// effective column set, the edited rows, the free text regions and
// the extra fields. It is enough to reopen the options screen or to
// recalculate totals, not to replay the original render options.
type State struct {
	Columns       ColumnConfig      `json:"columns"`
	Rows          []Row             `json:"rows"`
	CustomContent map[string]string `json:"custom_content"`
	CustomFields  []CustomField     `json:"custom_fields"`
}

// Reconcile parses saved document markup back into State. Header
// text that exactly matches a default column name recovers that
// column's key; anything else becomes a custom column. Every
// reconstructed column is checked because an unchecked column was
// never rendered.
func Reconcile(doc DocType, savedHTML, costLabel string) (*State, error) {
	sel, err := goquery.NewDocumentFromReader(strings.NewReader(savedHTML))
	if err != nil {
		return nil, fmt.Errorf("parse saved document: %w", err)
	}

	defaults := DefaultColumns(doc, costLabel)
	byName := make(map[string]Column, len(defaults))
	for _, col := range defaults {
		byName[col.Name] = col
	}

	st := &State{CustomContent: map[string]string{}}

	sel.Find(".doc-table thead th").Each(func(_ int, th *goquery.Selection) {
		name := strings.TrimSpace(th.Text())
		if def, ok := byName[name]; ok {
			st.Columns = append(st.Columns, Column{Key: def.Key, Name: name, Checked: true})
			return
		}
		st.Columns = append(st.Columns, Column{
			Key:      CustomColumnKey(name),
			Name:     name,
			Checked:  true,
			IsCustom: true,
		})
	})

	sel.Find(".doc-table .item-row").Each(func(_ int, tr *goquery.Selection) {
		row := Row{}
		tr.Find("td[data-key]").Each(func(_ int, td *goquery.Selection) {
			key, _ := td.Attr("data-key")
			row[key] = strings.TrimSpace(td.Text())
		})
		st.Rows = append(st.Rows, row)
	})

	sel.Find("[data-content-key]").Each(func(_ int, el *goquery.Selection) {
		key, _ := el.Attr("data-content-key")
		html, err := el.Html()
		if err != nil {
			return
		}
		st.CustomContent[key] = strings.TrimSpace(html)
	})

	sel.Find(".custom-field-row").Each(func(_ int, row *goquery.Selection) {
		title, _ := row.Find("strong").First().Html()
		value, _ := row.Find("div").First().Html()
		st.CustomFields = append(st.CustomFields, CustomField{
			Title: strings.TrimSpace(title),
			Value: strings.TrimSpace(value),
		})
	})

	return st, nil
}

// StripNoPrint removes every element carrying the no-print class,
// the same cleanup the UI applies before a document is saved.
func StripNoPrint(markup string) (string, error) {
	sel, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}
	sel.Find(".no-print").Remove()
	out, err := sel.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("serialize document: %w", err)
	}
	return out, nil
}
