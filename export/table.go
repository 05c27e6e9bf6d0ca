package export

import (
	"bytes"
	"fmt"
	"io"

	md "github.com/nao1215/markdown"
	"github.com/patrickkleiner/inventory"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MarkdownTable renders the records as a markdown table, one row per record,
// with the record identifier as the first column. It backs the txt and html
// formats as well as the terminal listing.
func MarkdownTable(records []*inventory.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	cols := columns(records)
	table := md.TableSet{
		Header: cols,
	}
	for _, r := range records {
		table.Rows = append(table.Rows, row(r, cols))
	}
	doc.Table(table)
	doc.Build()

	return buf.String()
}

func exportTXT(w io.Writer, records []*inventory.Record) error {
	if _, err := io.WriteString(w, MarkdownTable(records)); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}

func exportHTML(w io.Writer, records []*inventory.Record) error {
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := gm.Convert([]byte(MarkdownTable(records)), w); err != nil {
		return fmt.Errorf("cannot render html: %w", err)
	}
	return nil
}
