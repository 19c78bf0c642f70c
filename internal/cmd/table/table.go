// Package table converts query results into rows for CLI table output.
package table

import (
	"fmt"
	"strconv"

	"github.com/agentstation/thema/pkg/query"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
	Footer          string  // Optional: line printed after the table
}

// CodesToTableData converts code entries to table format. Wide output adds
// the notes and modified columns.
func CodesToTableData(entries []query.Entry, wide bool) Data {
	headers := []string{"Code", "Description", "Parent", "Issue"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "Modified", "Notes")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{
			e.CodeValue,
			e.CodeDescription,
			deref(e.CodeParent),
			strconv.Itoa(e.IssueNumber),
		}
		if wide {
			row = append(row, deref(e.Modified), deref(e.CodeNotes))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// PagedToTableData converts a page of codes, with a pagination footer.
func PagedToTableData(result query.PagedResult, wide bool) Data {
	data := CodesToTableData(result.Data, wide)
	p := result.Pagination
	data.Footer = fmt.Sprintf("Page %d of %d (%d codes, %d per page)", p.Page, p.Pages, p.Total, p.Limit)
	return data
}

// ChildrenToTableData converts the children of a code.
func ChildrenToTableData(result query.ChildrenResult, wide bool) Data {
	data := CodesToTableData(result.Children, wide)
	data.Footer = fmt.Sprintf("%d children of %s", result.Count, result.Parent)
	return data
}

// EntryToTableData converts one code to a property/value table.
func EntryToTableData(e query.Entry) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Code", e.CodeValue},
			{"Description", e.CodeDescription},
			{"Parent", deref(e.CodeParent)},
			{"Notes", deref(e.CodeNotes)},
			{"Issue", strconv.Itoa(e.IssueNumber)},
			{"Modified", deref(e.Modified)},
		},
	}
}

// MetadataToTableData converts code list metadata to a property/value table.
func MetadataToTableData(m query.MetadataResult) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Code List", scalar(m.CodeListNumber)},
			{"Description", scalar(m.CodeListDescription)},
			{"Issue", scalar(m.IssueNumber)},
			{"Version", scalar(m.VersionNumber)},
			{"Issue Date", deref(m.IssueDate)},
			{"Last Updated", deref(m.LastUpdated)},
			{"Total Codes", strconv.Itoa(m.TotalCodes)},
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
