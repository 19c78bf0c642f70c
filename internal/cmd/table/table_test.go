package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/thema/pkg/query"
)

func ptr(s string) *string { return &s }

func entries() []query.Entry {
	return []query.Entry{
		{CodeValue: "YFB", CodeDescription: "Children's fiction", IssueNumber: 1},
		{CodeValue: "YFB1", CodeDescription: "Fantasy fiction", CodeParent: ptr("YFB"), CodeNotes: ptr("See also YFH"), IssueNumber: 2, Modified: ptr("20240301")},
	}
}

func TestCodesToTableData(t *testing.T) {
	data := CodesToTableData(entries(), false)
	assert.Equal(t, []string{"Code", "Description", "Parent", "Issue"}, data.Headers)
	assert.Equal(t, [][]string{
		{"YFB", "Children's fiction", "", "1"},
		{"YFB1", "Fantasy fiction", "YFB", "2"},
	}, data.Rows)
	assert.Len(t, data.ColumnAlignment, len(data.Headers))

	wide := CodesToTableData(entries(), true)
	assert.Equal(t, []string{"Code", "Description", "Parent", "Issue", "Modified", "Notes"}, wide.Headers)
	assert.Equal(t, []string{"YFB1", "Fantasy fiction", "YFB", "2", "20240301", "See also YFH"}, wide.Rows[1])
	assert.Len(t, wide.ColumnAlignment, len(wide.Headers))
}

func TestPagedToTableData(t *testing.T) {
	data := PagedToTableData(query.PagedResult{
		Pagination: query.Pagination{Total: 7, Page: 2, Limit: 2, Pages: 4},
		Data:       entries(),
	}, false)
	assert.Len(t, data.Rows, 2)
	assert.Equal(t, "Page 2 of 4 (7 codes, 2 per page)", data.Footer)
}

func TestChildrenToTableData(t *testing.T) {
	data := ChildrenToTableData(query.ChildrenResult{Parent: "yfb", Count: 1, Children: entries()[1:]}, false)
	assert.Len(t, data.Rows, 1)
	assert.Equal(t, "1 children of yfb", data.Footer)
}

func TestEntryToTableData(t *testing.T) {
	data := EntryToTableData(entries()[0])
	assert.Equal(t, []string{"Property", "Value"}, data.Headers)
	assert.Contains(t, data.Rows, []string{"Parent", ""})
	assert.Contains(t, data.Rows, []string{"Issue", "1"})
}

func TestMetadataToTableData(t *testing.T) {
	data := MetadataToTableData(query.MetadataResult{
		CodeListNumber:      json.Number("93"),
		CodeListDescription: "Thema subject category",
		VersionNumber:       "1.5",
		IssueDate:           ptr("2023-10-20"),
		TotalCodes:          7,
	})
	require.Len(t, data.Rows, 7)
	assert.Equal(t, []string{"Code List", "93"}, data.Rows[0])
	assert.Equal(t, []string{"Issue", ""}, data.Rows[2])
	assert.Equal(t, []string{"Last Updated", ""}, data.Rows[5])
	assert.Equal(t, []string{"Total Codes", "7"}, data.Rows[6])
}
