// Package codes holds the Thema code list in memory and answers lookup,
// search, parent/child and pagination queries against it.
//
// A Repository is built once from the source document (see Load) and is
// never modified afterwards, so a single instance can be shared by any
// number of goroutines without locking.
//
// Matching of code values is case-insensitive. Parent links are resolved
// case-insensitively to the stored (canonical) value first and then compared
// exactly, so near-duplicate casings never match each other's children.
package codes

// Code is one node of the taxonomy.
type Code struct {
	Value       string // unique identifier, stored in source casing
	Description string
	Notes       string // empty when absent
	Parent      string // stored value of the parent code; empty for roots
	IssueNumber int    // code list issue in which the code was introduced
	Modified    string // empty when absent
}

// IsRoot reports whether the code has no parent.
func (c Code) IsRoot() bool {
	return c.Parent == ""
}

// Metadata describes the code list as a whole.
//
// The identifying fields are kept exactly as they appeared in the source
// document (string or json.Number). Dates are normalized to YYYY-MM-DD when
// the source holds the compact YYYYMMDD form; empty means absent.
type Metadata struct {
	CodeListNumber      any
	CodeListDescription any
	IssueNumber         any
	VersionNumber       any
	IssueDate           string
	LastUpdated         string
}

// FormatDate converts an 8-digit YYYYMMDD date to YYYY-MM-DD. Any other
// text is returned unchanged.
func FormatDate(s string) string {
	if len(s) != 8 {
		return s
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s
		}
	}
	return s[0:4] + "-" + s[4:6] + "-" + s[6:8]
}
