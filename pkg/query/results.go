package query

import "github.com/agentstation/thema/pkg/codes"

// Entry is the wire form of a code.
type Entry struct {
	CodeValue       string  `json:"codeValue" yaml:"codeValue"`
	CodeDescription string  `json:"codeDescription" yaml:"codeDescription"`
	CodeNotes       *string `json:"codeNotes" yaml:"codeNotes"`
	CodeParent      *string `json:"codeParent" yaml:"codeParent"`
	IssueNumber     int     `json:"issueNumber" yaml:"issueNumber"`
	Modified        *string `json:"modified" yaml:"modified"`
}

// NewEntry converts a code to its wire form. Empty optional fields become null.
func NewEntry(c codes.Code) Entry {
	return Entry{
		CodeValue:       c.Value,
		CodeDescription: c.Description,
		CodeNotes:       optional(c.Notes),
		CodeParent:      optional(c.Parent),
		IssueNumber:     c.IssueNumber,
		Modified:        optional(c.Modified),
	}
}

// NewEntries converts codes in order. The result is never nil.
func NewEntries(list []codes.Code) []Entry {
	entries := make([]Entry, len(list))
	for i, c := range list {
		entries[i] = NewEntry(c)
	}
	return entries
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Pagination describes where a page sits in a result set.
type Pagination struct {
	Total int `json:"total" yaml:"total"`
	Page  int `json:"page" yaml:"page"`
	Limit int `json:"limit" yaml:"limit"`
	Pages int `json:"pages" yaml:"pages"`
}

// PagedResult is one page of codes.
type PagedResult struct {
	Pagination Pagination `json:"pagination" yaml:"pagination"`
	Data       []Entry    `json:"data" yaml:"data"`
}

// ChildrenResult lists the direct children of a code.
type ChildrenResult struct {
	Parent   string  `json:"parent" yaml:"parent"` // as supplied by the caller
	Count    int     `json:"count" yaml:"count"`
	Children []Entry `json:"children" yaml:"children"`
}

// MetadataResult describes the code list.
type MetadataResult struct {
	CodeListNumber      any     `json:"codeListNumber" yaml:"codeListNumber"`
	CodeListDescription any     `json:"codeListDescription" yaml:"codeListDescription"`
	IssueNumber         any     `json:"issueNumber" yaml:"issueNumber"`
	VersionNumber       any     `json:"versionNumber" yaml:"versionNumber"`
	IssueDate           *string `json:"issueDate" yaml:"issueDate"`
	LastUpdated         *string `json:"lastUpdated" yaml:"lastUpdated"`
	TotalCodes          int     `json:"totalCodes" yaml:"totalCodes"`
}
