// Package query answers the code list API operations on top of a
// codes.Repository.
//
// It validates and defaults request parameters, composes the repository
// primitives and shapes the results into the wire types in results.go.
// Failures are reported as pkg/errors types so callers can classify them
// with errors.KindOf.
package query

import (
	"strings"

	"github.com/agentstation/thema/pkg/codes"
	"github.com/agentstation/thema/pkg/constants"
	"github.com/agentstation/thema/pkg/errors"
)

// Service runs queries against a repository. It holds no mutable state.
type Service struct {
	repo *codes.Repository
}

// New returns a Service over repo.
func New(repo *codes.Repository) *Service {
	return &Service{repo: repo}
}

// Repository returns the underlying repository.
func (s *Service) Repository() *codes.Repository {
	return s.repo
}

// SearchParams holds the inputs of a search.
type SearchParams struct {
	Query  string
	Parent string
	Page   int
	Limit  int
}

// Metadata describes the code list.
func (s *Service) Metadata() MetadataResult {
	m := s.repo.Metadata()
	return MetadataResult{
		CodeListNumber:      m.CodeListNumber,
		CodeListDescription: m.CodeListDescription,
		IssueNumber:         m.IssueNumber,
		VersionNumber:       m.VersionNumber,
		IssueDate:           optional(m.IssueDate),
		LastUpdated:         optional(m.LastUpdated),
		TotalCodes:          s.repo.Len(),
	}
}

// ListCodes returns one page of all codes in source order.
// Non-positive page or limit fall back to the defaults.
func (s *Service) ListCodes(page, limit int) PagedResult {
	page, limit = normalize(page, limit)
	items, total, pages := s.repo.List(page, limit)
	return paged(items, total, pages, page, limit)
}

// SearchCodes filters codes by text and/or parent and returns one page.
// At least one of Query or Parent must be non-blank. A blank one is ignored;
// a non-blank one is matched as given, surrounding spaces included.
func (s *Service) SearchCodes(p SearchParams) (PagedResult, error) {
	q, parent := p.Query, p.Parent
	if strings.TrimSpace(q) == "" {
		q = ""
	}
	if strings.TrimSpace(parent) == "" {
		parent = ""
	}
	if q == "" && parent == "" {
		return PagedResult{}, errors.NewInvalidSearchError()
	}

	page, limit := normalize(p.Page, p.Limit)
	items, total, pages := codes.Page(s.repo.Search(q, parent), page, limit)
	return paged(items, total, pages, page, limit), nil
}

// GetCode returns the code matching value case-insensitively.
func (s *Service) GetCode(value string) (Entry, error) {
	c, ok := s.repo.FindByValue(value)
	if !ok {
		return Entry{}, errors.NewNotFoundError(errors.ResourceCode, value)
	}
	return NewEntry(c), nil
}

// GetChildren returns the direct children of parent. The parent must exist.
func (s *Service) GetChildren(parent string) (ChildrenResult, error) {
	if !s.repo.Exists(parent) {
		return ChildrenResult{}, errors.NewNotFoundError(errors.ResourceParentCode, parent)
	}

	children := NewEntries(s.repo.FilterByParent(parent))
	return ChildrenResult{
		Parent:   parent,
		Count:    len(children),
		Children: children,
	}, nil
}

func normalize(page, limit int) (int, int) {
	if page <= 0 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = constants.DefaultPageSize
	}
	return page, limit
}

func paged(items []codes.Code, total, pages, page, limit int) PagedResult {
	return PagedResult{
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
		Data: NewEntries(items),
	}
}
