package codes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The source document is an XML code list converted to JSON. Converters
// render numeric-looking text as numbers, wrap text that carried attributes
// as {"#text": ...} and collapse one-element lists to a single object, so
// every field below decodes leniently.

type sourceDocument struct {
	CodeList *sourceCodeList `json:"CodeList"`
}

type sourceCodeList struct {
	CodeListNumber      any          `json:"CodeListNumber"`
	CodeListDescription any          `json:"CodeListDescription"`
	IssueNumber         any          `json:"IssueNumber"`
	VersionNumber       any          `json:"VersionNumber"`
	IssueDate           sourceText   `json:"IssueDate"`
	LastUpdated         sourceText   `json:"LastUpdated"`
	ThemaCodes          *sourceCodes `json:"ThemaCodes"`
}

type sourceCodes struct {
	Code sourceCodeSlice `json:"Code"`
}

type sourceCode struct {
	CodeValue       sourceText  `json:"CodeValue"`
	CodeDescription sourceText  `json:"CodeDescription"`
	CodeNotes       sourceText  `json:"CodeNotes"`
	CodeParent      sourceText  `json:"CodeParent"`
	IssueNumber     sourceIssue `json:"IssueNumber"`
	Modified        sourceText  `json:"Modified"`
}

// sourceCodeSlice accepts either a list of codes or a single code object.
type sourceCodeSlice []sourceCode

func (s *sourceCodeSlice) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*s = nil
		return nil
	case b[0] == '{':
		var one sourceCode
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*s = sourceCodeSlice{one}
		return nil
	default:
		var many []sourceCode
		if err := json.Unmarshal(b, &many); err != nil {
			return err
		}
		*s = many
		return nil
	}
}

// sourceText is a text field that may arrive as a string, a number,
// a boolean or an {"#text": ...} wrapper.
type sourceText string

func (t *sourceText) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return err
	}
	s, err := scalarText(v)
	if err != nil {
		return err
	}
	*t = sourceText(strings.TrimSpace(s))
	return nil
}

// sourceIssue is an issue number that may arrive as an integer, an
// integral float or numeric text.
type sourceIssue int

func (n *sourceIssue) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return err
	}
	s, err := scalarText(v)
	if err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*n = 0
		return nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		*n = sourceIssue(i)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return fmt.Errorf("issue number %q is not an integer", s)
	}
	*n = sourceIssue(int(f))
	return nil
}

// decodeScalar decodes b keeping numbers as json.Number.
func decodeScalar(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// scalarText renders a decoded scalar as text. Null becomes "".
func scalarText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	case map[string]any:
		return scalarText(x["#text"])
	default:
		return "", fmt.Errorf("expected a scalar value, got %T", v)
	}
}

// toCode converts a decoded source entry to a Code.
func (s sourceCode) toCode() Code {
	return Code{
		Value:       string(s.CodeValue),
		Description: string(s.CodeDescription),
		Notes:       string(s.CodeNotes),
		Parent:      string(s.CodeParent),
		IssueNumber: int(s.IssueNumber),
		Modified:    string(s.Modified),
	}
}

// toMetadata converts the code list header to Metadata.
func (s *sourceCodeList) toMetadata() Metadata {
	return Metadata{
		CodeListNumber:      s.CodeListNumber,
		CodeListDescription: s.CodeListDescription,
		IssueNumber:         s.IssueNumber,
		VersionNumber:       s.VersionNumber,
		IssueDate:           FormatDate(string(s.IssueDate)),
		LastUpdated:         FormatDate(string(s.LastUpdated)),
	}
}
