package codes_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/thema/pkg/codes"
	"github.com/agentstation/thema/pkg/errors"
	"github.com/agentstation/thema/pkg/logging"
)

func load(t *testing.T, path string) *codes.Repository {
	t.Helper()
	repo, err := codes.Load(path, codes.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	return repo
}

func TestLoadJSON(t *testing.T) {
	repo := load(t, filepath.Join("testdata", "codes.json"))

	assert.Equal(t, 7, repo.Len())
	assert.Equal(t, []string{"A", "AB", "ABA", "YF", "YFB", "YFB1", "YFC"}, values(repo.All()))

	yfb, ok := repo.FindByValue("yfb")
	require.True(t, ok)
	assert.Equal(t, codes.Code{
		Value:       "YFB",
		Description: "Children's / Teenage general fiction",
		Parent:      "YF",
		IssueNumber: 1,
		Modified:    "20231020",
	}, yfb)

	yfb1, _ := repo.FindByValue("YFB1")
	assert.Equal(t, 2, yfb1.IssueNumber)

	yfc, _ := repo.FindByValue("YFC")
	assert.Equal(t, 1, yfc.IssueNumber)

	aba, _ := repo.FindByValue("ABA")
	assert.Equal(t, "Use for works on aesthetics", aba.Notes)

	meta := repo.Metadata()
	assert.Equal(t, json.Number("93"), meta.CodeListNumber)
	assert.Equal(t, "Thema subject category", meta.CodeListDescription)
	assert.Equal(t, json.Number("1"), meta.IssueNumber)
	assert.Equal(t, "1.5", meta.VersionNumber)
	assert.Equal(t, "2023-10-20", meta.IssueDate)
	assert.Equal(t, "2024-03-01", meta.LastUpdated)
}

func TestLoadYAML(t *testing.T) {
	repo := load(t, filepath.Join("testdata", "codes.yaml"))

	assert.Equal(t, []string{"YFB", "YFB1"}, values(repo.All()))
	yfb1, ok := repo.FindByValue("yfb1")
	require.True(t, ok)
	assert.Equal(t, "YFB", yfb1.Parent)
	assert.Equal(t, "20231020", yfb1.Modified)
	assert.Equal(t, "2023-10-20", repo.Metadata().IssueDate)
}

func TestLoadGzip(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "codes.json"))
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "codes.json.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	repo := load(t, path)
	assert.Equal(t, 7, repo.Len())
}

func TestLoadSingleCodeObject(t *testing.T) {
	repo := load(t, filepath.Join("testdata", "single.json"))

	require.Equal(t, 1, repo.Len())
	c, ok := repo.FindByValue("1")
	require.True(t, ok)
	assert.Equal(t, "Numeric value", c.Description)
	assert.Equal(t, 1, c.IssueNumber)
	assert.True(t, c.IsRoot())
	assert.Equal(t, "93", repo.Metadata().CodeListNumber)
	assert.Empty(t, repo.Metadata().IssueDate)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"missing file", filepath.Join("testdata", "nope.json"), "cannot open"},
		{"malformed", filepath.Join("testdata", "malformed.json"), "malformed JSON"},
		{"empty value", filepath.Join("testdata", "empty_value.json"), "position 1 has an empty value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codes.Load(tt.path, codes.WithLogger(logging.NewNopLogger()))
			require.Error(t, err)
			assert.True(t, errors.IsDataError(err))
			assert.Equal(t, errors.KindStartupData, errors.KindOf(err))
			assert.Contains(t, err.Error(), tt.message)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestDecodeStructureErrors(t *testing.T) {
	tests := map[string]string{
		"no code list":    `{"Other": {}}`,
		"no thema codes":  `{"CodeList": {"CodeListNumber": 93}}`,
		"object in value": `{"CodeList": {"ThemaCodes": {"Code": [{"CodeValue": ["A"]}]}}}`,
		"fractional issue": `{"CodeList": {"ThemaCodes": {"Code": [{"CodeValue": "A", "IssueNumber": 1.5}]}}}`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := codes.Decode(strings.NewReader(doc), codes.FormatJSON, codes.WithLogger(logging.NewNopLogger()))
			require.Error(t, err)
			assert.True(t, errors.IsDataError(err))
		})
	}
}

func TestDecodeWrappedText(t *testing.T) {
	doc := `{"CodeList": {"ThemaCodes": {"Code": [
		{"CodeValue": {"#text": "A"}, "CodeDescription": " The Arts ", "CodeNotes": null, "IssueNumber": "1.0"}
	]}}}`

	repo, err := codes.Decode(strings.NewReader(doc), codes.FormatJSON, codes.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	c, ok := repo.FindByValue("a")
	require.True(t, ok)
	assert.Equal(t, "The Arts", c.Description)
	assert.Empty(t, c.Notes)
	assert.Equal(t, 1, c.IssueNumber)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, codes.FormatJSON, codes.FormatOf("data/data.json"))
	assert.Equal(t, codes.FormatJSON, codes.FormatOf("data.json.gz"))
	assert.Equal(t, codes.FormatYAML, codes.FormatOf("codes.YAML"))
	assert.Equal(t, codes.FormatYAML, codes.FormatOf("codes.yml.gz"))
	assert.Equal(t, codes.FormatJSON, codes.FormatOf("codes"))
}

func TestLocate(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(second, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(second, "data", "data.json"), []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(first, "data.json"), []byte("{}"), 0o600))

	candidates := []string{"data/data.json", "data.json"}

	t.Run("first directory wins", func(t *testing.T) {
		path, err := codes.Locate("", candidates, first, second)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(first, "data.json"), path)
	})

	t.Run("candidate order within a directory", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(second, "data.json"), []byte("{}"), 0o600))
		path, err := codes.Locate("", candidates, second)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(second, "data", "data.json"), path)
	})

	t.Run("explicit path", func(t *testing.T) {
		explicit := filepath.Join(first, "data.json")
		path, err := codes.Locate(explicit, candidates, second)
		require.NoError(t, err)
		assert.Equal(t, explicit, path)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := codes.Locate(filepath.Join(first, "missing.json"), candidates, second)
		require.Error(t, err)
		assert.True(t, errors.IsDataError(err))
	})

	t.Run("nothing found", func(t *testing.T) {
		_, err := codes.Locate("", candidates, t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.IsDataError(err))
		assert.Contains(t, err.Error(), "no data file found")
	})
}
