package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/thema/internal/cmd/table"
)

type sample struct {
	CodeValue string  `json:"codeValue" yaml:"codeValue"`
	Parent    *string `json:"codeParent" yaml:"codeParent"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"wide", FormatWide, false},
		{"", "", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Explicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, sample{CodeValue: "YFB"}))
	assert.JSONEq(t, `{"codeValue":"YFB","codeParent":null}`, buf.String())
	assert.Contains(t, buf.String(), "\n  ")
}

func TestYAMLFormatter(t *testing.T) {
	parent := "YF"
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, []sample{{CodeValue: "YFB", Parent: &parent}}))
	assert.Equal(t, "- codeValue: YFB\n  codeParent: YF\n", buf.String())
}

func TestTableFormatter(t *testing.T) {
	data := table.Data{
		Headers:         []string{"Code", "Description"},
		Rows:            [][]string{{"YFB", "Children's fiction"}, {"YFB1", "Fantasy fiction"}},
		ColumnAlignment: []table.Align{table.AlignLeft, table.AlignRight},
		Footer:          "2 codes",
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))
	out := buf.String()
	assert.Contains(t, out, "YFB1")
	assert.Contains(t, out, "Fantasy fiction")
	assert.True(t, strings.HasSuffix(out, "2 codes\n"))
}

func TestTableFormatter_FallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"count": 1}))
	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got["count"])
}

func TestWrite(t *testing.T) {
	v := sample{CodeValue: "YFB"}
	toTable := func(wide bool) table.Data {
		row := []string{"YFB"}
		if wide {
			row = append(row, "extra")
		}
		return table.Data{Headers: []string{"Code"}, Rows: [][]string{row}}
	}

	t.Run("json ignores table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatJSON, v, toTable))
		assert.JSONEq(t, `{"codeValue":"YFB","codeParent":null}`, buf.String())
	})

	t.Run("wide passes through", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatWide, v, toTable))
		assert.Contains(t, buf.String(), "extra")
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatTable, v, toTable))
		assert.NotContains(t, buf.String(), "extra")
		assert.Contains(t, buf.String(), "YFB")
	})
}
