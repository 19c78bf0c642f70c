package metadata

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/thema/cmd/application"
	"github.com/agentstation/thema/pkg/codes"
	"github.com/agentstation/thema/pkg/logging"
	"github.com/agentstation/thema/pkg/query"
)

func TestMetadataCommand(t *testing.T) {
	repo := codes.NewRepository([]codes.Code{{Value: "YFB", Description: "Children's fiction"}},
		codes.WithLogger(logging.NewNopLogger()),
		codes.WithMetadata(codes.Metadata{
			CodeListNumber:      json.Number("93"),
			CodeListDescription: "Thema subject category",
			VersionNumber:       "1.5",
			LastUpdated:         "2024-03-01",
		}))

	for format, want := range map[string]string{
		"json":  `"codeListNumber": 93`,
		"yaml":  "totalCodes: 1",
		"table": "Thema subject category",
	} {
		t.Run(format, func(t *testing.T) {
			cmd := NewCommand(&application.Mock{
				ServiceFunc: func() (*query.Service, error) { return query.New(repo), nil },
				Format:      format,
			})
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs([]string{})

			require.NoError(t, cmd.Execute())
			assert.Contains(t, out.String(), want)
		})
	}
}
