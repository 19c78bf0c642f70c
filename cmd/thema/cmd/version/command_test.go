package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/thema/cmd/application"
)

func TestVersionCommand(t *testing.T) {
	app := &application.Mock{VersionString: "1.2.3"}

	tests := []struct {
		args []string
		want []string
	}{
		{nil, []string{"thema 1.2.3\n"}},
		{[]string{"--full"}, []string{"thema 1.2.3\n", "commit:", "go:"}},
	}

	for _, tt := range tests {
		cmd := NewCommand(app)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(tt.args)
		require.NoError(t, cmd.Execute())
		for _, w := range tt.want {
			assert.Contains(t, out.String(), w)
		}
	}
}
