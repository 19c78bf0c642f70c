package thema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/thema/pkg/constants"
	"github.com/agentstation/thema/pkg/errors"
	"github.com/agentstation/thema/pkg/logging"
)

const testDataFile = "pkg/codes/testdata/codes.json"

func TestOpen_DataFile(t *testing.T) {
	svc, err := Open(WithDataFile(testDataFile), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	assert.Equal(t, 7, svc.Repository().Len())
	entry, err := svc.GetCode("yfb")
	require.NoError(t, err)
	assert.Equal(t, "YFB", entry.CodeValue)
}

func TestOpen_SearchDirs(t *testing.T) {
	data, err := os.ReadFile(testDataFile)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), data, constants.FilePermissions))

	svc, err := Open(WithSearchDirs(t.TempDir(), dir), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	assert.Equal(t, 7, svc.Repository().Len())
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(WithDataFile(filepath.Join(t.TempDir(), "missing.json")))
	assert.True(t, errors.IsDataError(err))

	_, err = Open(WithSearchDirs(t.TempDir()))
	assert.True(t, errors.IsDataError(err))
}
