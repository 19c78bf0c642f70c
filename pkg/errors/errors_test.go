package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/thema/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: pkgerrors.ResourceCode,
			ID:       "ZZZ",
		}
		assert.Equal(t, "code with value 'ZZZ' not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError(pkgerrors.ResourceParentCode, "yfb")
		assert.Equal(t, "parent code with value 'yfb' not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError(pkgerrors.ResourceCode, "test")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "limit",
			Message: "must be positive",
		}
		assert.Equal(t, "validation failed for field limit: must be positive", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
		assert.False(t, pkgerrors.IsInvalidSearch(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("invalid search", func(t *testing.T) {
		err := pkgerrors.NewInvalidSearchError()
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.True(t, pkgerrors.IsInvalidSearch(err))
		assert.Contains(t, err.Error(), "query or parent")
	})
}

func TestDataError(t *testing.T) {
	cause := errors.New("no such file")
	err := pkgerrors.NewDataError("data/data.json", "cannot open", cause)

	assert.Equal(t, "code list data error in data/data.json: cannot open", err.Error())
	assert.True(t, pkgerrors.IsDataError(err))
	assert.ErrorIs(t, err, cause)

	noPath := pkgerrors.NewDataError("", "no candidate found", nil)
	assert.Equal(t, "code list data error: no candidate found", noPath.Error())
}

func TestConfigError(t *testing.T) {
	cause := errors.New("bad port")
	err := pkgerrors.NewConfigError("server", "invalid listen address", cause)
	assert.Equal(t, "configuration error in server: invalid listen address", err.Error())
	assert.ErrorIs(t, err, cause)

	err = pkgerrors.NewConfigError("", "missing", nil)
	assert.Equal(t, "configuration error: missing", err.Error())
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := pkgerrors.NewParseError("json", "data.json", "decode", cause)
	assert.Equal(t, "parse error in json file data.json: decode", err.Error())
	assert.ErrorIs(t, err, cause)

	err = pkgerrors.NewParseError("yaml", "", "bad indent", nil)
	assert.Equal(t, "yaml parse error: bad indent", err.Error())
}

func TestResourceError(t *testing.T) {
	err := pkgerrors.NewResourceError("load", "config", "", errors.New("denied"))
	assert.Equal(t, "failed to load config: denied", err.Error())

	err = pkgerrors.NewResourceError("read", "code list", "data.json", nil)
	assert.Equal(t, "failed to read code list data.json: ", err.Error())
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapResource("load", "config", "", nil))
	assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))

	cause := errors.New("boom")

	var re *pkgerrors.ResourceError
	require.ErrorAs(t, pkgerrors.WrapResource("load", "config", "", cause), &re)
	assert.Equal(t, "load", re.Operation)

	var pe *pkgerrors.ParseError
	require.ErrorAs(t, pkgerrors.WrapParse("json", "data.json", cause), &pe)
	assert.Equal(t, "boom", pe.Message)

	wrapped := pkgerrors.NewDataError("data.json", "malformed JSON document", pkgerrors.WrapParse("json", "data.json", cause))
	assert.True(t, pkgerrors.IsDataError(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want pkgerrors.Kind
	}{
		{"nil", nil, pkgerrors.KindInternal},
		{"plain", errors.New("boom"), pkgerrors.KindInternal},
		{"invalid search", pkgerrors.NewInvalidSearchError(), pkgerrors.KindInvalidSearch},
		{"other validation", pkgerrors.NewValidationError("limit", -1, "negative"), pkgerrors.KindInternal},
		{"code", pkgerrors.NewNotFoundError(pkgerrors.ResourceCode, "ZZZ"), pkgerrors.KindCodeNotFound},
		{"parent", pkgerrors.NewNotFoundError(pkgerrors.ResourceParentCode, "ZZZ"), pkgerrors.KindParentNotFound},
		{"endpoint", pkgerrors.NewNotFoundError(pkgerrors.ResourceEndpoint, "/api/x"), pkgerrors.KindEndpointNotFound},
		{"wrapped code", fmt.Errorf("get: %w", pkgerrors.NewNotFoundError(pkgerrors.ResourceCode, "A")), pkgerrors.KindCodeNotFound},
		{"data", pkgerrors.NewDataError("data.json", "missing", nil), pkgerrors.KindStartupData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgerrors.KindOf(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "internal", pkgerrors.KindInternal.String())
	assert.Equal(t, "invalid_search", pkgerrors.KindInvalidSearch.String())
	assert.Equal(t, "code_not_found", pkgerrors.KindCodeNotFound.String())
	assert.Equal(t, "parent_not_found", pkgerrors.KindParentNotFound.String())
	assert.Equal(t, "endpoint_not_found", pkgerrors.KindEndpointNotFound.String())
	assert.Equal(t, "startup_data", pkgerrors.KindStartupData.String())
	assert.Equal(t, "internal", pkgerrors.Kind(99).String())
}
