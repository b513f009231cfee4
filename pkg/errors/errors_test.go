package errors_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	pkgerrors "github.com/agentstation/transitdata/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestMissingKeyError(t *testing.T) {
	t.Run("without source", func(t *testing.T) {
		err := pkgerrors.NewMissingKeyError("idLigne", 3)
		assert.Equal(t, `record 3 has no "idLigne" field`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrMissingKey))
	})

	t.Run("with source", func(t *testing.T) {
		err := &pkgerrors.MissingKeyError{Field: "idLigne", Index: 0, Source: "incoming"}
		assert.Equal(t, `record 0 in incoming has no "idLigne" field`, err.Error())
		assert.True(t, pkgerrors.IsMissingKey(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("merge: %w", pkgerrors.NewMissingKeyError("idLigne", 1))
		assert.True(t, pkgerrors.IsMissingKey(wrapped))
		assert.False(t, pkgerrors.IsMalformed(wrapped))
	})
}

func TestMalformedDatasetError(t *testing.T) {
	t.Run("position and source", func(t *testing.T) {
		err := &pkgerrors.MalformedDatasetError{
			Source:  "etusa_raw.json",
			Line:    2,
			Column:  5,
			Message: "invalid character 'x'",
		}
		assert.Equal(t, "malformed dataset in etusa_raw.json at line 2 column 5: invalid character 'x'", err.Error())
		assert.True(t, pkgerrors.IsMalformed(err))
	})

	t.Run("message only", func(t *testing.T) {
		err := pkgerrors.NewMalformedDatasetError("expected a JSON array", nil)
		assert.Equal(t, "malformed dataset: expected a JSON array", err.Error())
		assert.Equal(t, int64(-1), err.Offset)
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("unexpected end of JSON input")
		err := pkgerrors.NewMalformedDatasetError(base.Error(), base)
		assert.ErrorIs(t, err, base)
	})
}

func TestWrapMalformed(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapMalformed("a.json", nil))
	})

	t.Run("sets source on existing error", func(t *testing.T) {
		orig := &pkgerrors.MalformedDatasetError{Offset: 4, Line: 1, Column: 5, Message: "bad"}
		err := pkgerrors.WrapMalformed("a.json", orig)

		var mde *pkgerrors.MalformedDatasetError
		require.True(t, errors.As(err, &mde))
		assert.Equal(t, "a.json", mde.Source)
		assert.Equal(t, int64(4), mde.Offset)
		assert.Empty(t, orig.Source, "original must not be mutated")
	})

	t.Run("wraps foreign error", func(t *testing.T) {
		err := pkgerrors.WrapMalformed("a.json", errors.New("boom"))
		assert.True(t, pkgerrors.IsMalformed(err))
		assert.Contains(t, err.Error(), "a.json")
	})
}

func TestIOError(t *testing.T) {
	err := pkgerrors.NewIOError("read", "/tmp/x.json", fs.ErrPermission)
	assert.Contains(t, err.Error(), "read")
	assert.Contains(t, err.Error(), "/tmp/x.json")
	assert.True(t, pkgerrors.IsIO(err))
	assert.ErrorIs(t, err, fs.ErrPermission)

	assert.NoError(t, pkgerrors.WrapIO("write", "x", nil))
	assert.True(t, pkgerrors.IsIO(pkgerrors.WrapIO("write", "x", errors.New("disk full"))))
}

func TestDuplicateKeyError(t *testing.T) {
	err := &pkgerrors.DuplicateKeyError{Key: `"7"`, First: 0, Second: 4, Source: "incoming"}
	assert.Equal(t, `duplicate key "7" in incoming (records 0 and 4)`, err.Error())
	assert.True(t, pkgerrors.IsDuplicateKey(err))
}

func TestValidationAndConfigErrors(t *testing.T) {
	verr := pkgerrors.NewValidationError("indent", -1, "must not be negative")
	assert.Equal(t, "validation failed for field indent: must not be negative", verr.Error())
	assert.True(t, pkgerrors.IsValidationError(verr))

	base := errors.New("no such file")
	cerr := pkgerrors.NewConfigError("viper", "failed to read config", base)
	assert.Equal(t, "configuration error in viper: failed to read config", cerr.Error())
	assert.ErrorIs(t, cerr, base)
}
