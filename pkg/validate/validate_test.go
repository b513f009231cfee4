package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/transitdata/pkg/errors"
	"github.com/agentstation/transitdata/pkg/validate"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		kind  string
	}{
		{name: "object", input: `{"a": 1}`, valid: true, kind: "object"},
		{name: "array", input: "[1, 2]\n", valid: true, kind: "array"},
		{name: "scalar", input: `42`, valid: true, kind: "number"},
		{name: "trailing garbage", input: `{"a": 1}extra`},
		{name: "second value", input: `[1] [2]`},
		{name: "truncated", input: `[{"a": 1}`},
		{name: "empty", input: ``},
		{name: "comment", input: "// lines\n[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := validate.JSON([]byte(tt.input))
			if !tt.valid {
				require.Error(t, err)
				assert.True(t, errors.IsMalformed(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, report.Kind)
		})
	}
}

func TestJSONReportsPosition(t *testing.T) {
	_, err := validate.JSON([]byte("{\n  \"a\": 1\n}extra"))

	var mde *errors.MalformedDatasetError
	require.ErrorAs(t, err, &mde)
	assert.Equal(t, 3, mde.Line)
	assert.Contains(t, mde.Error(), "line 3")
}

func TestJSONC(t *testing.T) {
	input := []byte("[\n  // first line\n  {\"idLigne\": \"1\"},\n]\n")

	_, err := validate.JSON(input)
	require.Error(t, err)

	report, err := validate.JSON(input, validate.WithJSONC())
	require.NoError(t, err)
	assert.Equal(t, "array", report.Kind)
	assert.Contains(t, string(input), "// first line", "input must not be modified")

	_, err = validate.JSON([]byte(`{"a": }`), validate.WithJSONC())
	assert.True(t, errors.IsMalformed(err))
}

func TestWithDataset(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		report, err := validate.JSON([]byte(`[{"idLigne":"1"},{"idLigne":2}]`), validate.WithDataset("idLigne"))
		require.NoError(t, err)
		assert.Equal(t, 2, report.Records)
		assert.Equal(t, "idLigne", report.KeyField)
		assert.False(t, report.HasWarnings())
	})

	t.Run("duplicates are warnings", func(t *testing.T) {
		input := `[{"idLigne":"1"},{"idLigne":"1"},{"idLigne":"1"},{"idLigne":"2"}]`
		report, err := validate.JSON([]byte(input), validate.WithDataset("idLigne"))
		require.NoError(t, err)
		assert.Equal(t, []string{`"1"`}, report.DuplicateKeys)
		assert.True(t, report.HasWarnings())
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := validate.JSON([]byte(`[{"name":"X"}]`), validate.WithDataset("idLigne"))
		assert.True(t, errors.IsMissingKey(err))
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := validate.JSON([]byte(`{"idLigne":"1"}`), validate.WithDataset("idLigne"))
		assert.True(t, errors.IsMalformed(err))
	})
}
