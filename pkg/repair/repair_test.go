package repair_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/transitdata/pkg/errors"
	"github.com/agentstation/transitdata/pkg/repair"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		value    string
		kind     string
		length   int
		offset   int
		trailing bool
	}{
		{
			name:     "appended array",
			input:    "[1,2,3]   [4,5,6]",
			value:    "[1,2,3]",
			kind:     "array",
			length:   3,
			offset:   7,
			trailing: true,
		},
		{
			name:   "clean file",
			input:  `[{"id":1}]`,
			value:  `[{"id":1}]`,
			kind:   "array",
			length: 1,
			offset: 10,
		},
		{
			name:   "trailing newline only",
			input:  "{\"a\": 1, \"b\": 2}\n\n",
			value:  `{"a": 1, "b": 2}`,
			kind:   "object",
			length: 2,
			offset: 16,
		},
		{
			name:     "garbage text",
			input:    `{"a": 1}extra`,
			value:    `{"a": 1}`,
			kind:     "object",
			length:   1,
			offset:   8,
			trailing: true,
		},
		{
			name:     "scalar",
			input:    `"x" ]`,
			value:    `"x"`,
			kind:     "string",
			offset:   3,
			trailing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := repair.Truncate([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.value, string(res.Value))
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.length, res.Length)
			assert.Equal(t, tt.offset, res.Offset)
			assert.Equal(t, tt.trailing, res.Trailing)
		})
	}
}

func TestTruncateErrors(t *testing.T) {
	tests := map[string]string{
		"empty":       "",
		"whitespace":  "  \n",
		"broken":      `[1,2`,
		"bad literal": `[tru]`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := repair.Truncate([]byte(input))
			require.Error(t, err)
			assert.True(t, errors.IsMalformed(err))
		})
	}
}

func TestIndent(t *testing.T) {
	res, err := repair.Truncate([]byte("[1,2,3]   [4,5,6]"))
	require.NoError(t, err)

	out, err := repair.Indent(res.Value, 2)
	require.NoError(t, err)
	assert.Equal(t, "[\n  1,\n  2,\n  3\n]\n", string(out))

	var decoded []int
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, []int{1, 2, 3}, decoded)
}

func TestIndentKeepsOrderAndText(t *testing.T) {
	out, err := repair.Indent(json.RawMessage(`{"z":"Hussein Dey","a":"Aïn Naâdja"}`), 0)
	require.NoError(t, err)
	assert.Equal(t, "{\"z\":\"Hussein Dey\",\"a\":\"Aïn Naâdja\"}\n", string(out))
}
