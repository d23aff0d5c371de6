package wire_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/golox/internal/wire"
)

func strPtr(s string) *string { return &s }

func TestProcess(t *testing.T) {
	resp := wire.Process(wire.Request{Source: `!"a"`})

	want := wire.Response{
		Tokens: []wire.Token{
			{Type: "BANG", Lexeme: "!", Line: 1},
			{Type: "STRING", Lexeme: `"a"`, Literal: strPtr("a"), Line: 1},
			{Type: "EOF", Lexeme: "", Line: 1},
		},
		AST:         []string{"(! a)"},
		Diagnostics: []wire.Diagnostic{},
	}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Errorf("Process mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, resp.Failed())
}

func TestProcessEmptyStringLiteral(t *testing.T) {
	resp := wire.Process(wire.Request{Source: `""`})

	require.Len(t, resp.Tokens, 2)
	require.NotNil(t, resp.Tokens[0].Literal, "an empty string is still a literal")
	assert.Equal(t, "", *resp.Tokens[0].Literal)
	assert.Nil(t, resp.Tokens[1].Literal, "EOF has no literal")

	out, err := json.Marshal(resp.Tokens)
	require.NoError(t, err)
	assert.Equal(t,
		`[{"type":"STRING","lexeme":"\"\"","literal":"","line":1},{"type":"EOF","lexeme":"","line":1}]`,
		string(out))
}

func TestProcessDiagnostics(t *testing.T) {
	resp := wire.Process(wire.Request{Source: "1 +"})

	require.Len(t, resp.Diagnostics, 1)
	d := resp.Diagnostics[0]
	assert.Equal(t, "S0201", d.Code)
	assert.Equal(t, 1, d.Line)
	assert.Equal(t, "Unexpected token", d.Message)
	assert.Equal(t, "[line 1] Error at end: Unexpected token", d.Text)
	assert.Empty(t, resp.AST)
	assert.True(t, resp.Failed())
}

func TestProcessMaxDepth(t *testing.T) {
	resp := wire.Process(wire.Request{Source: "(((1)))", MaxDepth: 2})

	require.NotEmpty(t, resp.Diagnostics)
	assert.Equal(t, "S0203", resp.Diagnostics[0].Code)
}

func TestServe(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode int
		check    func(t *testing.T, resp wire.Response)
	}{
		{
			name:     "clean run",
			input:    `{"source":"1 + 2"}`,
			wantCode: 0,
			check: func(t *testing.T, resp wire.Response) {
				assert.Equal(t, []string{"(+ 1 2)"}, resp.AST)
			},
		},
		{
			name:     "diagnostics",
			input:    `{"source":"\"open"}`,
			wantCode: 1,
			check: func(t *testing.T, resp wire.Response) {
				require.Len(t, resp.Diagnostics, 1)
				assert.Equal(t, "Unterminated string", resp.Diagnostics[0].Message)
			},
		},
		{
			name:     "bad request",
			input:    `{"source":`,
			wantCode: 2,
			check: func(t *testing.T, resp wire.Response) {
				assert.True(t, strings.HasPrefix(resp.Error, "invalid request JSON"))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := wire.Serve(strings.NewReader(tt.input), &out)
			assert.Equal(t, tt.wantCode, code)

			var resp wire.Response
			require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
			tt.check(t, resp)
		})
	}
}
