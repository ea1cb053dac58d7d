package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecuteReportsUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing final decision", args: nil, wantErr: "accepts 1 arg(s), received 0"},
		{name: "unknown flag", args: []string{"--bogus", "1"}, wantErr: "unknown flag: --bogus"},
		{name: "invalid final decision", args: []string{"2"}, wantErr: "final decision"},
		{name: "zero attempts", args: []string{"--max-attempts", "0", "1"}, wantErr: "--max-attempts must be at least 1"},
		{name: "negative attempts", args: []string{"--max-attempts=-3", "1"}, wantErr: "--max-attempts must be at least 1"},
		{name: "unknown retry scope", args: []string{"--retry-scope", "sometimes", "1"}, wantErr: "unknown retry scope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append([]string{"--log-file", filepath.Join(t.TempDir(), "pandavote.log")}, tt.args...)

			code := execute(context.Background(), args, &stdout, &stderr)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), "Error: ")
			assert.Contains(t, stderr.String(), tt.wantErr)
			assert.Contains(t, stdout.String(), "Usage:")
		})
	}
}

func TestExecuteHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := execute(context.Background(), []string{"--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "pandavote <final-decision>")
	assert.Contains(t, stdout.String(), "--retry-scope")
	assert.Empty(t, stderr.String())
}
