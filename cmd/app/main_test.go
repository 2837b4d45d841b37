package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCommand(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"demo"})

	require.NoError(t, root.ExecuteContext(t.Context()))

	assert.Contains(t, out.String(), "Entities from memory:")
	assert.Contains(t, out.String(), "first uuid duplicated: true")
}

func TestServeCommandRejectsInvalidPort(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	root := newRootCommand()
	root.SetArgs([]string{"serve", "--env-file", t.TempDir() + "/missing.env", "--port", "0"})

	err := root.ExecuteContext(t.Context())

	require.ErrorContains(t, err, "invalid configuration")
}
