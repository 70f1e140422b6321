package cbe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpScalar(t *testing.T) {
	buf := make([]byte, 64)
	enc, err := NewEncoder(buf)
	require.NoError(t, err)
	require.True(t, enc.AddInteger(true, 7).OK())
	require.True(t, enc.End().OK())

	var out bytes.Buffer
	require.NoError(t, Dump(&out, buf[:enc.BufferOffset()]))
	assert.Equal(t, "7\n", out.String())
}

func TestDumpNestedContainers(t *testing.T) {
	buf := make([]byte, 256)
	enc, err := NewEncoder(buf)
	require.NoError(t, err)
	require.True(t, enc.ListBegin().OK())
	require.True(t, enc.AddInteger(true, 1).OK())
	require.True(t, enc.AddNil().OK())
	require.True(t, enc.ContainerEnd().OK())
	require.True(t, enc.End().OK())

	var out bytes.Buffer
	require.NoError(t, Dump(&out, buf[:enc.BufferOffset()]))
	assert.Equal(t, "list {\n  1\n  nil\n}\n", out.String())
}
