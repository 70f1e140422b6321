package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF8(t *testing.T) {
	assert.True(t, UTF8([]byte("hello")))
	assert.False(t, UTF8([]byte{0xff, 0xfe}))
	assert.False(t, UTF8([]byte{0xEF, 0xBB, 0xBF, 'a'}))
}

func TestComment(t *testing.T) {
	assert.True(t, Comment([]byte("line one\nline two\ttabbed")))
	assert.False(t, Comment([]byte{0x01}))
	assert.False(t, Comment([]byte{0x7f}))
}

func TestURI(t *testing.T) {
	assert.True(t, URI([]byte("https://example.com/path?q=1&x=2")))
	assert.True(t, URI([]byte("a%20b")))
	assert.False(t, URI([]byte("a b")))
	assert.False(t, URI([]byte("a%2")))
	assert.False(t, URI([]byte("a%zz")))
}
