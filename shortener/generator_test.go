package shortener

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorNext(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		expLen int
	}{
		{name: "default size", size: DefaultCodeBytes, expLen: 6},
		{name: "non positive size falls back to default", size: 0, expLen: 6},
		{name: "wider codes", size: 5, expLen: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(tt.size)
			assert.Equal(t, tt.expLen, g.Len())

			pattern := regexp.MustCompile("^[0-9a-f]+$")
			for i := 0; i < 100; i++ {
				code, err := g.Next()
				require.NoError(t, err)
				assert.Len(t, code, tt.expLen)
				assert.Regexp(t, pattern, code)
			}
		})
	}
}

func TestGeneratorFromReader(t *testing.T) {
	g := NewGeneratorFrom(bytes.NewReader([]byte{0xab, 0xc1, 0x23, 0x00, 0x0f}), 3)

	code, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, "abc123", code)

	_, err = g.Next()
	assert.Error(t, err)
}
