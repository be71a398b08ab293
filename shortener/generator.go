package shortener

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// DefaultCodeBytes yields six character codes.
const DefaultCodeBytes = 3

// Generator draws random fixed-width hex codes.
type Generator struct {
	rand io.Reader
	size int
}

// NewGenerator returns a Generator reading size bytes per code from
// crypto/rand.
func NewGenerator(size int) *Generator {
	return NewGeneratorFrom(rand.Reader, size)
}

// NewGeneratorFrom is NewGenerator with an explicit entropy source.
func NewGeneratorFrom(r io.Reader, size int) *Generator {
	if size <= 0 {
		size = DefaultCodeBytes
	}
	return &Generator{rand: r, size: size}
}

// Len is the number of characters in every generated code.
func (g *Generator) Len() int {
	return hex.EncodedLen(g.size)
}

func (g *Generator) Next() (string, error) {
	b := make([]byte, g.size)
	if _, err := io.ReadFull(g.rand, b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
