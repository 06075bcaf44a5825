package reference

//go:generate go run go.uber.org/mock/mockgen -source=./reference.go -destination=../mocks/reference_mock.go -package=mocks

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces human readable booking references such as TRIP-7X9Y2Z.
type Generator interface {
	Generate(length int) (string, error)
}

type generatorImpl struct {
	prefix string
}

func New(prefix string) Generator {
	return &generatorImpl{prefix: prefix}
}

func (g *generatorImpl) Generate(length int) (string, error) {
	var builder strings.Builder

	builder.Grow(len(g.prefix) + length)
	builder.WriteString(g.prefix)

	limit := big.NewInt(int64(len(alphabet)))

	for range length {
		index, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}

		builder.WriteByte(alphabet[index.Int64()])
	}

	return builder.String(), nil
}
