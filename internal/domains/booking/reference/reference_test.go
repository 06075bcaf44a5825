package reference_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/internal/domains/booking/reference"
)

func TestGenerate(t *testing.T) {
	generator := reference.New("TRIP-")

	short := regexp.MustCompile(`^TRIP-[A-Z0-9]{6}$`)
	wide := regexp.MustCompile(`^TRIP-[A-Z0-9]{10}$`)

	seen := map[string]struct{}{}

	for range 200 {
		ref, err := generator.Generate(6)
		require.NoError(t, err)
		assert.Regexp(t, short, ref)

		seen[ref] = struct{}{}
	}

	assert.Greater(t, len(seen), 190)

	ref, err := generator.Generate(10)
	require.NoError(t, err)
	assert.Regexp(t, wide, ref)
}
