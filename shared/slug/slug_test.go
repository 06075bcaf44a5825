package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourism/shared/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain words", in: "Phobjikha Valley", want: "phobjikha-valley"},
		{name: "punctuation runs collapse", in: "  Tiger's Nest -- Hike!  ", want: "tiger-s-nest-hike"},
		{name: "diacritics transliterated", in: "Đà Lạt Café", want: "da-lat-cafe"},
		{name: "digits kept", in: "Day 3: Punakha", want: "day-3-punakha"},
		{name: "nothing usable", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.in))
		})
	}
}
