package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name", input: "Shirt", expected: "shirt"},
		{name: "name with spaces", input: "Blue Jeans", expected: "blue-jeans"},
		{name: "special characters collapse", input: "T-Shirt  (XL)!", expected: "t-shirt-xl"},
		{name: "leading and trailing junk", input: "  Shirt  ", expected: "shirt"},
		{name: "digits survive", input: "Shirt 2024", expected: "shirt-2024"},
		{name: "empty input", input: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
