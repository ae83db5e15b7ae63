package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, s := range Statuses() {
		parsed, err := Parse(string(s))
		assert.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := Parse("unknown")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
	_, err = Parse("Paid")
	assert.Error(t, err, "statuses are case sensitive")
}

func TestCanTransitionTo(t *testing.T) {
	allowed := map[Status][]Status{
		New:        {New, Paid, Processing, Cancelled},
		Paid:       {Paid, Processing, Cancelled},
		Processing: {Processing, Shipped, Cancelled},
		Shipped:    {Shipped, Delivered},
		Delivered:  {Delivered},
		Cancelled:  {Cancelled},
	}

	for _, from := range Statuses() {
		for _, to := range Statuses() {
			expected := false
			for _, n := range allowed[from] {
				if n == to {
					expected = true
				}
			}
			assert.Equalf(
				t,
				expected,
				from.CanTransitionTo(to),
				"transition from=%s to=%s", from, to,
			)
		}
	}
}

func TestCanTransitionToUnknown(t *testing.T) {
	// a status outside the table allows only its self-loop
	assert.True(t, Status("unknown").CanTransitionTo(Status("unknown")))
	assert.False(t, Status("unknown").CanTransitionTo(Paid))
	assert.False(t, New.CanTransitionTo(Status("unknown")))
	assert.False(t, Status("").CanTransitionTo(New))
	assert.True(t, Status("").CanTransitionTo(Status("")))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "New", New.Label())
	assert.Equal(t, "Cancelled", Cancelled.Label())
	assert.Equal(t, "unknown", Status("unknown").Label())
}
