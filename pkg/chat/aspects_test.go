package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAspectsSingle(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		query  string
		aspect string
	}{
		{"where is theme show", AspectVenue},
		{"venu of theme show", AspectVenue},
		{"what time does it start", AspectTime},
		{"entry fee for robo wars", AspectAmount},
		{"how many slots are left", AspectSlots},
		{"poster of battle of bands", AspectPoster},
		{"cordinator of theme show", AspectCoordinator},
		{"fone number for robo wars", AspectCoordinator},
	}
	for _, tt := range tests {
		aspects := c.ExtractAspects(tt.query)
		assert.True(t, aspects.Has(tt.aspect), "query %q should raise %s", tt.query, tt.aspect)
		assert.Equal(t, 1, aspects.Count(), "query %q", tt.query)
	}
}

func TestExtractAspectsWhenOverlaps(t *testing.T) {
	c := testClassifier()
	aspects := c.ExtractAspects("when is theme show")
	assert.True(t, aspects.Has(AspectTime))
	assert.True(t, aspects.Has(AspectDate))
	assert.Equal(t, 2, aspects.Count())
}

func TestExtractAspectsNone(t *testing.T) {
	c := testClassifier()
	aspects := c.ExtractAspects("theme show")
	assert.Equal(t, 0, aspects.Count())
	assert.Equal(t, "", aspects.Key())
}

func TestAspectSetKeyCanonical(t *testing.T) {
	assert.Equal(t, "time+venue", NewAspectSet(AspectVenue, AspectTime).Key())
	assert.Equal(t, "date+time+venue", NewAspectSet(AspectTime, AspectVenue, AspectDate).Key())
	assert.Equal(t, "venue", NewAspectSet(AspectVenue).Key())
}
