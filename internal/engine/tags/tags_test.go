package tags_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellforge/internal/engine/tags"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

type TagSystemTestSuite struct {
	suite.Suite
}

func TestTagSystemSuite(t *testing.T) {
	suite.Run(t, new(TagSystemTestSuite))
}

func (s *TagSystemTestSuite) TestPrecedenceCoversDefinitions() {
	seen := make(map[entities.TagName]bool)
	for _, name := range tags.Precedence {
		s.False(seen[name], "duplicate precedence entry %s", name)
		seen[name] = true
		s.True(tags.IsKnown(name), "precedence entry %s has no definition", name)
	}
	for name := range tags.Definitions {
		s.True(seen[name], "definition %s has no precedence entry", name)
	}
}

func (s *TagSystemTestSuite) TestGetEffectiveTags() {
	testCases := []struct {
		name     string
		input    []entities.TagName
		expected []entities.TagName
	}{
		{
			name:     "nil input",
			input:    nil,
			expected: []entities.TagName{},
		},
		{
			name:     "no conflicts keeps order",
			input:    []entities.TagName{entities.TagFire, entities.TagCritical, entities.TagSynergy},
			expected: []entities.TagName{entities.TagFire, entities.TagCritical, entities.TagSynergy},
		},
		{
			name:     "higher precedence targeting wins",
			input:    []entities.TagName{entities.TagSingleTarget, entities.TagMultiTarget, entities.TagFire},
			expected: []entities.TagName{entities.TagMultiTarget, entities.TagFire},
		},
		{
			name:     "conflict declared on the loser side only",
			input:    []entities.TagName{entities.TagVampiric, entities.TagLifesteal},
			expected: []entities.TagName{entities.TagVampiric},
		},
		{
			name:     "removed tag does not remove others",
			input:    []entities.TagName{entities.TagBloodMagic, entities.TagReducedCost, entities.TagFreeCast},
			expected: []entities.TagName{entities.TagFreeCast},
		},
		{
			name:     "duplicates collapse",
			input:    []entities.TagName{entities.TagFire, entities.TagFire, entities.TagIce},
			expected: []entities.TagName{entities.TagFire},
		},
		{
			name:     "unknown tags are retained",
			input:    []entities.TagName{"Mystery", entities.TagAreaOfEffect, entities.TagSingleTarget},
			expected: []entities.TagName{"Mystery", entities.TagAreaOfEffect},
		},
		{
			name:     "conflict partner absent is a no-op",
			input:    []entities.TagName{entities.TagArmorIgnoring, entities.TagCritical},
			expected: []entities.TagName{entities.TagArmorIgnoring, entities.TagCritical},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tags.GetEffectiveTags(tc.input))
		})
	}
}

func (s *TagSystemTestSuite) TestIdempotent() {
	inputs := [][]entities.TagName{
		{entities.TagSingleTarget, entities.TagMultiTarget, entities.TagAreaOfEffect, entities.TagGlobalTarget},
		{entities.TagFire, entities.TagWater, entities.TagIce, entities.TagLight, entities.TagDark},
		{entities.TagPiercing, entities.TagTrueDamage, entities.TagArmorIgnoring, entities.TagLifesteal},
	}
	for _, in := range inputs {
		once := tags.GetEffectiveTags(in)
		s.Equal(once, tags.GetEffectiveTags(once))
	}
}

func (s *TagSystemTestSuite) TestMembershipIsOrderIndependent() {
	forward := []entities.TagName{
		entities.TagReducedCost, entities.TagFreeCast, entities.TagBloodMagic,
		entities.TagSingleTarget, entities.TagMultiTarget, entities.TagAreaOfEffect,
		entities.TagEarth, entities.TagAir, entities.TagPiercing, entities.TagTrueDamage,
	}
	reversed := make([]entities.TagName, len(forward))
	for i, t := range forward {
		reversed[len(forward)-1-i] = t
	}

	a := tags.GetEffectiveTags(forward)
	b := tags.GetEffectiveTags(reversed)
	s.ElementsMatch(a, b)
	s.Equal(4, len(a))
}

func (s *TagSystemTestSuite) TestDeterministic() {
	in := []entities.TagName{entities.TagChain, entities.TagRandomTarget, entities.TagSingleTarget}
	first := tags.GetEffectiveTags(in)
	for i := 0; i < 20; i++ {
		s.Equal(first, tags.GetEffectiveTags(in))
	}
}
