package resources_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellforge/internal/engine/resources"
	"github.com/KirkDiggler/spellforge/internal/entities"
)

type ResourceManagerTestSuite struct {
	suite.Suite
	player *entities.Player
}

func TestResourceManagerSuite(t *testing.T) {
	suite.Run(t, new(ResourceManagerTestSuite))
}

func (s *ResourceManagerTestSuite) SetupTest() {
	s.player = &entities.Player{
		ID:        "player-1",
		Resources: map[string]int{"ember": 3, "herb": 5},
	}
}

func (s *ResourceManagerTestSuite) TestCheckResources() {
	s.True(resources.CheckResources(s.player, []entities.ResourceCost{
		{ResourceID: "ember", Quantity: 3},
		{ResourceID: "herb", Quantity: 1},
	}).Affordable)

	check := resources.CheckResources(s.player, []entities.ResourceCost{
		{ResourceID: "ember", Quantity: 2},
		{ResourceID: "ember", Quantity: 2},
		{ResourceID: "crystal", Quantity: 1},
	})
	s.False(check.Affordable)
	s.Equal(map[string]int{"ember": 1, "crystal": 1}, check.Missing)
}

func (s *ResourceManagerTestSuite) TestDeductAllOrNothing() {
	s.Run("affordable", func() {
		result := resources.DeductResources(s.player, []entities.ResourceCost{
			{ResourceID: "ember", Quantity: 3},
			{ResourceID: "herb", Quantity: 2},
		})

		s.Require().True(result.Success)
		s.Equal(map[string]int{"herb": 3}, result.UpdatedPlayer.Resources)
		s.Equal(map[string]int{"ember": 3, "herb": 5}, s.player.Resources, "input is untouched")
	})

	s.Run("one line short", func() {
		result := resources.DeductResources(s.player, []entities.ResourceCost{
			{ResourceID: "herb", Quantity: 1},
			{ResourceID: "ember", Quantity: 4},
		})

		s.False(result.Success)
		s.Nil(result.UpdatedPlayer)
		s.Contains(result.Message, "1 more ember")
		s.Equal(map[string]int{"ember": 3, "herb": 5}, s.player.Resources)
	})

	s.Run("negative quantity rejected", func() {
		result := resources.DeductResources(s.player, []entities.ResourceCost{
			{ResourceID: "herb", Quantity: -2},
		})
		s.False(result.Success)
		s.Nil(result.UpdatedPlayer)
	})
}

func (s *ResourceManagerTestSuite) TestAddResources() {
	resources.AddResources(s.player, []entities.ResourceDrop{
		{ResourceID: "herb", Quantity: 2},
		{ResourceID: "fang", Quantity: 1},
		{ResourceID: "ignored", Quantity: 0},
	})
	s.Equal(map[string]int{"ember": 3, "herb": 7, "fang": 1}, s.player.Resources)
}
