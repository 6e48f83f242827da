package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellforge/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationMessageIsSorted() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Field("icon", "is invalid").
		Fieldf("mana_cost", "must be at least %d", 1).
		Field("mana_cost", "must be a whole number")

	s.Assert().True(vb.HasErrors())
	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	s.Assert().Equal(
		"validation failed: icon: is invalid; mana_cost: must be at least 1, must be a whole number; name: is required",
		errors.GetMessage(err))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 20).
		RequiredField("damage_type").
		InvalidField("scales_with", "not a core attribute")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", 25, 1, 20, vb)
	errors.ValidateRange("body", 15, 1, 18, vb)
	errors.ValidateRange("hp", 0, 1, 100, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["level"][0], "must be between 1 and 20")
	s.Assert().Contains(validationErrors["hp"][0], "must be between 1 and 100")
	s.Assert().NotContains(validationErrors, "body")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	elements := []string{"Fire", "Ice", "Lightning", "Earth"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("weakness", "Plasma", elements, vb)
	errors.ValidateEnum("resistance", "Ice", elements, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["weakness"][0], "must be one of: Fire, Ice, Lightning, Earth")
	s.Assert().NotContains(validationErrors, "resistance")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	// Simulate validating a start encounter request
	type StartInput struct {
		PlayerID   string
		Theme      string
		EnemyCount int
		Attributes map[string]int
	}

	input := StartInput{
		PlayerID:   "",
		Theme:      "volcano",
		EnemyCount: 5,
		Attributes: map[string]int{
			"body":   0,
			"mind":   3,
			"reflex": 2,
		},
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("player_id", input.PlayerID, vb)

	allowedThemes := []string{"cave", "swamp", "ruins"}
	errors.ValidateEnum("theme", input.Theme, allowedThemes, vb)

	errors.ValidateRange("enemy_count", input.EnemyCount, 1, 3, vb)

	for attribute, value := range input.Attributes {
		errors.ValidateRange(attribute, value, 1, 20, vb)
	}

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "player_id")
	s.Assert().Contains(validationErrors, "theme")
	s.Assert().Contains(validationErrors, "enemy_count")
	s.Assert().Contains(validationErrors, "body")
	s.Assert().NotContains(validationErrors, "mind")
}
