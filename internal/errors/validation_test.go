package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

type missingThing struct {
	id string
}

func (m *missingThing) Error() string {
	return fmt.Sprintf("there is no such thing %s", m.id)
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldErrorf("era", "must be one of %s", "EA, MA, LA")

	s.True(ve.HasErrors())
	s.Equal("validation failed: era: must be one of EA, MA, LA; name: is required", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta[errors.MetaValidationErrors])
}

func (s *ValidationTestSuite) TestBuilderAggregatesFields() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("dominion_id", "must be positive, got %d", -1).
		RequiredField("era")

	err := vb.Build()
	s.Require().NotNil(err)
	s.True(errors.IsInvalidArgument(err))
	s.Len(errors.GetFieldErrors(err), 3)
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.False(vb.HasErrors())
	s.Nil(vb.Build())
}

func (s *ValidationTestSuite) TestFieldErrorKeepsTypedCauses() {
	vb := errors.NewValidationBuilder()
	vb.FieldError("units[0].catalog_id", &missingThing{id: "42"})
	vb.FieldError("units[1].catalog_id", &missingThing{id: "43"})

	err := vb.Build()
	s.Require().NotNil(err)
	s.Equal(map[string][]string{
		"units[0].catalog_id": {"there is no such thing 42"},
		"units[1].catalog_id": {"there is no such thing 43"},
	}, errors.GetFieldErrors(err))

	var missing *missingThing
	s.Require().True(errors.As(err, &missing))
	s.Equal("42", missing.id)
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	testCases := []struct {
		name      string
		apply     func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required present", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("f", "x", vb) }, false},
		{"required whitespace", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("f", "   ", vb) }, true},
		{"positive", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("f", 3, vb) }, false},
		{"zero", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("f", 0, vb) }, true},
		{"enum allowed", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("f", "MA", []string{"EA", "MA"}, vb) }, false},
		{"enum rejected", func(vb *errors.ValidationBuilder) { errors.ValidateEnum("f", "XA", []string{"EA", "MA"}, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
