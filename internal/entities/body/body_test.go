package body_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaroslavtyc/drd-plus-person/internal/entities/body"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

func TestBody_Limits(t *testing.T) {
	height, err := body.NewHeightInCm(180)
	require.NoError(t, err)
	assert.Equal(t, 180, height.Value())

	_, err = body.NewHeightInCm(20)
	assert.True(t, errors.IsOutOfRange(err))

	age, err := body.NewAge(25)
	require.NoError(t, err)
	assert.Equal(t, 25, age.Value())

	_, err = body.NewAge(0)
	assert.True(t, errors.IsOutOfRange(err))

	adjustment, err := body.NewWeightAdjustment(-3)
	require.NoError(t, err)
	assert.Equal(t, -3, adjustment.Value())

	_, err = body.NewWeightAdjustment(11)
	assert.True(t, errors.IsOutOfRange(err))
}
