package checkout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepAdvancesLinearly(t *testing.T) {
	require.Equal(t, StepPayment, StepShipping.Next())
	require.Equal(t, StepReview, StepPayment.Next())
	// continue at Review does not advance; the caller submits instead
	require.Equal(t, StepReview, StepReview.Next())
}

func TestStepBackStopsAtShipping(t *testing.T) {
	require.Equal(t, StepPayment, StepReview.Prev())
	require.Equal(t, StepShipping, StepPayment.Prev())
	require.Equal(t, StepShipping, StepShipping.Prev())
}

func TestStepValidity(t *testing.T) {
	require.True(t, StepShipping.Valid())
	require.True(t, StepReview.Valid())
	require.False(t, Step(0).Valid())
	require.False(t, Step(4).Valid())
}
