package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s)

	s, err = ParseStatus("  APPROVED ")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, s)

	_, err = ParseStatus("DRAFT")
	assert.Error(t, err)
}

func TestCheckTransition_AllowedPaths(t *testing.T) {
	assert.NoError(t, CheckTransition(StatusPending, StatusApproved, ""))
	assert.NoError(t, CheckTransition(StatusApproved, StatusCompleted, ""))
	assert.NoError(t, CheckTransition(StatusPending, StatusRejected, "duplicate request"))
}

func TestCheckTransition_TerminalStatesAreFinal(t *testing.T) {
	targets := []Status{StatusPending, StatusApproved, StatusCompleted, StatusRejected}

	for _, from := range []Status{StatusCompleted, StatusRejected} {
		for _, to := range targets {
			err := CheckTransition(from, to, "some reason")
			assert.Error(t, err, "from %s to %s should be refused", from, to)
		}
	}
}

func TestCheckTransition_NoSkippingOrReversing(t *testing.T) {
	assert.Error(t, CheckTransition(StatusPending, StatusCompleted, ""))
	assert.Error(t, CheckTransition(StatusApproved, StatusPending, ""))
	assert.Error(t, CheckTransition(StatusApproved, StatusRejected, "too late"))
}

func TestCheckTransition_SameState(t *testing.T) {
	err := CheckTransition(StatusPending, StatusPending, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already")
}

func TestCheckTransition_RejectRequiresReason(t *testing.T) {
	assert.Error(t, CheckTransition(StatusPending, StatusRejected, ""))
	assert.Error(t, CheckTransition(StatusPending, StatusRejected, "   \t  "))
	assert.NoError(t, CheckTransition(StatusPending, StatusRejected, " over budget "))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}
