package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-rewards/internal/httperr"
)

func TestCanComplete(t *testing.T) {
	assert.NoError(t, CanComplete(StatusScheduled))

	err := CanComplete(StatusCompleted)
	assert.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusScheduled, InitialStatus())
}
