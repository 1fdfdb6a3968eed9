package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTicks(t *testing.T) {
	uc := NewTicksUseCase()

	res, err := uc.GetTicks(GetTicksParams{
		From: "2016-02-14T03:17:27Z",
		To:   "2016-02-14T05:43:17Z",
		Unit: "hours",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2016, 2, 14, 3, 0, 0, 0, time.UTC), res.From)
	assert.Equal(t, time.Date(2016, 2, 14, 5, 0, 0, 0, time.UTC), res.To)
	assert.Equal(t, "hours", res.Unit)
	assert.Equal(t, 3, res.Count)
	require.Len(t, res.Ticks, 3)
	assert.Equal(t, res.From, res.Ticks[0])
	assert.Equal(t, res.To, res.Ticks[2])
}

func TestGetTicksReversedArguments(t *testing.T) {
	uc := NewTicksUseCase()

	res, err := uc.GetTicks(GetTicksParams{
		From: "2016-02-14T05:43:17Z",
		To:   "2016-02-14T03:17:27Z",
		Unit: "hours",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2016, 2, 14, 3, 0, 0, 0, time.UTC), res.From)
	assert.Equal(t, time.Date(2016, 2, 14, 5, 0, 0, 0, time.UTC), res.To)
}

func TestGetTicksInvalidTimes(t *testing.T) {
	uc := NewTicksUseCase()

	_, err := uc.GetTicks(GetTicksParams{From: "not a time"})
	assert.Error(t, err)

	_, err = uc.GetTicks(GetTicksParams{To: "also not a time"})
	assert.Error(t, err)
}

func TestGetTicksUnknownUnitFallsBack(t *testing.T) {
	uc := NewTicksUseCase()

	res, err := uc.GetTicks(GetTicksParams{
		From: "2016-02-14T03:17:27Z",
		To:   "2016-02-14T05:43:17Z",
		Unit: "fortnights",
	})
	require.NoError(t, err)
	assert.Equal(t, "hours", res.Unit)
}

func TestGetTicksLimitClamping(t *testing.T) {
	uc := NewTicksUseCase()

	// two hours of seconds is 7201 ticks; a small limit trims the output
	res, err := uc.GetTicks(GetTicksParams{
		From:  "2016-02-14T03:00:00Z",
		To:    "2016-02-14T05:00:00Z",
		Unit:  "seconds",
		Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Count)
	require.Len(t, res.Ticks, 10)
	assert.Equal(t, res.From, res.Ticks[0])
}
