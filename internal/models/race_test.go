package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRace() *Race {
	return &Race{
		Track:      "Tokyo",
		Year:       2023,
		KaisaiDate: 512,
		RaceNumber: 11,
		Surface:    SurfaceTurf,
		Distance:   2400,
		Horses: []Horse{
			{Number: 1, Odds: 2.5, Popularity: 1, ActualRank: 2, PredictedRank: 1, PredictedScore: 0.35},
			{Number: 2, Odds: 4.0, Popularity: 2, ActualRank: 1, PredictedRank: 3, PredictedScore: 0.20},
			{Number: 3, Odds: 8.5, Popularity: 3, ActualRank: 3, PredictedRank: 2, PredictedScore: 0.15},
			{Number: 4, Odds: 25.0, Popularity: 4, ActualRank: 4, PredictedRank: 4, PredictedScore: 0.05},
		},
	}
}

func TestRaceID(t *testing.T) {
	race := testRace()
	assert.Equal(t, "Tokyo_2023_0512_11", race.ID())
}

func TestParseSurface(t *testing.T) {
	tests := []struct {
		input   string
		want    Surface
		wantErr bool
	}{
		{"芝", SurfaceTurf, false},
		{"turf", SurfaceTurf, false},
		{"ダート", SurfaceDirt, false},
		{"ダ", SurfaceDirt, false},
		{"dirt", SurfaceDirt, false},
		{"snow", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSurface(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestHorseByNumber(t *testing.T) {
	race := testRace()

	horse := race.HorseByNumber(3)
	require.NotNil(t, horse)
	assert.Equal(t, 8.5, horse.Odds)

	assert.Nil(t, race.HorseByNumber(99))
}

func TestTopPredicted(t *testing.T) {
	race := testRace()

	top, err := race.TopPredicted(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].Number)
	assert.Equal(t, 3, top[1].Number)
}

func TestTopPredictedAmbiguousRanking(t *testing.T) {
	race := testRace()
	race.Horses[1].PredictedRank = 1 // duplicates horse 1's rank

	top, err := race.TopPredicted(2)
	assert.ErrorIs(t, err, ErrAmbiguousRanking)
	assert.Nil(t, top)
}

func TestTopPredictedClampsN(t *testing.T) {
	race := testRace()

	top, err := race.TopPredicted(10)
	require.NoError(t, err)
	assert.Len(t, top, 4)

	top, err = race.TopPredicted(0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestTopByPopularityAndOdds(t *testing.T) {
	race := testRace()

	byPop := race.TopByPopularity(2)
	require.Len(t, byPop, 2)
	assert.Equal(t, 1, byPop[0].Number)
	assert.Equal(t, 2, byPop[1].Number)

	byOdds := race.TopByOdds(1)
	require.Len(t, byOdds, 1)
	assert.Equal(t, 1, byOdds[0].Number)
}

func TestActualTop(t *testing.T) {
	race := testRace()

	top := race.ActualTop(3)
	require.Len(t, top, 3)
	assert.Equal(t, 2, top[0].Number)
	assert.Equal(t, 1, top[1].Number)
	assert.Equal(t, 3, top[2].Number)
}

func TestHorseValidate(t *testing.T) {
	assert.NoError(t, Horse{Number: 1, Odds: 1.0}.Validate())
	assert.ErrorIs(t, Horse{Number: 0, Odds: 2.0}.Validate(), ErrInvalidHorse)
	assert.ErrorIs(t, Horse{Number: 1, Odds: 0.9}.Validate(), ErrInvalidHorse)
}

func TestHorseExpectedValue(t *testing.T) {
	h := Horse{Number: 1, Odds: 4.0, PredictedScore: 0.3}
	assert.InDelta(t, 1.2, h.ExpectedValue(), 1e-9)
}
