package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAggregateEmpty(t *testing.T) {
	agg := BuildAggregate(nil)

	assert.Equal(t, 0, agg.TotalGames)
	assert.Empty(t, agg.PMDistribution)
	assert.Empty(t, agg.GradeDistribution)
	assert.Zero(t, agg.AvgScore)
	assert.Nil(t, agg.AvgScores)
	assert.Empty(t, agg.RecentSessions)
}

func TestBuildAggregate(t *testing.T) {
	now := time.Now()
	records := []*SessionRecord{
		{SessionID: "s1", PMParty: "ALPHA", ScoreTotal: 80, ScoreCoalition: 25, ScoreDiversity: 20, ScoreCabinet: 8, ScoreEngagement: 5, Grade: "B", CreatedAt: now},
		{SessionID: "s2", PMParty: "ALPHA", ScoreTotal: 61, ScoreCoalition: 20, ScoreDiversity: 15, ScoreCabinet: 5, ScoreEngagement: 0, Grade: "C", CreatedAt: now.Add(-time.Minute)},
		{SessionID: "s3", PMParty: "BETA", ScoreTotal: 92, ScoreCoalition: 25, ScoreDiversity: 30, ScoreCabinet: 10, ScoreEngagement: 5, Grade: "A", CreatedAt: now.Add(-2 * time.Minute)},
	}

	agg := BuildAggregate(records)

	assert.Equal(t, 3, agg.TotalGames)
	assert.Equal(t, map[string]int{"ALPHA": 2, "BETA": 1}, agg.PMDistribution)
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1}, agg.GradeDistribution)

	require.NotNil(t, agg.AvgScores)
	assert.InDelta(t, 77.7, agg.AvgScores.Total, 0.01, "rounded to one decimal")
	assert.InDelta(t, 23.3, agg.AvgScores.Coalition, 0.01)
	assert.InDelta(t, 21.7, agg.AvgScores.Diversity, 0.01)
	assert.InDelta(t, 7.7, agg.AvgScores.Cabinet, 0.01)
	assert.InDelta(t, 3.3, agg.AvgScores.Engagement, 0.01)
	assert.Equal(t, agg.AvgScores.Total, agg.AvgScore)

	require.Len(t, agg.RecentSessions, 3)
	assert.Equal(t, "ALPHA", agg.RecentSessions[0].PMParty, "input order is preserved")
	assert.Equal(t, 80, agg.RecentSessions[0].ScoreTotal)
}

func TestBuildAggregateSkipsEmptyGrades(t *testing.T) {
	records := []*SessionRecord{
		{SessionID: "s1", PMParty: "ALPHA", ScoreTotal: 50, Grade: ""},
	}
	agg := BuildAggregate(records)
	assert.Empty(t, agg.GradeDistribution)
	assert.Equal(t, 1, agg.PMDistribution["ALPHA"])
}

func TestBuildAggregateRecentWindowCap(t *testing.T) {
	records := make([]*SessionRecord, RecentWindow+25)
	for i := range records {
		records[i] = &SessionRecord{SessionID: "s", PMParty: "ALPHA", Grade: "C"}
	}
	agg := BuildAggregate(records)
	assert.Len(t, agg.RecentSessions, RecentWindow)
	assert.Equal(t, RecentWindow+25, agg.TotalGames, "the window caps the list, not the count")
}
