package entity

import (
	"math"
	"time"
)

// RecentWindow bounds the most-recent-sessions slice of the aggregate.
const RecentWindow = 500

// AverageScores carries the rounded column-wise averages over sessions
// that have a score. Absent entirely when no session qualifies.
type AverageScores struct {
	Total      float64 `json:"avg_total" firestore:"avgTotal"`
	Coalition  float64 `json:"avg_coalition" firestore:"avgCoalition"`
	Diversity  float64 `json:"avg_diversity" firestore:"avgDiversity"`
	Cabinet    float64 `json:"avg_cabinet" firestore:"avgCabinet"`
	Engagement float64 `json:"avg_engagement" firestore:"avgEngagement"`
}

// RecentSession is the trimmed per-session view in the aggregate.
type RecentSession struct {
	PMParty          string    `json:"pm_party"`
	Coalition        []string  `json:"coalition"`
	SelectedPolicies []string  `json:"selected_policies"`
	ScoreTotal       int       `json:"score_total"`
	Grade            string    `json:"grade"`
	CreatedAt        time.Time `json:"created_at"`
}

// Aggregate is the stats endpoint's read model.
type Aggregate struct {
	TotalGames        int             `json:"total_games"`
	PMDistribution    map[string]int  `json:"pm_distribution"`
	GradeDistribution map[string]int  `json:"grade_distribution"`
	AvgScore          float64         `json:"avg_score"`
	AvgScores         *AverageScores  `json:"avg_scores,omitempty"`
	RecentSessions    []RecentSession `json:"recent_sessions"`
	Message           string          `json:"message,omitempty"`
}

// BuildAggregate computes the read model over records ordered newest
// first. Zero records yield zero counts, empty maps, and no averages.
func BuildAggregate(records []*SessionRecord) *Aggregate {
	agg := &Aggregate{
		TotalGames:        len(records),
		PMDistribution:    make(map[string]int),
		GradeDistribution: make(map[string]int),
		RecentSessions:    make([]RecentSession, 0, min(len(records), RecentWindow)),
	}

	scored := 0
	var sumTotal, sumCoalition, sumDiversity, sumCabinet, sumEngagement int
	for _, r := range records {
		agg.PMDistribution[r.PMParty]++
		if r.Grade != "" {
			agg.GradeDistribution[r.Grade]++
		}
		sumTotal += r.ScoreTotal
		sumCoalition += r.ScoreCoalition
		sumDiversity += r.ScoreDiversity
		sumCabinet += r.ScoreCabinet
		sumEngagement += r.ScoreEngagement
		scored++

		if len(agg.RecentSessions) < RecentWindow {
			agg.RecentSessions = append(agg.RecentSessions, RecentSession{
				PMParty:          r.PMParty,
				Coalition:        r.Coalition,
				SelectedPolicies: r.SelectedPolicies,
				ScoreTotal:       r.ScoreTotal,
				Grade:            r.Grade,
				CreatedAt:        r.CreatedAt,
			})
		}
	}

	if scored > 0 {
		agg.AvgScores = &AverageScores{
			Total:      round1(float64(sumTotal) / float64(scored)),
			Coalition:  round1(float64(sumCoalition) / float64(scored)),
			Diversity:  round1(float64(sumDiversity) / float64(scored)),
			Cabinet:    round1(float64(sumCabinet) / float64(scored)),
			Engagement: round1(float64(sumEngagement) / float64(scored)),
		}
		agg.AvgScore = agg.AvgScores.Total
	}
	return agg
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
