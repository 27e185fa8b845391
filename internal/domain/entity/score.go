package entity

import "math"

// Component ceilings. Stability + dimensions + alignment + discipline +
// expertise + engagement + balance bonus construct a 100-point scale.
const (
	maxStability  = 25
	maxDimension  = 10
	maxAlignment  = 15
	maxDiscipline = 10
	maxExpertise  = 10
	maxEngagement = 5
	balanceBonus  = 5

	// Stability band, in percent of house seats.
	stabilityFloorPct   = 50.0
	stabilityOptimalLo  = 57.0
	stabilityOptimalHi  = 66.0
	stabilityDangerPct  = 75.0

	// Dimension saturation: selections past this count add nothing.
	dimensionSaturation = 4
	// Every dimension needs this many selections for the balance bonus.
	balanceMinimum = 2

	// Overspend: linear penalty past the ceiling.
	overspendCeiling = 12
	overspendPerUnit = 2
)

// ScoreResult is the report card of one play-through. Pure function
// output, never mutated after computation.
type ScoreResult struct {
	Stability  int               `json:"stability" firestore:"stability"`
	Dimensions map[Dimension]int `json:"dimensions" firestore:"dimensions"`
	Alignment  int               `json:"alignment" firestore:"alignment"`
	Discipline int               `json:"discipline" firestore:"discipline"`
	Expertise  int               `json:"expertise" firestore:"expertise"`
	Engagement int               `json:"engagement" firestore:"engagement"`
	Balance    int               `json:"balance" firestore:"balance"`
	Penalty    int               `json:"penalty" firestore:"penalty"`
	Total      int               `json:"total" firestore:"total"`
	Grade      string            `json:"grade" firestore:"grade"`
}

// DimensionTotal sums the policy-dimension components, bonus included.
func (r ScoreResult) DimensionTotal() int {
	total := r.Balance
	for _, v := range r.Dimensions {
		total += v
	}
	return total
}

// ComputeScore grades the play-through. Deterministic over the game state:
// identical inputs always produce identical results.
func ComputeScore(g *Game) ScoreResult {
	selected := g.SelectedPolicies()

	result := ScoreResult{
		Stability:  stabilityScore(g.CoalitionSeats()),
		Dimensions: dimensionScores(selected),
		Alignment:  alignmentScore(g, selected),
		Discipline: disciplineScore(len(selected)),
		Expertise:  expertiseScore(g),
		Engagement: engagementScore(g),
	}

	if balanced(selected) {
		result.Balance = balanceBonus
	}
	if len(selected) > overspendCeiling {
		result.Penalty = overspendPerUnit * (len(selected) - overspendCeiling)
	}

	total := result.Stability + result.Alignment + result.Discipline +
		result.Expertise + result.Engagement + result.Balance - result.Penalty
	for _, v := range result.Dimensions {
		total += v
	}
	if total < 0 {
		total = 0
	}
	result.Total = total
	result.Grade = gradeFor(total)
	return result
}

// stabilityScore is piecewise linear over the seat percentage: zero up to
// the bare majority, ramping to the full score across (50, 57), flat on
// the optimal band [57, 66], ramping back to zero across (66, 75), and
// zero in the danger zone at 75 and beyond.
func stabilityScore(seats int) int {
	pct := float64(seats) / float64(TotalSeats) * 100
	switch {
	case pct < stabilityFloorPct:
		return 0
	case pct < stabilityOptimalLo:
		return roundScore(maxStability * (pct - stabilityFloorPct) / (stabilityOptimalLo - stabilityFloorPct))
	case pct <= stabilityOptimalHi:
		return maxStability
	case pct < stabilityDangerPct:
		return roundScore(maxStability * (stabilityDangerPct - pct) / (stabilityDangerPct - stabilityOptimalHi))
	default:
		return 0
	}
}

func dimensionScores(selected []Policy) map[Dimension]int {
	counts := dimensionCounts(selected)
	scores := make(map[Dimension]int, len(Dimensions))
	for _, d := range Dimensions {
		n := counts[d]
		if n > dimensionSaturation {
			n = dimensionSaturation
		}
		scores[d] = roundScore(float64(maxDimension) * float64(n) / dimensionSaturation)
	}
	return scores
}

func dimensionCounts(selected []Policy) map[Dimension]int {
	counts := make(map[Dimension]int, len(Dimensions))
	for _, p := range selected {
		counts[DimensionOf(p.Category)]++
	}
	return counts
}

// balanced is a logical AND across buckets, not a weighted average: every
// dimension must independently reach the minimum.
func balanced(selected []Policy) bool {
	if len(selected) == 0 {
		return false
	}
	counts := dimensionCounts(selected)
	for _, d := range Dimensions {
		if counts[d] < balanceMinimum {
			return false
		}
	}
	return true
}

func alignmentScore(g *Game, selected []Policy) int {
	if len(selected) == 0 {
		return 0
	}
	aligned := 0
	for _, p := range selected {
		if g.InCoalition(p.Party) {
			aligned++
		}
	}
	return roundScore(float64(maxAlignment) * float64(aligned) / float64(len(selected)))
}

// disciplineScore models spending discipline: fewer selections score
// higher, as a step function of the total count.
func disciplineScore(count int) int {
	switch {
	case count <= 6:
		return maxDiscipline
	case count <= 8:
		return 7
	case count <= PolicyBudget:
		return 4
	default:
		return 0
	}
}

func expertiseScore(g *Game) int {
	if len(g.ministries) == 0 {
		return 0
	}
	matches := 0
	for _, m := range g.ministries {
		partyID, ok := g.Cabinet[m.ID]
		if !ok {
			continue
		}
		if party := g.parties.FindByID(partyID); party != nil && party.HasExpertise(m.Key) {
			matches++
		}
	}
	return roundScore(float64(maxExpertise) * float64(matches) / float64(len(g.ministries)))
}

func engagementScore(g *Game) int {
	if g.QuestionCount() > 0 {
		return maxEngagement
	}
	return 0
}

func gradeFor(total int) string {
	switch {
	case total >= 90:
		return "A"
	case total >= 75:
		return "B"
	case total >= 60:
		return "C"
	case total >= 40:
		return "D"
	default:
		return "F"
	}
}

func roundScore(v float64) int {
	return int(math.Round(v))
}
