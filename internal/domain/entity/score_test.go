package entity

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoringParties() PartyList {
	return PartyList{
		{ID: "ALPHA", Name: "Alpha", Seats: 170, Color: "#f00", Policies: map[string]string{"finance": "x", "general": "x"}},
		{ID: "BETA", Name: "Beta", Seats: 120, Color: "#0f0", Policies: map[string]string{"health": "x", "education": "x"}},
		{ID: "GAMMA", Name: "Gamma", Seats: 90, Color: "#00f", Policies: map[string]string{"defense": "x"}},
		{ID: "DELTA", Name: "Delta", Seats: 60, Color: "#ff0", Policies: map[string]string{"transport": "x"}},
		{ID: "EPSILON", Name: "Epsilon", Seats: 40, Color: "#0ff", Policies: map[string]string{"energy": "x"}},
		{ID: "ZETA", Name: "Zeta", Seats: 20, Color: "#f0f", Policies: map[string]string{"interior": "x"}},
	}
}

func scoringMinistries() MinistryList {
	return MinistryList{
		{ID: "PM", Name: "Prime Minister", Key: "general"},
		{ID: "MOF", Name: "Finance", Key: "finance"},
		{ID: "MOD", Name: "Defense", Key: "defense"},
		{ID: "MOPH", Name: "Health", Key: "health"},
	}
}

func scoringPolicies() PolicyList {
	return PolicyList{
		{ID: "p1", Title: "Wage reform", Party: "ALPHA", Category: "economy"},
		{ID: "p2", Title: "Startup fund", Party: "ALPHA", Category: "tech"},
		{ID: "p3", Title: "Welfare uplift", Party: "BETA", Category: "social"},
		{ID: "p4", Title: "School upgrade", Party: "BETA", Category: "education"},
		{ID: "p5", Title: "Conscription reform", Party: "GAMMA", Category: "security"},
		{ID: "p6", Title: "Charter rewrite", Party: "GAMMA", Category: "politics"},
		{ID: "p7", Title: "Clean air act", Party: "DELTA", Category: "environment"},
		{ID: "p8", Title: "Court reform", Party: "DELTA", Category: "justice"},
		{ID: "p9", Title: "Universal care", Party: "EPSILON", Category: "health"},
		{ID: "p10", Title: "Local budgets", Party: "ZETA", Category: "interior"},
	}
}

func newScoringGame(t *testing.T, coalition []string) *Game {
	t.Helper()
	g := NewGame(scoringParties(), scoringMinistries(), scoringPolicies())
	require.NoError(t, g.Advance())
	for _, id := range coalition {
		require.NoError(t, g.ToggleParty(id))
	}
	return g
}

func TestStabilityScore(t *testing.T) {
	tests := []struct {
		name  string
		seats int
		want  int
	}{
		{"below majority", 245, 0},
		{"bare majority", 250, 0},
		{"thin majority 52pct", 260, 7},
		{"optimal band low edge 57pct", 285, 25},
		{"optimal band 60pct", 300, 25},
		{"optimal band high edge 66pct", 330, 25},
		{"oversized 70pct", 350, 14},
		{"oversized 74pct", 370, 3},
		{"danger zone 75pct", 375, 0},
		{"super majority 80pct", 400, 0},
		{"near total 90pct", 450, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stabilityScore(tt.seats))
		})
	}
}

func TestDisciplineScore(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 10},
		{3, 10},
		{6, 10},
		{7, 7},
		{8, 7},
		{9, 4},
		{10, 4},
		{11, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, disciplineScore(tt.count), "count=%d", tt.count)
	}
}

func TestDimensionScoresSaturate(t *testing.T) {
	policies := make([]Policy, 0, 6)
	for i := 0; i < 6; i++ {
		policies = append(policies, Policy{ID: string(rune('a' + i)), Category: "economy"})
	}
	scores := dimensionScores(policies)
	assert.Equal(t, maxDimension, scores[DimensionEconomic])
	assert.Equal(t, 0, scores[DimensionSocial])
	assert.Equal(t, 0, scores[DimensionSecurity])
}

func TestBalancedRequiresEveryDimension(t *testing.T) {
	catalog := scoringPolicies()

	balancedPick := []Policy{
		catalog[0], catalog[1], // economic
		catalog[2], catalog[3], // social
		catalog[4], catalog[5], // security
	}
	assert.True(t, balanced(balancedPick))

	// One dimension below the minimum kills the bonus even when the
	// others are far above it.
	lopsided := []Policy{
		catalog[0], catalog[1],
		catalog[2], catalog[3], catalog[6], catalog[8],
		catalog[4],
	}
	assert.False(t, balanced(lopsided))

	assert.False(t, balanced(nil))
}

func TestComputeScoreOptimalRun(t *testing.T) {
	// ALPHA + BETA = 290 seats = 58 percent, inside the optimal band.
	g := newScoringGame(t, []string{"ALPHA", "BETA", "GAMMA"})
	require.NoError(t, g.Advance())

	for _, id := range []string{"p1", "p2", "p3", "p4", "p5", "p6"} {
		require.NoError(t, g.SelectPolicy(id))
	}
	require.NoError(t, g.Advance())

	require.NoError(t, g.AssignMinister("PM", "ALPHA"))
	require.NoError(t, g.AssignMinister("MOF", "ALPHA"))
	require.NoError(t, g.AssignMinister("MOD", "GAMMA"))
	require.NoError(t, g.AssignMinister("MOPH", "BETA"))
	require.NoError(t, g.Advance())
	require.NoError(t, g.AskQuestion("นโยบายเศรษฐกิจเป็นอย่างไร"))

	score := ComputeScore(g)
	assert.Equal(t, 0, score.Stability, "380 seats is deep in the danger zone")

	// Rebuild with a lean coalition to hit the optimal stability band.
	g2 := newScoringGame(t, []string{"ALPHA", "BETA"})
	require.NoError(t, g2.Advance())
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		require.NoError(t, g2.SelectPolicy(id))
	}
	require.NoError(t, g2.Advance())
	require.NoError(t, g2.AssignMinister("PM", "ALPHA"))
	require.NoError(t, g2.AssignMinister("MOF", "ALPHA"))
	require.NoError(t, g2.AssignMinister("MOPH", "BETA"))
	require.NoError(t, g2.Advance())
	require.NoError(t, g2.AskQuestion("ค่าแรงขั้นต่ำจะขึ้นไหม"))

	score2 := ComputeScore(g2)
	assert.Equal(t, maxStability, score2.Stability)
	assert.Equal(t, maxAlignment, score2.Alignment, "every pick owned by a coalition member")
	assert.Equal(t, maxDiscipline, score2.Discipline)
	assert.Equal(t, maxEngagement, score2.Engagement)
	assert.Equal(t, 0, score2.Balance, "security dimension empty")
	assert.Equal(t, roundScore(float64(maxExpertise)*3/4), score2.Expertise)
	assert.Equal(t, 73, score2.Total)
	assert.Equal(t, "C", score2.Grade)
}

func TestComputeScoreEmptyGame(t *testing.T) {
	g := NewGame(scoringParties(), scoringMinistries(), scoringPolicies())
	score := ComputeScore(g)
	assert.Equal(t, 10, score.Total, "only the discipline step pays out")
	assert.Equal(t, "F", score.Grade)
}

func TestComputeScoreTotalNeverNegative(t *testing.T) {
	g := NewGame(scoringParties(), scoringMinistries(), scoringPolicies())
	// Force an over-budget platform past the mutation guards to check the
	// floor on the final clamp.
	for _, p := range scoringPolicies() {
		g.Selected[p.ID] = true
	}
	for i := 0; i < 5; i++ {
		g.Selected[string(rune('A'+i))] = true
	}
	score := ComputeScore(g)
	assert.GreaterOrEqual(t, score.Total, 0)
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{100, "A"}, {90, "A"},
		{89, "B"}, {75, "B"},
		{74, "C"}, {60, "C"},
		{59, "D"}, {40, "D"},
		{39, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gradeFor(tt.total), "total=%d", tt.total)
	}
}

func TestComputeScoreProperties(t *testing.T) {
	parties := scoringParties()
	ids := make([]string, 0, len(parties))
	for _, p := range parties {
		ids = append(ids, p.ID)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	buildGame := func(members []string, policyCount int) *Game {
		g := NewGame(parties, scoringMinistries(), scoringPolicies())
		g.Advance()
		seen := make(map[string]bool)
		for _, id := range members {
			if !seen[id] {
				seen[id] = true
				g.ToggleParty(id)
			}
		}
		if g.HasMajority() {
			g.Advance()
			for _, p := range scoringPolicies().AvailableTo(g.Coalition) {
				if policyCount == 0 {
					break
				}
				if g.SelectPolicy(p.ID) == nil {
					policyCount--
				}
			}
		}
		return g
	}

	properties.Property("total stays within the 100-point scale", prop.ForAll(
		func(members []string, policyCount int) bool {
			score := ComputeScore(buildGame(members, policyCount))
			return score.Total >= 0 && score.Total <= 100
		},
		gen.SliceOf(gen.OneConstOf(ids[0], ids[1], ids[2], ids[3], ids[4], ids[5])),
		gen.IntRange(0, PolicyBudget),
	))

	properties.Property("identical games score identically", prop.ForAll(
		func(members []string, policyCount int) bool {
			a := ComputeScore(buildGame(members, policyCount))
			b := ComputeScore(buildGame(members, policyCount))
			return a.Total == b.Total && a.Grade == b.Grade
		},
		gen.SliceOf(gen.OneConstOf(ids[0], ids[1], ids[2], ids[3], ids[4], ids[5])),
		gen.IntRange(0, PolicyBudget),
	))

	properties.TestingRun(t)
}
