package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
)

func TestLoad(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	seats := 0
	for _, p := range data.Parties {
		seats += p.Seats
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Color)
	}
	assert.Equal(t, entity.TotalSeats, seats)

	require.NotNil(t, data.Ministries.FindByID(entity.MinistryPM))
	for _, m := range data.Ministries {
		assert.NotEmpty(t, m.Key, "ministry %s has no policy-domain key", m.ID)
	}

	for _, p := range data.Policies {
		assert.NotNil(t, data.Parties.FindByID(p.Party), "policy %s owned by unknown party", p.ID)
		assert.NotEmpty(t, p.Category)
	}
}

func TestLoadIsCached(t *testing.T) {
	a, err := Load()
	require.NoError(t, err)
	b, err := Load()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestDatasetSupportsMajority(t *testing.T) {
	data := MustLoad()

	// At least one realistic coalition must clear the majority gate.
	coalition := []string{"PP", "PTP"}
	assert.GreaterOrEqual(t, data.Parties.CoalitionSeats(coalition), entity.MajorityThreshold)
}

func TestEveryCategoryHasAPolicy(t *testing.T) {
	data := MustLoad()
	byCategory := make(map[string]int)
	for _, p := range data.Policies {
		byCategory[p.Category]++
	}
	for _, category := range []string{
		"economy", "social", "education", "security", "environment",
		"politics", "tech", "justice", "health", "interior",
	} {
		assert.Positive(t, byCategory[category], "no policy in category %s", category)
	}
}
