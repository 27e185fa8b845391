package entity

import "sort"

// Seat arithmetic is fixed per dataset revision.
const (
	TotalSeats        = 500
	MajorityThreshold = 250
)

// Party is a parliamentary party. Static master data, loaded at start and
// never mutated.
type Party struct {
	ID     string `yaml:"id" json:"id" firestore:"id"`
	Name   string `yaml:"name" json:"name" firestore:"name"`
	Seats  int    `yaml:"seats" json:"seats" firestore:"seats"`
	Color  string `yaml:"color" json:"color" firestore:"color"`
	// Policies maps a policy-domain key (finance, defense, ...) to the
	// party's stance text. Used for cabinet-expertise scoring and prompts.
	Policies map[string]string `yaml:"policies" json:"policies" firestore:"policies"`
}

// HasExpertise reports whether the party declares a stance for the given
// policy-domain key.
func (p *Party) HasExpertise(key string) bool {
	_, ok := p.Policies[key]
	return ok
}

// PartyList is the full party dataset in declaration order. Declaration
// order is load-bearing: it is the tie-break for MainOpposition.
type PartyList []Party

// FindByID returns the party with the given ID, or nil.
func (l PartyList) FindByID(id string) *Party {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// CoalitionSeats sums the seats of the given coalition members. Unknown
// party IDs contribute nothing.
func (l PartyList) CoalitionSeats(coalition []string) int {
	total := 0
	for _, id := range coalition {
		if p := l.FindByID(id); p != nil {
			total += p.Seats
		}
	}
	return total
}

// CoalitionParties returns the parties of the coalition in dataset order.
func (l PartyList) CoalitionParties(coalition []string) []Party {
	member := make(map[string]bool, len(coalition))
	for _, id := range coalition {
		member[id] = true
	}
	parties := make([]Party, 0, len(coalition))
	for _, p := range l {
		if member[p.ID] {
			parties = append(parties, p)
		}
	}
	return parties
}

// LargestCoalitionParty returns the coalition member with the most seats,
// or nil for an empty coalition. Ties resolve to the earlier dataset entry.
func (l PartyList) LargestCoalitionParty(coalition []string) *Party {
	var largest *Party
	for _, p := range l.CoalitionParties(coalition) {
		p := p
		if largest == nil || p.Seats > largest.Seats {
			largest = &p
		}
	}
	return largest
}

// MainOpposition returns the largest party outside the coalition. When seat
// counts tie, the party earlier in the dataset wins; a stable sort over the
// declaration-ordered list makes that rule explicit.
func (l PartyList) MainOpposition(coalition []string) *Party {
	member := make(map[string]bool, len(coalition))
	for _, id := range coalition {
		member[id] = true
	}
	opposition := make([]Party, 0, len(l))
	for _, p := range l {
		if !member[p.ID] {
			opposition = append(opposition, p)
		}
	}
	if len(opposition) == 0 {
		return nil
	}
	sort.SliceStable(opposition, func(i, j int) bool {
		return opposition[i].Seats > opposition[j].Seats
	})
	return &opposition[0]
}
