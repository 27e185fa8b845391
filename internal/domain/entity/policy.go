package entity

// PolicyBudget caps how many policies a government may select.
const PolicyBudget = 10

// Policy is one entry of the policy catalog. Static master data; the
// catalog visible to a session is filtered by coalition membership.
type Policy struct {
	ID          string `yaml:"id" json:"id" firestore:"id"`
	Title       string `yaml:"title" json:"title" firestore:"title"`
	Description string `yaml:"description" json:"description" firestore:"description"`
	// Party is the owning party's ID.
	Party    string `yaml:"party" json:"party" firestore:"party"`
	Category string `yaml:"category" json:"category" firestore:"category"`
}

// PolicyList is the full policy catalog in declaration order.
type PolicyList []Policy

// FindByID returns the policy with the given ID, or nil.
func (l PolicyList) FindByID(id string) *Policy {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// AvailableTo returns the policies whose owning party is a coalition
// member, in catalog order.
func (l PolicyList) AvailableTo(coalition []string) PolicyList {
	member := make(map[string]bool, len(coalition))
	for _, id := range coalition {
		member[id] = true
	}
	available := make(PolicyList, 0, len(l))
	for _, p := range l {
		if member[p.Party] {
			available = append(available, p)
		}
	}
	return available
}

// Dimension is an aggregate scoring bucket grouping several raw policy
// categories.
type Dimension string

const (
	DimensionEconomic Dimension = "economic"
	DimensionSocial   Dimension = "social"
	DimensionSecurity Dimension = "security"
)

// Dimensions lists the buckets in a fixed order for display and scoring.
var Dimensions = []Dimension{DimensionEconomic, DimensionSocial, DimensionSecurity}

var dimensionByCategory = map[string]Dimension{
	"economy":     DimensionEconomic,
	"tech":        DimensionEconomic,
	"social":      DimensionSocial,
	"education":   DimensionSocial,
	"health":      DimensionSocial,
	"environment": DimensionSocial,
	"security":    DimensionSecurity,
	"politics":    DimensionSecurity,
	"justice":     DimensionSecurity,
	"interior":    DimensionSecurity,
}

// DimensionOf maps a raw policy category to its scoring bucket. Unknown
// categories count toward the social bucket rather than vanishing from the
// score.
func DimensionOf(category string) Dimension {
	if d, ok := dimensionByCategory[category]; ok {
		return d
	}
	return DimensionSocial
}
