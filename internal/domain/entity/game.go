package entity

// Step is the wizard position of a play-through.
type Step int

const (
	StepIntro     Step = iota // landing screen
	StepCoalition             // assemble a majority
	StepPolicy                // pick a platform
	StepCabinet               // seat the cabinet
	StepChat                  // parliamentary question
	StepResults               // report card
)

// MaxReshuffles caps how often the player may return to the cabinet step
// after entering the chat.
const MaxReshuffles = 2

// Role identifies the speaker of a transcript turn.
type Role string

const (
	RoleSystem     Role = "system"
	RoleUser       Role = "user"
	RolePM         Role = "pm"
	RoleOpposition Role = "opposition"
)

// Turn is one transcript entry.
type Turn struct {
	Role   Role   `json:"role" firestore:"role"`
	Sender string `json:"sender" firestore:"sender"`
	Text   string `json:"text" firestore:"text"`
	Color  string `json:"color" firestore:"color"`
}

// Game holds the mutable state of one play-through. All mutation goes
// through methods that uphold the invariants: the cabinet never references
// a party outside the coalition, selected policies are always owned by a
// coalition member, and the policy budget is never exceeded.
type Game struct {
	Step           Step
	Coalition      []string
	Selected       map[string]bool
	Cabinet        map[string]string
	Transcript     []Turn
	ReshuffleCount int

	parties    PartyList
	ministries MinistryList
	policies   PolicyList
}

// NewGame creates a fresh play-through over the given datasets.
func NewGame(parties PartyList, ministries MinistryList, policies PolicyList) *Game {
	return &Game{
		Step:       StepIntro,
		Coalition:  make([]string, 0),
		Selected:   make(map[string]bool),
		Cabinet:    make(map[string]string),
		Transcript: make([]Turn, 0),
		parties:    parties,
		ministries: ministries,
		policies:   policies,
	}
}

// CoalitionSeats returns the coalition's seat total.
func (g *Game) CoalitionSeats() int {
	return g.parties.CoalitionSeats(g.Coalition)
}

// HasMajority reports whether the coalition may form a government.
func (g *Game) HasMajority() bool {
	return g.CoalitionSeats() >= MajorityThreshold
}

// InCoalition reports coalition membership.
func (g *Game) InCoalition(partyID string) bool {
	for _, id := range g.Coalition {
		if id == partyID {
			return true
		}
	}
	return false
}

// ToggleParty adds the party to the coalition or removes it. Removal
// cascades: cabinet slots held by the party are cleared and its selected
// policies are dropped, so the membership invariants keep holding.
func (g *Game) ToggleParty(partyID string) error {
	if g.parties.FindByID(partyID) == nil {
		return ErrPartyNotFound
	}
	if !g.InCoalition(partyID) {
		g.Coalition = append(g.Coalition, partyID)
		return nil
	}
	remaining := make([]string, 0, len(g.Coalition)-1)
	for _, id := range g.Coalition {
		if id != partyID {
			remaining = append(remaining, id)
		}
	}
	g.Coalition = remaining
	for slot, holder := range g.Cabinet {
		if holder == partyID {
			delete(g.Cabinet, slot)
		}
	}
	for policyID := range g.Selected {
		if p := g.policies.FindByID(policyID); p != nil && p.Party == partyID {
			delete(g.Selected, policyID)
		}
	}
	return nil
}

// SelectPolicy adds a policy to the platform. The policy must be owned by
// a coalition member and the budget must not be exceeded.
func (g *Game) SelectPolicy(policyID string) error {
	policy := g.policies.FindByID(policyID)
	if policy == nil {
		return ErrPolicyNotFound
	}
	if !g.InCoalition(policy.Party) {
		return ErrPartyNotInCoalition
	}
	if g.Selected[policyID] {
		return nil
	}
	if len(g.Selected) >= PolicyBudget {
		return ErrPolicyBudgetExceeded
	}
	g.Selected[policyID] = true
	return nil
}

// DeselectPolicy removes a policy from the platform.
func (g *Game) DeselectPolicy(policyID string) {
	delete(g.Selected, policyID)
}

// SelectedPolicies returns the selected policies in catalog order.
func (g *Game) SelectedPolicies() []Policy {
	selected := make([]Policy, 0, len(g.Selected))
	for _, p := range g.policies {
		if g.Selected[p.ID] {
			selected = append(selected, p)
		}
	}
	return selected
}

// AssignMinister seats a coalition party in a ministry slot.
func (g *Game) AssignMinister(ministryID, partyID string) error {
	if ministryID != MinistryPM && g.ministries.FindByID(ministryID) == nil {
		return ErrMinistryNotFound
	}
	if !g.InCoalition(partyID) {
		return ErrPartyNotInCoalition
	}
	g.Cabinet[ministryID] = partyID
	return nil
}

// ClearCabinet removes every assignment.
func (g *Game) ClearCabinet() {
	g.Cabinet = make(map[string]string)
}

// AutoAssignCabinet distributes ministries across the coalition roughly in
// proportion to seats, filling the remainder with the largest party. An
// existing PM nomination is preserved.
func (g *Game) AutoAssignCabinet() {
	totalSeats := g.CoalitionSeats()
	if totalSeats == 0 {
		return
	}
	cabinet := make(map[string]string)
	i := 0
	for _, partyID := range g.Coalition {
		party := g.parties.FindByID(partyID)
		if party == nil {
			continue
		}
		share := int(float64(len(g.ministries))*float64(party.Seats)/float64(totalSeats) + 0.5)
		if share < 1 {
			share = 1
		}
		for n := 0; n < share && i < len(g.ministries); n++ {
			cabinet[g.ministries[i].ID] = partyID
			i++
		}
	}
	if i < len(g.ministries) {
		if largest := g.parties.LargestCoalitionParty(g.Coalition); largest != nil {
			for ; i < len(g.ministries); i++ {
				cabinet[g.ministries[i].ID] = largest.ID
			}
		}
	}
	if pm, ok := g.Cabinet[MinistryPM]; ok {
		cabinet[MinistryPM] = pm
	}
	g.Cabinet = cabinet
}

// AssignAllToPMParty hands every ministry to the nominated PM's party, or
// to the largest coalition party when no PM is nominated yet.
func (g *Game) AssignAllToPMParty() {
	partyID, ok := g.Cabinet[MinistryPM]
	if !ok {
		largest := g.parties.LargestCoalitionParty(g.Coalition)
		if largest == nil {
			return
		}
		partyID = largest.ID
	}
	cabinet := map[string]string{MinistryPM: partyID}
	for _, m := range g.ministries {
		cabinet[m.ID] = partyID
	}
	g.Cabinet = cabinet
}

// PMParty returns the nominated prime minister's party, falling back to
// the largest coalition party when the PM slot is empty.
func (g *Game) PMParty() *Party {
	if id, ok := g.Cabinet[MinistryPM]; ok {
		if p := g.parties.FindByID(id); p != nil {
			return p
		}
	}
	return g.parties.LargestCoalitionParty(g.Coalition)
}

// CanAdvance reports whether the forward transition out of the current
// step is enabled. A false result is a disabled transition, not an error.
func (g *Game) CanAdvance() bool {
	switch g.Step {
	case StepCoalition:
		return g.HasMajority()
	case StepCabinet:
		return g.PMParty() != nil
	case StepResults:
		return false
	default:
		return true
	}
}

// Advance moves one step forward. Blocked transitions return the gate's
// sentinel error.
func (g *Game) Advance() error {
	if g.Step >= StepResults {
		return ErrInvalidStep
	}
	switch g.Step {
	case StepCoalition:
		if !g.HasMajority() {
			return ErrBelowMajority
		}
	case StepCabinet:
		if g.PMParty() == nil {
			return ErrNoPrimeMinister
		}
	}
	g.Step++
	return nil
}

// NavigateBack jumps to an earlier step. Returning to the cabinet from the
// chat or results consumes one of the limited reshuffles.
func (g *Game) NavigateBack(target Step) error {
	if target >= g.Step || target < StepIntro {
		return ErrInvalidStep
	}
	if target == StepCabinet && g.Step >= StepChat {
		if g.ReshuffleCount >= MaxReshuffles {
			return ErrNoReshufflesLeft
		}
		g.ReshuffleCount++
	}
	g.Step = target
	return nil
}

// QuestionCount counts the player's transcript turns.
func (g *Game) QuestionCount() int {
	count := 0
	for _, t := range g.Transcript {
		if t.Role == RoleUser {
			count++
		}
	}
	return count
}

// AskQuestion appends the player's parliamentary question. One question
// per session: a second ask is a blocked transition.
func (g *Game) AskQuestion(text string) error {
	if g.Step != StepChat {
		return ErrInvalidStep
	}
	if g.QuestionCount() > 0 {
		return ErrQuestionUsed
	}
	g.Transcript = append(g.Transcript, Turn{Role: RoleUser, Sender: "user", Text: text})
	return nil
}

// AppendReply appends a persona reply to the transcript.
func (g *Game) AppendReply(role Role, sender, text, color string) {
	g.Transcript = append(g.Transcript, Turn{Role: role, Sender: sender, Text: text, Color: color})
}
