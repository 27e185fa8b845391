package entity

import "time"

// SessionRecord is the immutable snapshot written once per completed game.
// Field names mirror the original stats schema; the two legacy component
// aliases (coalition = stability, diversity = policy dimensions) are kept
// so old dashboards keep reading.
type SessionRecord struct {
	SessionID        string            `json:"session_id" firestore:"sessionId"`
	PMParty          string            `json:"pm_party" firestore:"pmParty"`
	Coalition        []string          `json:"coalition" firestore:"coalition"`
	CoalitionSeats   int               `json:"coalition_seats" firestore:"coalitionSeats"`
	SelectedPolicies []string          `json:"selected_policies" firestore:"selectedPolicies"`
	PolicyCount      int               `json:"policy_count" firestore:"policyCount"`
	Cabinet          map[string]string `json:"cabinet" firestore:"cabinet"`
	ChatQuestions    []string          `json:"chat_questions" firestore:"chatQuestions"`
	ChatCount        int               `json:"chat_count" firestore:"chatCount"`
	ScoreTotal       int               `json:"score_total" firestore:"scoreTotal"`
	ScoreCoalition   int               `json:"score_coalition" firestore:"scoreCoalition"`
	ScoreDiversity   int               `json:"score_diversity" firestore:"scoreDiversity"`
	ScoreAlignment   int               `json:"score_alignment" firestore:"scoreAlignment"`
	ScoreDiscipline  int               `json:"score_discipline" firestore:"scoreDiscipline"`
	ScoreCabinet     int               `json:"score_cabinet" firestore:"scoreCabinet"`
	ScoreEngagement  int               `json:"score_engagement" firestore:"scoreEngagement"`
	Grade            string            `json:"grade" firestore:"grade"`
	CreatedAt        time.Time         `json:"created_at" firestore:"createdAt"`
}

// NewSessionRecord snapshots a finished play-through.
func NewSessionRecord(sessionID string, g *Game, score ScoreResult) *SessionRecord {
	selected := make([]string, 0, len(g.Selected))
	for _, p := range g.SelectedPolicies() {
		selected = append(selected, p.ID)
	}
	questions := make([]string, 0, 1)
	for _, t := range g.Transcript {
		if t.Role == RoleUser {
			questions = append(questions, t.Text)
		}
	}
	pmParty := ""
	if pm := g.PMParty(); pm != nil {
		pmParty = pm.ID
	}
	return &SessionRecord{
		SessionID:        sessionID,
		PMParty:          pmParty,
		Coalition:        append([]string(nil), g.Coalition...),
		CoalitionSeats:   g.CoalitionSeats(),
		SelectedPolicies: selected,
		PolicyCount:      len(selected),
		Cabinet:          copyCabinet(g.Cabinet),
		ChatQuestions:    questions,
		ChatCount:        len(questions),
		ScoreTotal:       score.Total,
		ScoreCoalition:   score.Stability,
		ScoreDiversity:   score.DimensionTotal(),
		ScoreAlignment:   score.Alignment,
		ScoreDiscipline:  score.Discipline,
		ScoreCabinet:     score.Expertise,
		ScoreEngagement:  score.Engagement,
		Grade:            score.Grade,
		CreatedAt:        time.Now(),
	}
}

// Validate checks the fields a record cannot do without.
func (r *SessionRecord) Validate() error {
	if r.SessionID == "" || r.PMParty == "" || len(r.Coalition) == 0 {
		return ErrInvalidSession
	}
	return nil
}

func copyCabinet(cabinet map[string]string) map[string]string {
	copied := make(map[string]string, len(cabinet))
	for k, v := range cabinet {
		copied[k] = v
	}
	return copied
}
