package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
	"github.com/bejranonda/ThaiGov2569/internal/interface/gateway/ai"
)

// apologyReply is returned in place of a persona reply whenever every
// provider fails, so one broken persona never hides the other.
const apologyReply = "(ขออภัย ไม่สามารถเชื่อมต่อ AI ได้ในขณะนี้)"

const errorSource = "Error"

// AskQuestionInput carries one debate question plus the session state
// it should be answered against.
type AskQuestionInput struct {
	Message   string
	Coalition []string
	Cabinet   map[string]string
	Policies  []string
}

// PersonaReply is one speaker's answer in the debate.
type PersonaReply struct {
	Sender     string `json:"sender"`
	Text       string `json:"text"`
	PartyColor string `json:"partyColor"`
	AISource   string `json:"aiSource"`
}

// AskQuestionOutput holds both persona replies, leader first, plus the
// ministry the question was routed to.
type AskQuestionOutput struct {
	Responses []PersonaReply `json:"responses"`
	Ministry  string         `json:"ministry"`
}

// AskQuestionUseCase answers a debate question with two concurrent
// persona completions, the government leader and the opposition whip.
type AskQuestionUseCase struct {
	gateway *ai.Gateway
	prompts *PromptBuilder
	parties entity.PartyList
}

func NewAskQuestionUseCase(gateway *ai.Gateway, prompts *PromptBuilder, parties entity.PartyList) *AskQuestionUseCase {
	return &AskQuestionUseCase{gateway: gateway, prompts: prompts, parties: parties}
}

// Execute resolves the two personas, builds their prompts and issues
// both completions concurrently. Provider failure on one side degrades
// that side to an apology reply instead of failing the whole call.
func (u *AskQuestionUseCase) Execute(ctx context.Context, input AskQuestionInput) (*AskQuestionOutput, error) {
	pmParty := u.resolvePMParty(input)
	if pmParty == nil {
		return nil, entity.ErrNoPrimeMinister
	}
	opposition := u.parties.MainOpposition(input.Coalition)
	if opposition == nil {
		return nil, entity.ErrNoOpposition
	}

	pmPrompt := u.prompts.BuildPMPrompt(pmParty, input.Coalition, input.Cabinet, input.Policies)
	oppositionPrompt := u.prompts.BuildOppositionPrompt(opposition, input.Coalition, input.Policies)

	var wg sync.WaitGroup
	var pmReply, oppositionReply PersonaReply

	wg.Add(2)
	go func() {
		defer wg.Done()
		pmReply = u.complete(ctx, pmPrompt, input.Message, fmt.Sprintf("นายกรัฐมนตรี (%s)", pmParty.Name), pmParty.Color)
	}()
	go func() {
		defer wg.Done()
		oppositionReply = u.complete(ctx, oppositionPrompt, input.Message, fmt.Sprintf("วิปฝ่ายค้าน (%s)", opposition.Name), opposition.Color)
	}()
	wg.Wait()

	return &AskQuestionOutput{
		Responses: []PersonaReply{pmReply, oppositionReply},
		Ministry:  entity.RouteQuestion(input.Message),
	}, nil
}

func (u *AskQuestionUseCase) complete(ctx context.Context, systemPrompt, message, sender, color string) PersonaReply {
	reply, err := u.gateway.GetResponse(ctx, systemPrompt, message)
	if err != nil {
		slog.Warn("persona completion failed", slog.String("sender", sender), slog.Any("error", err))
		return PersonaReply{Sender: sender, Text: apologyReply, PartyColor: color, AISource: errorSource}
	}
	return PersonaReply{Sender: sender, Text: reply.Text, PartyColor: color, AISource: reply.Source}
}

// resolvePMParty prefers the party holding the PM cabinet slot and
// falls back to the largest coalition party.
func (u *AskQuestionUseCase) resolvePMParty(input AskQuestionInput) *entity.Party {
	if id, ok := input.Cabinet[entity.MinistryPM]; ok {
		if p := u.parties.FindByID(id); p != nil {
			return p
		}
	}
	return u.parties.LargestCoalitionParty(input.Coalition)
}
