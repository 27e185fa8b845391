package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bejranonda/ThaiGov2569/internal/config"
	"github.com/bejranonda/ThaiGov2569/internal/dataset"
	"github.com/bejranonda/ThaiGov2569/internal/interface/gateway/ai"
	"github.com/bejranonda/ThaiGov2569/internal/usecase"
)

func main() {
	cfg := config.Load()
	if cfg.GeminiAPIKey == "" && cfg.OpenRouterAPIKey == "" {
		log.Fatal("neither GEMINI_API_KEY nor OPENROUTER_API_KEY is set")
	}
	fmt.Printf("✓ Gemini configured: %v\n", cfg.GeminiAPIKey != "")
	fmt.Printf("✓ OpenRouter configured: %v\n", cfg.OpenRouterAPIKey != "")

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("failed to create Gemini client: %v", err)
	}
	defer gemini.Close()

	openRouter := ai.NewOpenRouterClient(ai.OpenRouterOptions{
		APIKey:   cfg.OpenRouterAPIKey,
		Endpoint: cfg.OpenRouterURL,
		Model:    cfg.OpenRouterModel,
		Referer:  cfg.OpenRouterReferer,
		Title:    cfg.OpenRouterTitle,
	})
	gateway := ai.NewGateway(gemini, openRouter)

	data := dataset.MustLoad()
	prompts := usecase.NewPromptBuilder(data.Parties, data.Ministries, data.Policies)

	coalition := []string{"PP", "PTP", "TST"}
	pmParty := data.Parties.FindByID("PP")
	opposition := data.Parties.MainOpposition(coalition)
	fmt.Printf("✓ PM party: %s, opposition: %s\n", pmParty.Name, opposition.Name)

	testQuestions := []string{
		"รัฐบาลมีแผนแก้ปัญหาค่าครองชีพอย่างไร",
		"จะปฏิรูปการศึกษาไทยอย่างไรให้ทันโลก",
	}

	for i, question := range testQuestions {
		fmt.Printf("\n--- Test %d ---\n", i+1)
		fmt.Printf("Question: %s\n", question)

		pmPrompt := prompts.BuildPMPrompt(pmParty, coalition, map[string]string{"PM": "PP"}, nil)
		reply, err := gateway.GetResponse(ctx, pmPrompt, question)
		if err != nil {
			fmt.Printf("❌ PM reply failed: %v\n", err)
		} else {
			fmt.Printf("✅ PM (%s): %s\n", reply.Source, reply.Text)
		}

		oppositionPrompt := prompts.BuildOppositionPrompt(opposition, coalition, nil)
		reply, err = gateway.GetResponse(ctx, oppositionPrompt, question)
		if err != nil {
			fmt.Printf("❌ Opposition reply failed: %v\n", err)
		} else {
			fmt.Printf("✅ Opposition (%s): %s\n", reply.Source, reply.Text)
		}
	}

	fmt.Println("\n✓ Test complete")
}
