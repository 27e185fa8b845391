package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/bejranonda/ThaiGov2569/internal/dataset"
	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
)

var baseURL string

func main() {
	baseURL = os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8081"
	}
	fmt.Printf("Testing API at: %s\n\n", baseURL)

	client := &http.Client{Timeout: 60 * time.Second}

	// 1. Health check
	fmt.Println("=== 1. Health Check ===")
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
	} else {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Printf("✅ Status: %d, Body: %s\n", resp.StatusCode, string(body))
	}

	// 2. Play a full game locally to obtain a realistic session
	fmt.Println("\n=== 2. Play Game Locally ===")
	data := dataset.MustLoad()
	game := entity.NewGame(data.Parties, data.Ministries, data.Policies)

	if err := game.Advance(); err != nil {
		fmt.Printf("❌ Advance to coalition: %v\n", err)
		return
	}
	for _, partyID := range []string{"PP", "PTP", "TST"} {
		if err := game.ToggleParty(partyID); err != nil {
			fmt.Printf("❌ ToggleParty(%s): %v\n", partyID, err)
			return
		}
	}
	fmt.Printf("✅ Coalition seats: %d/%d (majority: %v)\n",
		game.CoalitionSeats(), entity.TotalSeats, game.HasMajority())

	if err := game.Advance(); err != nil {
		fmt.Printf("❌ Advance to policies: %v\n", err)
		return
	}

	picked := 0
	for _, p := range data.Policies.AvailableTo(game.Coalition) {
		if picked == 5 {
			break
		}
		if err := game.SelectPolicy(p.ID); err != nil {
			fmt.Printf("❌ SelectPolicy(%s): %v\n", p.ID, err)
			return
		}
		picked++
	}
	fmt.Printf("✅ Selected %d policies\n", picked)

	if err := game.Advance(); err != nil {
		fmt.Printf("❌ Advance to cabinet: %v\n", err)
		return
	}
	game.AutoAssignCabinet()
	fmt.Printf("✅ Cabinet auto-assigned, PM party: %s\n", game.PMParty().ID)

	if err := game.Advance(); err != nil {
		fmt.Printf("❌ Advance to chat: %v\n", err)
		return
	}

	// 3. Debate question
	fmt.Println("\n=== 3. Chat ===")
	question := "รัฐบาลจะแก้ปัญหาหนี้ครัวเรือนอย่างไร"
	if err := game.AskQuestion(question); err != nil {
		fmt.Printf("❌ AskQuestion: %v\n", err)
		return
	}
	chatReq := map[string]interface{}{
		"message":   question,
		"coalition": game.Coalition,
		"cabinet":   game.Cabinet,
		"policies":  selectedIDs(game),
	}
	chatResp, err := postJSON(client, "/api/chat", chatReq)
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
	} else {
		fmt.Printf("✅ Chat: %s\n", prettyJSON(chatResp))
	}

	if err := game.Advance(); err != nil {
		fmt.Printf("❌ Advance to results: %v\n", err)
		return
	}

	// 4. Score
	fmt.Println("\n=== 4. Score ===")
	score := entity.ComputeScore(game)
	fmt.Printf("✅ Total: %d, Grade: %s (stability=%d alignment=%d discipline=%d expertise=%d engagement=%d)\n",
		score.Total, score.Grade, score.Stability, score.Alignment, score.Discipline, score.Expertise, score.Engagement)

	// 5. Record session
	fmt.Println("\n=== 5. Record Stats ===")
	record := entity.NewSessionRecord(uuid.New().String(), game, score)
	recordBody, _ := json.Marshal(record)
	var recordReq map[string]interface{}
	json.Unmarshal(recordBody, &recordReq)
	statsResp, err := postJSON(client, "/api/stats", recordReq)
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
	} else {
		fmt.Printf("✅ Recorded: %s\n", prettyJSON(statsResp))
	}

	// 6. Public aggregate
	fmt.Println("\n=== 6. Get Stats ===")
	resp, err = client.Get(baseURL + "/api/stats")
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
	} else {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Printf("✅ Status: %d, Body: %s\n", resp.StatusCode, string(body))
	}

	fmt.Println("\n=== Test Complete ===")
}

func selectedIDs(game *entity.Game) []string {
	ids := make([]string, 0)
	for _, p := range game.SelectedPolicies() {
		ids = append(ids, p.ID)
	}
	return ids
}

func postJSON(client *http.Client, path string, data map[string]interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(respBody))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %s", string(respBody))
	}

	return result, nil
}

func prettyJSON(data map[string]interface{}) string {
	b, err := json.MarshalIndent(data, "   ", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(b)
}
