package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/handler"
	"github.com/osse101/RaffleRate_Go/internal/sse"
)

const sseTestTimeout = 30 * time.Second

type TestSSECommand struct{}

func (c *TestSSECommand) Name() string {
	return "test-sse"
}

func (c *TestSSECommand) Description() string {
	return "Start a draw and follow its frames over the event stream"
}

func (c *TestSSECommand) Run(args []string) error {
	PrintHeader("Testing SSE Events...")
	apiURL := apiURLFromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), sseTestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		apiURL+"/api/v1/events?types="+sse.EventTypeFrame, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to open event stream: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	runID, err := startDraw(ctx, apiURL)
	if err != nil {
		return err
	}
	PrintInfo("Started run %s", runID)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		frame, ok := parseFrameLine(scanner.Text())
		if !ok || frame.RunID != runID {
			continue
		}
		fmt.Printf("  [%d/%d] draws %s  observed %s\n", frame.Tick, frame.MaxTick, frame.Draws, frame.WinRate)
		if frame.Final {
			PrintSuccess("Reveal completed: expected %s, observed %s", frame.Probability, frame.WinRate)
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("event stream: %w", err)
	}
	return fmt.Errorf("stream ended before the reveal completed")
}

func startDraw(ctx context.Context, apiURL string) (string, error) {
	body, err := json.Marshal(handler.DrawRequest{TicketsBought: 3, TotalTickets: 10, NumDraws: 10})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"/api/v1/draw", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send draw: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected draw status: %s", resp.Status)
	}

	var summary struct {
		RunID string `json:"run_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return "", fmt.Errorf("failed to decode draw response: %w", err)
	}
	return summary.RunID, nil
}

// parseFrameLine decodes a "data:" line carrying a reveal.frame event
func parseFrameLine(line string) (chart.Frame, bool) {
	data, ok := strings.CutPrefix(line, "data: ")
	if !ok {
		return chart.Frame{}, false
	}

	var evt struct {
		Type    string      `json:"type"`
		Payload chart.Frame `json:"payload"`
	}
	if err := json.Unmarshal([]byte(data), &evt); err != nil || evt.Type != sse.EventTypeFrame {
		return chart.Frame{}, false
	}
	return evt.Payload, true
}
