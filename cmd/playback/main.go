// Command playback drives a running solver server over its REST API. It
// creates a session, requests a solve, and replays the solution in the
// terminal as a sequence of 3x3 grids, optionally with a delay between
// frames so the tile motion is easy to follow.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type SessionResponse struct {
	ID       string `json:"id"`
	Board    string `json:"board"`
	Preset   string `json:"preset_id,omitempty"`
	Solvable bool   `json:"solvable"`
}

type Frame struct {
	Step  int    `json:"step"`
	Move  string `json:"move,omitempty"`
	Board string `json:"board"`
}

type SolveResponse struct {
	Strategy   string   `json:"strategy"`
	Found      bool     `json:"found"`
	PathLength int      `json:"path_length"`
	Moves      []string `json:"moves"`
	Frames     []Frame  `json:"frames"`
	Expanded   int      `json:"expanded"`
	Generated  int      `json:"generated"`
	ElapsedMS  float64  `json:"elapsed_ms"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(boardStr, preset string) (*SessionResponse, error) {
	payload := map[string]string{}
	if boardStr != "" {
		payload["board"] = boardStr
	}
	if preset != "" {
		payload["preset_id"] = preset
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return &session, nil
}

func (c *Client) GetSession() (*SessionResponse, error) {
	url := fmt.Sprintf("%s/api/sessions/%s", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}

	return &session, nil
}

func (c *Client) Solve(strategy string) (*SolveResponse, error) {
	reqBody, err := json.Marshal(map[string]string{"strategy": strategy})
	if err != nil {
		return nil, fmt.Errorf("marshal solve request: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/solve", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("solve failed: %s - %s", resp.Status, string(body))
	}

	var solve SolveResponse
	if err := json.Unmarshal(body, &solve); err != nil {
		return nil, fmt.Errorf("parse solve response: %w", err)
	}

	return &solve, nil
}

// renderFrame draws one solution step as a 3x3 grid with a caption.
func renderFrame(f Frame) string {
	var sb strings.Builder

	if f.Step == 0 {
		sb.WriteString("Step 0 (start)\n")
	} else {
		fmt.Fprintf(&sb, "Step %d (%s)\n", f.Step, f.Move)
	}

	for r := 0; r < 3; r++ {
		cells := make([]string, 0, 3)
		for c := 0; c < 3; c++ {
			ch := f.Board[r*3+c]
			if ch == '0' {
				cells = append(cells, ".")
			} else {
				cells = append(cells, string(ch))
			}
		}
		sb.WriteString("  " + strings.Join(cells, " ") + "\n")
	}

	return sb.String()
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Solver server URL")
	boardStr := flag.String("board", "", "Nine-digit board string, 0 marking the blank")
	preset := flag.String("preset", "", "Preset name to load the board from")
	strategy := flag.String("strategy", "astar", "Search strategy (uniform_cost, greedy, astar)")
	continueSession := flag.String("continue", "", "Replay against an existing session by ID")
	delayMs := flag.Int("delay", 0, "Delay between frames in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to solver server at %s", *serverURL)
	client := NewClient(*serverURL)

	var session *SessionResponse
	var err error

	if *continueSession != "" {
		client.sessionID = *continueSession
		session, err = client.GetSession()
		if err != nil {
			log.Fatalf("Failed to resume session: %v", err)
		}
		log.Printf("Resumed session %s with board %s", session.ID, session.Board)
	} else {
		session, err = client.CreateSession(*boardStr, *preset)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("Session created: %s (board %s)", session.ID, session.Board)
	}

	if !session.Solvable {
		log.Printf("Board %s is in the wrong parity class; the search will exhaust all 181440 states", session.Board)
	}

	solve, err := client.Solve(*strategy)
	if err != nil {
		log.Fatalf("Solve request failed: %v", err)
	}

	if !solve.Found {
		fmt.Printf("No solution exists for board %s\n", session.Board)
		fmt.Printf("Explored the full state space: expanded %d, generated %d (%.2fms)\n",
			solve.Expanded, solve.Generated, solve.ElapsedMS)
		os.Exit(1)
	}

	fmt.Printf("Solved with %s: %d moves (expanded %d, generated %d, %.2fms)\n\n",
		solve.Strategy, solve.PathLength-1, solve.Expanded, solve.Generated, solve.ElapsedMS)

	for i, frame := range solve.Frames {
		fmt.Println(renderFrame(frame))
		if *delayMs > 0 && i < len(solve.Frames)-1 {
			time.Sleep(time.Duration(*delayMs) * time.Millisecond)
		}
	}

	fmt.Printf("Moves: %s\n", strings.Join(solve.Moves, " "))
}
