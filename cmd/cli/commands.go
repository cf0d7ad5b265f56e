package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	reportDraw   bool
	announceDry  bool
	announceKind = map[string]string{
		"standings": "/standings/announce",
		"pairings":  "/pairings/announce",
	}
)

func init() {
	reportCmd.Flags().BoolVar(&reportDraw, "draw", false, "Record the match as a draw")
	announceCmd.Flags().BoolVar(&announceDry, "dry-run", false, "Log the Slack message instead of posting it")

	rootCmd.AddCommand(
		healthCmd,
		metricsCmd,
		registerCmd,
		countCmd,
		playersCmd,
		playerCmd,
		reportCmd,
		matchesCmd,
		standingsCmd,
		pairingsCmd,
		resetMatchesCmd,
		resetPlayersCmd,
		announceCmd,
	)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register NAME",
	Short: "Register a new player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/players", map[string]string{"name": args[0]})
	},
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count the registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players/count", nil)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/players", nil)
	},
}

var playerCmd = &cobra.Command{
	Use:   "player ID",
	Short: "Show a single player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid player id %q: %w", args[0], err)
		}
		return performRequest(http.MethodGet, fmt.Sprintf("/players/%d", id), nil)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report WINNER_ID LOSER_ID",
	Short: "Report the result of a match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 2)
		for i, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid player id %q: %w", arg, err)
			}
			ids[i] = id
		}
		return performRequest(http.MethodPost, "/matches", map[string]any{
			"winner_id": ids[0],
			"loser_id":  ids[1],
			"draw":      reportDraw,
		})
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the recorded matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/matches", nil)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the current standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/standings", nil)
	},
}

var pairingsCmd = &cobra.Command{
	Use:   "pairings",
	Short: "Show the swiss pairings for the next round",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/pairings", nil)
	},
}

var resetMatchesCmd = &cobra.Command{
	Use:   "reset-matches",
	Short: "Delete every recorded match",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, "/matches", nil)
	},
}

var resetPlayersCmd = &cobra.Command{
	Use:   "reset-players",
	Short: "Delete every player and their matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, "/players", nil)
	},
}

var announceCmd = &cobra.Command{
	Use:       "announce standings|pairings",
	Short:     "Post standings or pairings to Slack",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"standings", "pairings"},
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := announceKind[args[0]]
		if announceDry {
			endpoint += "?dry_run=true"
		}
		return performRequest(http.MethodPost, endpoint, nil)
	},
}

func performRequest(method, endpoint string, body any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s %s\n", method, url)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}
