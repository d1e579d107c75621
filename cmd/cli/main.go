package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tellerledger-cli",
		Short: "Teller ledger CLI tool",
		Long:  `A command line interface for the teller ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(manualCmd())
	rootCmd.AddCommand(agentsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func reportCmd() *cobra.Command {
	var (
		from, to    string
		agentID     string
		areaID      string
		collectorID string
		search      string
		raw         bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a running-balance report",
		Run: func(cmd *cobra.Command, args []string) {
			params := url.Values{}
			params.Set("from", from)
			params.Set("to", to)
			if agentID != "" {
				params.Set("agent_id", agentID)
			}
			if areaID != "" {
				params.Set("area_id", areaID)
			}
			if collectorID != "" {
				params.Set("collector_id", collectorID)
			}
			if search != "" {
				params.Set("q", search)
			}

			body := getJSON("/api/v1/ledger/report?" + params.Encode())
			if raw {
				os.Stdout.Write(body)
				fmt.Println()
				return
			}
			printReport(body)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Window start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&agentID, "agent", "", "Limit to one agent")
	cmd.Flags().StringVar(&areaID, "area", "", "Limit to the agents of an area")
	cmd.Flags().StringVar(&collectorID, "collector", "", "Limit to the tellers under a collector")
	cmd.Flags().StringVar(&search, "search", "", "Substring filter over label, description and type")
	cmd.Flags().BoolVar(&raw, "json", false, "Print the raw JSON response")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

func manualCmd() *cobra.Command {
	var (
		date, timeOfDay string
		agentID, area   string
		entryType       string
		side            string
		amount          string
		description     string
	)

	cmd := &cobra.Command{
		Use:   "manual",
		Short: "Record a manual ledger entry",
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{
				"date":        date,
				"time_of_day": timeOfDay,
				"agent_id":    agentID,
				"area":        area,
				"type":        entryType,
				"side":        side,
				"amount":      amount,
				"description": description,
			}
			body, err := json.Marshal(payload)
			if err != nil {
				fmt.Printf("Failed to encode request: %v\n", err)
				os.Exit(1)
			}

			client := &http.Client{Timeout: timeout}
			resp, err := client.Post(baseURL+"/api/v1/transactions/manual", "application/json", strings.NewReader(string(body)))
			if err != nil {
				fmt.Printf("Error making request: %v\n", err)
				os.Exit(1)
			}
			defer resp.Body.Close()

			respBody, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusCreated {
				fmt.Printf("Manual entry FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
				os.Exit(1)
			}

			var created map[string]any
			if err := json.Unmarshal(respBody, &created); err != nil {
				fmt.Printf("Failed to parse response: %v\n", err)
				os.Exit(1)
			}
			printJSON(created)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Ledger date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Wall-clock time (hh:mm:ss)")
	cmd.Flags().StringVar(&agentID, "agent", "", "Agent the entry belongs to")
	cmd.Flags().StringVar(&area, "area", "", "Area label")
	cmd.Flags().StringVar(&entryType, "type", "", "Transaction type label")
	cmd.Flags().StringVar(&side, "side", "debit", "Entry side: debit or credit")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("agent")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func agentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List registered agents",
		Run: func(cmd *cobra.Command, args []string) {
			var agents []map[string]any
			if err := json.Unmarshal(getJSON("/api/v1/agents"), &agents); err != nil {
				fmt.Printf("Failed to parse response: %v\n", err)
				os.Exit(1)
			}

			fmt.Printf("%-12s %-28s %s\n", "ID", "LABEL", "AREA")
			for _, a := range agents {
				fmt.Printf("%-12s %-28s %s\n",
					truncate(str(a["id"]), 12),
					truncate(str(a["label"]), 28),
					str(a["area_id"]),
				)
			}
		},
	}
}

func getJSON(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}
	return body
}

func printReport(body []byte) {
	var report struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
		Days     []struct {
			Date           string `json:"date"`
			AgentID        string `json:"agent_id"`
			AgentLabel     string `json:"agent_label"`
			OpeningBalance string `json:"opening_balance"`
			ClosingBalance string `json:"closing_balance"`
			DayDebit       string `json:"day_debit"`
			DayCredit      string `json:"day_credit"`
		} `json:"days"`
		Totals struct {
			OpeningSum  string `json:"opening_sum"`
			ClosingSum  string `json:"closing_sum"`
			TotalDebit  string `json:"total_debit"`
			TotalCredit string `json:"total_credit"`
			AgentCount  int    `json:"agent_count"`
			DayCount    int    `json:"day_count"`
		} `json:"totals"`
	}

	if err := json.Unmarshal(body, &report); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Report %s .. %s\n\n", report.DateFrom, report.DateTo)
	fmt.Printf("%-12s %-10s %-24s %12s %12s %12s %12s\n",
		"DATE", "AGENT", "LABEL", "OPENING", "DEBIT", "CREDIT", "CLOSING")
	for _, d := range report.Days {
		fmt.Printf("%-12s %-10s %-24s %12s %12s %12s %12s\n",
			d.Date,
			truncate(d.AgentID, 10),
			truncate(d.AgentLabel, 24),
			d.OpeningBalance,
			d.DayDebit,
			d.DayCredit,
			d.ClosingBalance,
		)
	}
	fmt.Printf("\nTotals: opening=%s debit=%s credit=%s closing=%s agents=%d days=%d\n",
		report.Totals.OpeningSum,
		report.Totals.TotalDebit,
		report.Totals.TotalCredit,
		report.Totals.ClosingSum,
		report.Totals.AgentCount,
		report.Totals.DayCount,
	)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
