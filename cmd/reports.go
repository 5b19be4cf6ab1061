package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/clinsaude/clin/internal/reports"
	"github.com/clinsaude/clin/internal/store"
	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Print the triage report to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		m, err := reports.Load(context.Background(), s.TriageRepo())
		if err != nil {
			return fmt.Errorf("load metrics: %w", err)
		}

		if m.Total == 0 {
			fmt.Println("No triages recorded yet.")
			return nil
		}

		sep := strings.Repeat("─", 56)

		fmt.Printf("Triages recorded: %d\n", m.Total)
		fmt.Println(sep)
		fmt.Printf("%-8s  %6s  %5s\n", "Level", "Count", "Pct")
		fmt.Println(sep)
		fmt.Printf("%-8s  %6d  %4d%%\n", "Low", m.Low, m.Percent(m.Low))
		fmt.Printf("%-8s  %6d  %4d%%\n", "Medium", m.Medium, m.Percent(m.Medium))
		fmt.Printf("%-8s  %6d  %4d%%\n", "High", m.High, m.Percent(m.High))

		fmt.Println()
		fmt.Println("Monthly volume")
		fmt.Println(sep)
		for _, mc := range m.Monthly {
			fmt.Printf("%-8s  %d\n", mc.Month.Format("Jan 06"), mc.Count)
		}

		if len(m.Sectors) > 0 {
			fmt.Println()
			fmt.Println("Average score by sector")
			fmt.Println(sep)
			for _, sr := range m.Sectors {
				fmt.Printf("%-16s  %5.1f  (%d triages)\n", sr.Sector, sr.AvgScore, sr.Count)
			}
		}

		return nil
	},
}
