package history

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/flatgram/models"
	dbpkg "github.com/dtnitsch/flatgram/pkg/db"
	"github.com/urfave/cli/v2"
)

// HistoryAction lists recorded runs, newest first. With a run ID argument it
// prints that run's items.
func HistoryAction(c *cli.Context) error {
	path := c.String("history")
	database, err := dbpkg.Open(path)
	if err != nil {
		return models.NewError(models.KindInputNotFound, "open history", path, err)
	}
	defer database.Close()

	if c.NArg() > 0 {
		var runID int64
		if _, err := fmt.Sscanf(c.Args().First(), "%d", &runID); err != nil {
			return fmt.Errorf("invalid run ID: %s", c.Args().First())
		}
		return printRun(database, runID)
	}

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-8s %-8s %-30s %-30s\n",
		"ID", "Started", "Command", "Status", "Items", "Input", "Output")
	fmt.Println(strings.Repeat("-", 116))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-8s %-8s %-8d %-30s %-30s\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.Command,
			r.Status,
			r.ItemCount,
			r.Input,
			r.Output,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'flatgram history <id>' to see details\n")

	return nil
}

func printRun(database *dbpkg.DB, runID int64) error {
	run, err := database.GetRunByID(runID)
	if err != nil {
		return err
	}
	items, err := database.GetRunItems(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d: %s (%s)\n", run.RunID, run.Command, run.Status)
	fmt.Printf("  Started:  %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	if run.FinishedAt.Valid {
		fmt.Printf("  Finished: %s\n", run.FinishedAt.Time.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("  Input:    %s\n", run.Input)
	if run.Output != "" {
		fmt.Printf("  Output:   %s\n", run.Output)
	}
	fmt.Printf("  Items:    %d\n", run.ItemCount)
	if run.ErrorType.Valid {
		fmt.Printf("  Error:    [%s] %s\n", run.ErrorType.String, run.ErrorMessage.String)
	}

	for _, item := range items {
		fmt.Printf("  %4d  %-40s %s\n", item.Position, item.Name, item.Value)
	}
	return nil
}
