package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/stats"
)

// StatsCommand prints collection aggregates to stdout.
type StatsCommand struct {
	DatabasePath string
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the book collection database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print reading statistics for the collection.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *StatsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	books, err := db.GetAllBooks()
	if err != nil {
		return fmt.Errorf("failed to read collection: %w", err)
	}

	s := stats.Compute(books)

	fmt.Println("Reading Statistics")
	fmt.Println("==================")
	fmt.Printf("Total books:       %d\n", s.Total)
	fmt.Printf("Currently reading: %d\n", s.CurrentlyReading)
	fmt.Printf("Want to read:      %d\n", s.WantToRead)
	fmt.Printf("Completed:         %d (%d%%)\n", s.Completed, s.CompletionRate)
	fmt.Printf("Total pages:       %d\n", s.TotalPages)
	fmt.Printf("Pages read:        %d\n", s.PagesRead)
	return nil
}
