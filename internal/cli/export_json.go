package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/exporters"
)

// ExportJSONCommand writes a JSON snapshot of the collection to a
// directory.
type ExportJSONCommand struct {
	DatabasePath string
	OutputDir    string
}

func NewExportJSONCommand() *ExportJSONCommand {
	return &ExportJSONCommand{}
}

func (cmd *ExportJSONCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-json", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the book collection database")
	fs.StringVar(&cmd.OutputDir, "output", ".", "Directory to write the export file into")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-json [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the full book collection as an indented JSON file\n")
		fmt.Fprintf(os.Stderr, "named book-records-<date>.json.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export-json -output ~/backups\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportJSONCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	books, err := db.GetAllBooks()
	if err != nil {
		return fmt.Errorf("failed to read collection: %w", err)
	}

	path, err := exporters.WriteSnapshot(cmd.OutputDir, books, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d book(s) to %s\n", len(books), path)
	return nil
}
