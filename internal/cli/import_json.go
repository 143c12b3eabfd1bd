package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/importer"
)

// ImportJSONCommand replaces the collection with the contents of a JSON
// export file. The batch is all-or-nothing: one invalid record rejects
// the whole file.
type ImportJSONCommand struct {
	DatabasePath string
	FilePath     string
	DryRun       bool
	Yes          bool
}

func NewImportJSONCommand() *ImportJSONCommand {
	return &ImportJSONCommand{}
}

func (cmd *ImportJSONCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-json", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the JSON export file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the book collection database")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Validate the file without making changes")
	fs.BoolVar(&cmd.Yes, "yes", false, "Replace the existing collection without asking")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-json -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Validate a JSON export file and replace the book collection with it.\n")
		fmt.Fprintf(os.Stderr, "The import is rejected in full if any record is invalid.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Validate only:\n")
		fmt.Fprintf(os.Stderr, "  %s import-json -file book-records-2025-10-10.json -dry-run\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Replace the collection:\n")
		fmt.Fprintf(os.Stderr, "  %s import-json -file book-records-2025-10-10.json -yes\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportJSONCommand) Run() error {
	data, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	records, err := importer.ParseArray(data)
	if err != nil {
		return err
	}

	result := importer.ValidateBatch(records)

	if len(result.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "Found %d invalid book(s):\n%s\n",
			len(result.Errors), importer.ErrorSummary(result.Errors))
		fmt.Fprintf(os.Stderr, "Valid books: %d/%d\n", len(result.Valid), len(records))
		return fmt.Errorf("import rejected: fix the data and try again")
	}

	if len(result.Valid) == 0 {
		return fmt.Errorf("no valid books found in the import file")
	}

	fmt.Printf("Validated %d book(s)\n", len(result.Valid))

	if cmd.DryRun {
		fmt.Println("Dry run: no changes made")
		return nil
	}

	if !cmd.Yes {
		return fmt.Errorf("importing replaces the existing collection; re-run with -yes to proceed")
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceAllBooks(result.Valid); err != nil {
		return fmt.Errorf("failed to replace collection: %w", err)
	}

	fmt.Printf("Imported %d book(s)\n", len(result.Valid))
	return nil
}
