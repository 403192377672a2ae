// Package main is the deckscope command line interface: classify decklists,
// batch-process directories, and maintain the catalog store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ramonehamilton/deckscope/internal/archetype"
	"github.com/ramonehamilton/deckscope/internal/catalog"
	"github.com/ramonehamilton/deckscope/internal/config"
	"github.com/ramonehamilton/deckscope/internal/deck"
	"github.com/ramonehamilton/deckscope/internal/report"
	"github.com/ramonehamilton/deckscope/internal/storage"
	"github.com/ramonehamilton/deckscope/internal/storage/repository"
	"github.com/ramonehamilton/deckscope/internal/version"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "classify":
		err = runClassify(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	case "formats":
		err = runFormats(os.Args[2:])
	case "seed":
		err = runSeed(os.Args[2:])
	case "version":
		fmt.Println(version.GetVersion())
	case "help", "-h", "--help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func usage() {
	fmt.Println("Deckscope - deck archetype classifier")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  deckscope classify -format <format> -file <decklist>")
	fmt.Println("  deckscope batch -format <format> -dir <directory> [-report <out.html>]")
	fmt.Println("  deckscope formats")
	fmt.Println("  deckscope seed")
	fmt.Println("  deckscope version")
}

// openProvider opens the catalog store and loads the published catalog.
func openProvider(dbPath string) (*catalog.Provider, func(), error) {
	if dbPath == "" {
		var err error
		dbPath, err = config.DefaultStorePath()
		if err != nil {
			return nil, nil, err
		}
	}

	storeCfg := storage.DefaultConfig(dbPath)
	storeCfg.AutoMigrate = true
	db, err := storage.Open(storeCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog store: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing catalog store: %v", err)
		}
	}

	repo := repository.NewRuleRepository(db.Conn())
	provider, err := catalog.NewProvider(context.Background(), catalog.NewSQLSource(repo, slog.Default()), slog.Default())
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return provider, closeDB, nil
}

func runClassify(args []string) error {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	format := fs.String("format", "", "Format to classify against (e.g. modern)")
	file := fs.String("file", "", "Decklist file")
	dbPath := fs.String("db-path", "", "Catalog store path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *format == "" || *file == "" {
		return fmt.Errorf("both -format and -file are required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read decklist: %w", err)
	}
	list, err := deck.Parse(string(data))
	if err != nil {
		return fmt.Errorf("parse decklist: %w", err)
	}
	for _, warning := range list.Warnings {
		log.Printf("Warning: %s", warning)
	}

	provider, closeDB, err := openProvider(*dbPath)
	if err != nil {
		return err
	}
	defer closeDB()

	result, err := provider.Classifier().Classify(list.Mainboard, *format)
	if err != nil {
		return err
	}

	fmt.Printf("Archetype:  %s\n", result.Archetype)
	fmt.Printf("Method:     %s\n", result.Method)
	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	return nil
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	format := fs.String("format", "", "Format to classify against")
	dir := fs.String("dir", "", "Directory of decklist files")
	reportPath := fs.String("report", "", "Write an HTML report to this path")
	dbPath := fs.String("db-path", "", "Catalog store path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *format == "" || *dir == "" {
		return fmt.Errorf("both -format and -dir are required")
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}

	provider, closeDB, err := openProvider(*dbPath)
	if err != nil {
		return err
	}
	defer closeDB()

	if !provider.Current().HasFormat(*format) {
		return fmt.Errorf("%w: %q", archetype.ErrUnknownFormat, *format)
	}

	classifier := provider.Classifier()
	summary := report.NewSummary(*format)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		path := filepath.Join(*dir, entry.Name())

		// One bad decklist never aborts the batch.
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Skipping %s: %v", entry.Name(), err)
			summary.AddFailure()
			continue
		}
		list, err := deck.Parse(string(data))
		if err != nil {
			log.Printf("Skipping %s: %v", entry.Name(), err)
			summary.AddFailure()
			continue
		}
		result, err := classifier.Classify(list.Mainboard, *format)
		if err != nil {
			log.Printf("Skipping %s: %v", entry.Name(), err)
			summary.AddFailure()
			continue
		}

		summary.Add(result)
		fmt.Printf("%-40s %s (%s, %.2f)\n", entry.Name(), result.Archetype, result.Method, result.Confidence)
	}

	fmt.Printf("\nClassified %d decklists (%d failed)\n", summary.Total, summary.Failed)

	if *reportPath != "" {
		if err := report.Render(summary, *reportPath); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", *reportPath)
	}
	return nil
}

func runFormats(args []string) error {
	fs := flag.NewFlagSet("formats", flag.ExitOnError)
	dbPath := fs.String("db-path", "", "Catalog store path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	provider, closeDB, err := openProvider(*dbPath)
	if err != nil {
		return err
	}
	defer closeDB()

	current := provider.Current()
	formats := current.Formats()
	if len(formats) == 0 {
		fmt.Println("Catalog is empty. Run 'deckscope seed' to install the starter catalog.")
		return nil
	}

	for _, format := range formats {
		names := make([]string, 0, len(current.Rules(format)))
		for _, rule := range current.Rules(format) {
			names = append(names, archetype.DisplayName(rule.Name))
		}
		sort.Strings(names)
		fmt.Printf("%s: %d rules, %d fallbacks (%s)\n",
			format, len(current.Rules(format)), len(current.Fallbacks(format)), strings.Join(names, ", "))
	}
	return nil
}

func runSeed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	dbPath := fs.String("db-path", "", "Catalog store path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *dbPath
	if path == "" {
		var err error
		path, err = config.DefaultStorePath()
		if err != nil {
			return err
		}
	}

	storeCfg := storage.DefaultConfig(path)
	storeCfg.AutoMigrate = true
	db, err := storage.Open(storeCfg)
	if err != nil {
		return fmt.Errorf("open catalog store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing catalog store: %v", err)
		}
	}()

	if err := catalog.Seed(context.Background(), repository.NewRuleRepository(db.Conn())); err != nil {
		return err
	}
	fmt.Printf("Starter catalog seeded into %s\n", path)
	return nil
}
