package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"langportal/internal/config"
	"langportal/internal/database"
	"langportal/internal/importer"
	"langportal/internal/repository"
	"langportal/internal/service"
)

func main() {
	// Define subcommands
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	restoreCmd := flag.NewFlagSet("restore", flag.ExitOnError)

	// Import flags
	importFile := importCmd.String("file", "", "Excel or CSV file to import (required)")
	importGroup := importCmd.String("group", "", "Target group name (required)")
	importSheet := importCmd.String("sheet", "Sheet1", "Sheet name for Excel files")
	importStartRow := importCmd.Int("start-row", 2, "First data row, 1-based")

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Restore flags
	restoreInput := restoreCmd.String("input", "", "Backup file to restore (required)")
	restoreClear := restoreCmd.Bool("clear", false, "Clear existing data before restore (WARNING: destructive)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		handleSeed(db, cfg.SeedsPath)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importFile == "" || *importGroup == "" {
			fmt.Println("Error: -file and -group flags are required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(db, *importFile, *importGroup, *importSheet, *importStartRow)

	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(db, *exportOutput)

	case "restore":
		restoreCmd.Parse(os.Args[2:])
		if *restoreInput == "" {
			fmt.Println("Error: -input flag is required")
			restoreCmd.PrintDefaults()
			os.Exit(1)
		}
		handleRestore(db, *restoreInput, *restoreClear)

	case "reset-history":
		if !confirm("This will delete all study sessions and reviews.") {
			return
		}
		if err := repository.NewSystemRepository(db).ResetHistory(); err != nil {
			log.Fatalf("Reset history failed: %v", err)
		}
		log.Println("Study history has been reset")

	case "full-reset":
		if !confirm("This will delete ALL data.") {
			return
		}
		if err := repository.NewSystemRepository(db).FullReset(); err != nil {
			log.Fatalf("Full reset failed: %v", err)
		}
		log.Println("All data has been reset")

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleSeed(db *database.DB, seedsPath string) {
	seedService := service.NewSeedService(db, seedsPath)
	if err := seedService.Seed(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Seed complete")
}

func handleImport(db *database.DB, file, group, sheet string, startRow int) {
	imp := importer.New(db)

	importConfig := importer.DefaultConfig()
	importConfig.FilePath = file
	importConfig.GroupName = group
	importConfig.SheetName = sheet
	importConfig.StartRow = startRow

	result, err := imp.ImportWords(importConfig)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import complete: %d processed, %d created, %d skipped", result.TotalProcessed, result.Created, result.Skipped)
	for _, msg := range result.Errors {
		log.Printf("  %s", msg)
	}
}

func handleExport(db *database.DB, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer out.Close()

	log.Printf("Exporting database to: %s", outputPath)
	if err := service.NewBackupService(db).Export(out); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	fileInfo, _ := os.Stat(outputPath)
	log.Printf("Export complete! File size: %.2f KB", float64(fileInfo.Size())/1024)
}

func handleRestore(db *database.DB, inputPath string, clearData bool) {
	in, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("Failed to open input file: %v", err)
	}
	defer in.Close()

	if clearData && !confirm("This will delete all existing data before restoring.") {
		return
	}

	log.Printf("Restoring database from: %s", inputPath)
	if err := service.NewBackupService(db).Import(in, clearData); err != nil {
		log.Fatalf("Restore failed: %v", err)
	}
	log.Println("Restore complete")
}

func confirm(warning string) bool {
	fmt.Printf("WARNING: %s Type 'yes' to confirm: ", warning)
	var confirmation string
	fmt.Scanln(&confirmation)
	if confirmation != "yes" {
		log.Println("Cancelled")
		return false
	}
	return true
}

func printUsage() {
	fmt.Println("Usage: admin <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seed           Load starter activities and vocabulary from the seeds directory")
	fmt.Println("  import         Import vocabulary from an Excel or CSV file into a group")
	fmt.Println("  export         Export all data to a JSON backup file")
	fmt.Println("  restore        Restore data from a JSON backup file")
	fmt.Println("  reset-history  Delete all study sessions and reviews")
	fmt.Println("  full-reset     Delete all data from every table")
}
