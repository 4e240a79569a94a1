package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"community-backend/internal/config"
)

// Tables in dependency order; import runs forward, clear runs backward
var tables = []string{
	"users",
	"revoked_tokens",
	"login_logs",
	"admin_action_logs",
	"invitations",
	"member_details",
	"spouse_details",
	"family_tree_persons",
	"profile_section_status",
	"children",
	"help_posts",
	"help_post_likes",
	"help_post_comments",
	"reference_items",
	"districts",
	"post_offices",
	"feature_switches",
}

type backupFile struct {
	Version    string                      `json:"version"`
	ExportedAt time.Time                   `json:"exported_at"`
	Tables     map[string][]map[string]any `json:"tables"`
}

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Clear existing data before import (WARNING: destructive)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(db, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(db, *importInput, *importClear)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(db *sql.DB, outputPath string) {
	if outputPath == "" {
		outputPath = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	}

	backup := backupFile{
		Version:    "1",
		ExportedAt: time.Now().UTC(),
		Tables:     make(map[string][]map[string]any),
	}

	for _, table := range tables {
		rows, err := exportTable(db, table)
		if err != nil {
			log.Fatalf("Failed to export %s: %v", table, err)
		}
		backup.Tables[table] = rows
		log.Printf("Exported %s: %d rows", table, len(rows))
	}

	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		log.Fatalf("Failed to write backup: %v", err)
	}

	info, _ := os.Stat(outputPath)
	log.Printf("Export complete: %s (%.2f MB)", outputPath, float64(info.Size())/1024/1024)
}

func exportTable(db *sql.DB, table string) ([]map[string]any, error) {
	rows, err := db.Query("SELECT * FROM " + table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func handleImport(db *sql.DB, inputPath string, clearData bool) {
	f, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("Failed to open input file: %v", err)
	}
	defer f.Close()

	var backup backupFile
	if err := json.NewDecoder(f).Decode(&backup); err != nil {
		log.Fatalf("Failed to parse backup file: %v", err)
	}

	if clearData {
		fmt.Print("WARNING: This will delete all existing data. Type 'yes' to confirm: ")
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			log.Println("Import cancelled")
			return
		}
		if err := clearDatabase(db); err != nil {
			log.Fatalf("Failed to clear database: %v", err)
		}
	}

	for _, table := range tables {
		rows := backup.Tables[table]
		if len(rows) == 0 {
			continue
		}
		if err := importTable(db, table, rows); err != nil {
			log.Fatalf("Failed to import %s: %v", table, err)
		}
		log.Printf("Imported %s: %d rows", table, len(rows))
	}

	// Sequences drift after explicit id inserts
	if err := resetSequences(db); err != nil {
		log.Printf("Warning: failed to reset sequences: %v", err)
	}

	log.Println("Import complete")
}

func importTable(db *sql.DB, table string, rows []map[string]any) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, row := range rows {
		columns := make([]string, 0, len(row))
		placeholders := make([]string, 0, len(row))
		values := make([]any, 0, len(row))
		i := 1
		for col, val := range row {
			columns = append(columns, col)
			placeholders = append(placeholders, fmt.Sprintf("$%d", i))
			values = append(values, val)
			i++
		}

		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT DO NOTHING",
			table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
		if _, err := tx.Exec(query, values...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func clearDatabase(db *sql.DB) error {
	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := db.Exec("DELETE FROM " + tables[i]); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", tables[i], err)
		}
		log.Printf("Cleared table: %s", tables[i])
	}
	return nil
}

func resetSequences(db *sql.DB) error {
	query := `
		SELECT 'SELECT setval(pg_get_serial_sequence(''' || table_name || ''', ''id''), COALESCE(MAX(id), 1)) FROM ' || table_name
		FROM information_schema.columns
		WHERE column_name = 'id' AND table_schema = 'public' AND column_default LIKE 'nextval%'`

	rows, err := db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	var fixups []string
	for rows.Next() {
		var stmt string
		if err := rows.Scan(&stmt); err != nil {
			return err
		}
		fixups = append(fixups, stmt)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, stmt := range fixups {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func printUsage() {
	fmt.Println("Community Backend Database Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export database to JSON file")
	fmt.Println("  backup import [options]    Import database from JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println("  -clear            Clear existing data before import (WARNING: destructive)")
}
