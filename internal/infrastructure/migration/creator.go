package migration

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"
)

const migrationUpTemplate = `-- Migration: {{.Name}}
-- Created: {{.Timestamp}}
-- Description: {{.Description}}

`

const migrationDownTemplate = `-- Migration: {{.Name}} (rollback)
-- Created: {{.Timestamp}}

`

// sequenceWidth matches the zero padded prefix of the embedded files, e.g. 000003_
const sequenceWidth = 6

// MigrationFile represents a migration file pair
type MigrationFile struct {
	Version     string
	Name        string
	Description string
	Timestamp   string
	UpPath      string
	DownPath    string
}

// CreateMigration writes the next numbered up/down pair into migrationsDir
func CreateMigration(migrationsDir, name, description string) (*MigrationFile, error) {
	base := sanitizeName(name)
	if base == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}
	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	existing, err := ListMigrations(os.DirFS(migrationsDir))
	if err != nil {
		return nil, err
	}
	next, err := nextSequence(existing)
	if err != nil {
		return nil, err
	}

	version := fmt.Sprintf("%0*d", sequenceWidth, next)
	baseName := version + "_" + base
	mf := &MigrationFile{
		Version:     version,
		Name:        name,
		Description: description,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		UpPath:      filepath.Join(migrationsDir, baseName+".up.sql"),
		DownPath:    filepath.Join(migrationsDir, baseName+".down.sql"),
	}

	if err := createMigrationFile(mf.UpPath, migrationUpTemplate, mf); err != nil {
		return nil, fmt.Errorf("failed to create up migration: %w", err)
	}
	if err := createMigrationFile(mf.DownPath, migrationDownTemplate, mf); err != nil {
		_ = os.Remove(mf.UpPath)
		return nil, fmt.Errorf("failed to create down migration: %w", err)
	}
	return mf, nil
}

func createMigrationFile(path, tmplContent string, data *MigrationFile) error {
	tmpl, err := template.New("migration").Parse(tmplContent)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

// sanitizeName converts a migration name to lower snake case
func sanitizeName(name string) string {
	result := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			result = append(result, c)
		case c >= 'A' && c <= 'Z':
			result = append(result, c+'a'-'A')
		case c == ' ' || c == '-' || c == '_':
			if len(result) > 0 && result[len(result)-1] != '_' {
				result = append(result, '_')
			}
		}
	}
	return strings.TrimSuffix(string(result), "_")
}

// ListMigrations returns the sorted base names of every up migration in fsys
func ListMigrations(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	migrations := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			migrations = append(migrations, base)
		}
	}
	sort.Strings(migrations)
	return migrations, nil
}

func nextSequence(existing []string) (int, error) {
	highest := 0
	for _, name := range existing {
		prefix, _, _ := strings.Cut(name, "_")
		n, err := strconv.Atoi(prefix)
		if err != nil {
			return 0, fmt.Errorf("migration %q has no numeric prefix", name)
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1, nil
}
