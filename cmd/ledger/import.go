package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/Miguelburitica/accounts-project/internal/ledger"
	"github.com/Miguelburitica/accounts-project/internal/logger"
	"github.com/spf13/cobra"
)

// exportName matches files written by export: <collection>_<YYYY-MM-DD>.csv.
var exportName = regexp.MustCompile(`^([a-z_]+?)(?:_\d{4}-\d{2}-\d{2})?\.csv$`)

func (a *app) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [collection=file.csv ...]",
		Short: "Replace collections with the contents of CSV files",
		Long: `Each named collection is replaced wholesale by the rows of its CSV file.
Collections: ` + strings.Join(ledger.Collections, ", ") + `.

With --dir, every <collection>.csv or <collection>_<date>.csv file in the
directory is picked up; when several dates exist the latest one wins.`,
		Example: `  ledger import periods=periods.csv transactions=transactions_2024-02-01.csv
  ledger import --dir exports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return a.runImport(cmd, dir, args)
		},
	}
	cmd.Flags().String("dir", "", "Directory of exported CSV files")
	return cmd
}

func (a *app) runImport(cmd *cobra.Command, dir string, args []string) error {
	const op = "import"
	log := logger.WithComponent("import")

	paths := make(map[string]string)
	if dir != "" {
		found, err := scanExportDir(dir)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		paths = found
	}
	for _, arg := range args {
		name, path, ok := strings.Cut(arg, "=")
		if !ok || name == "" || path == "" {
			return fmt.Errorf("%s: argument %q is not collection=file", op, arg)
		}
		paths[name] = path
	}
	if len(paths) == 0 {
		return fmt.Errorf("%s: nothing to import, pass collection=file arguments or --dir", op)
	}

	files := make(map[string]string, len(paths))
	for name, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		files[name] = string(data)
		log.Debug().Str("collection", name).Str("file", path).Msg("CSV file read")
	}

	if err := a.ledger.Import(cmd.Context(), files); err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", strings.Join(names, ", "))
	return nil
}

// scanExportDir maps collection names to the newest matching file in dir.
func scanExportDir(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	found := make(map[string]string)
	newest := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := exportName.FindStringSubmatch(e.Name())
		if m == nil || !slices.Contains(ledger.Collections, m[1]) {
			continue
		}
		if e.Name() > newest[m[1]] {
			newest[m[1]] = e.Name()
			found[m[1]] = filepath.Join(dir, e.Name())
		}
	}
	return found, nil
}
