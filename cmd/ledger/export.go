package main

import (
	"fmt"

	"github.com/Miguelburitica/accounts-project/internal/export"
	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
	"github.com/Miguelburitica/accounts-project/internal/logger"
	"github.com/spf13/cobra"
)

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write collections as CSV files",
		Long: `Writes one <collection>_<date>.csv file per collection into the export
directory. --period limits the export to one period with its transactions and
variances; --periods-only writes just the periods. --xlsx bundles the same files
into a single workbook, one sheet per file.`,
		Example: `  ledger export
  ledger export --period 3 --dir /tmp/period3
  ledger export --xlsx ledger.xlsx`,
		RunE: a.runExport,
	}
	cmd.Flags().String("dir", "", "Output directory (default from LEDGER_EXPORT_DIR)")
	cmd.Flags().Int("period", 0, "Export a single period")
	cmd.Flags().Bool("periods-only", false, "Export only the periods collection")
	cmd.Flags().String("xlsx", "", "Write a workbook to this path instead of CSV files")
	cmd.MarkFlagsMutuallyExclusive("period", "periods-only")
	return cmd
}

func (a *app) runExport(cmd *cobra.Command, args []string) error {
	const op = "export"
	log := logger.WithComponent("export")
	ctx := cmd.Context()

	dir, _ := cmd.Flags().GetString("dir")
	periodID, _ := cmd.Flags().GetInt("period")
	periodsOnly, _ := cmd.Flags().GetBool("periods-only")
	xlsx, _ := cmd.Flags().GetString("xlsx")
	if dir == "" {
		dir = a.cfg.Export.Dir
	}

	var emitter interfaces.FileEmitter
	var workbook *export.Workbook
	var files *export.Dir
	if xlsx != "" {
		workbook = export.NewWorkbook()
		defer workbook.Close()
		emitter = workbook
	} else {
		files = export.NewDir(dir)
		emitter = files
	}

	day := a.now()
	switch {
	case cmd.Flags().Changed("period"):
		found, err := a.ledger.ExportPeriod(ctx, emitter, periodID, day)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s: period %d not found", op, periodID)
		}
	case periodsOnly:
		if err := a.ledger.ExportPeriods(ctx, emitter, day); err != nil {
			return err
		}
	default:
		if err := a.ledger.ExportAll(ctx, emitter, day); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if workbook != nil {
		if err := workbook.SaveAs(xlsx); err != nil {
			return fmt.Errorf("%s: save workbook: %w", op, err)
		}
		log.Info().Str("file", xlsx).Strs("sheets", workbook.Sheets()).Msg("Workbook written")
		fmt.Fprintf(out, "Wrote %s (%d sheets)\n", xlsx, len(workbook.Sheets()))
		return nil
	}

	for _, path := range files.Written() {
		fmt.Fprintln(out, path)
	}
	log.Info().Str("dir", dir).Int("files", len(files.Written())).Msg("CSV files written")
	return nil
}
