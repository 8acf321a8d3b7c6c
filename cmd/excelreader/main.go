// Package main provides the CLI entry point for excelreader-go.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ukaji3/excelreader-go/internal/config"
	"github.com/ukaji3/excelreader-go/pkg/excelreader"
	"github.com/ukaji3/excelreader-go/pkg/excelreader/models"
	"github.com/ukaji3/excelreader-go/pkg/excelreader/output"
)

var (
	configPath string
	workers    int
	pretty     bool
	outputPath string
	sheetName  string
	withSheets bool

	cfg *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excelreader",
		Short: "Extract cell-level contents from spreadsheet workbooks",
		Long: `excelreader-go extracts every cell of a workbook (.xlsx, .xlsm, .xlsb, .xls)
with its value, data type and formula text, and reports workbook statistics as JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Number of sheets parsed in parallel (default: one per CPU)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	statsCmd := &cobra.Command{
		Use:   "stats [input]",
		Short: "Print workbook statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().BoolVar(&withSheets, "sheets", false, "Include per-sheet summaries")

	dumpCmd := &cobra.Command{
		Use:   "dump [input]",
		Short: "Print every extracted cell as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	dumpCmd.Flags().StringVar(&sheetName, "sheet", "", "Only dump the named sheet")

	formulasCmd := &cobra.Command{
		Use:   "formulas [input]",
		Short: "List formula cells as Sheet!Ref<TAB>formula",
		Args:  cobra.ExactArgs(1),
		RunE:  runFormulas,
	}

	rootCmd.AddCommand(statsCmd, dumpCmd, formulasCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		loaded.Workers = workers
	}
	if cmd.Flags().Changed("pretty") {
		loaded.Pretty = pretty
	}
	config.SetupLogging(loaded)
	cfg = loaded
	return nil
}

// readWorkbook parses the workbook at path and logs any dropped sheets.
func readWorkbook(path string) (*excelreader.ExcelReader, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	logger := log.Logger
	reader := excelreader.New(path, excelreader.Options{
		Workers: cfg.Workers,
		Logger:  &logger,
	})
	if err := reader.Parse(); err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	for _, f := range reader.Failures() {
		log.Warn().Str("sheet", f.SheetName).Err(f.Err).Msg("Sheet was not extracted")
	}
	return reader, nil
}

func runStats(cmd *cobra.Command, args []string) error {
	reader, err := readWorkbook(args[0])
	if err != nil {
		return err
	}

	report := models.StatsReport{Stats: reader.Stats()}
	if withSheets {
		report.Sheets = reader.Summaries()
	}
	jsonData, err := output.StatsToJSON(&report, cfg.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return err
}

func runDump(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	reader, err := readWorkbook(inputPath)
	if err != nil {
		return err
	}

	var jsonData []byte
	if sheetName != "" {
		sheet, ok := reader.Sheet(sheetName)
		if !ok {
			return fmt.Errorf("sheet not found: %s", sheetName)
		}
		jsonData, err = output.SheetToJSON(&sheet, cfg.Pretty)
	} else {
		jsonData, err = output.WorkbookToJSON(&models.WorkbookData{
			BookName: filepath.Base(inputPath),
			Sheets:   reader.Sheets(),
		}, cfg.Pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return err
}

func runFormulas(cmd *cobra.Command, args []string) error {
	reader, err := readWorkbook(args[0])
	if err != nil {
		return err
	}
	return writeFormulas(cmd.OutOrStdout(), reader.Sheets())
}

func writeFormulas(w io.Writer, sheets []models.Sheet) error {
	for _, sheet := range sheets {
		for _, cell := range sheet.FormulaCells() {
			if _, err := fmt.Fprintf(w, "%s!%s\t%s\n", sheet.Name, sheet.Ref(cell), *cell.Formula); err != nil {
				return err
			}
		}
	}
	return nil
}
