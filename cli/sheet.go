package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"privateevents/catalog"
)

const maxErrorsListed = 10

func newImportCommand(a *app) *cobra.Command {
	var file, outFile, errorsFile string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert a kitchen cost sheet (.csv or .xlsx) into a catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, result, err := catalog.ImportSheetFile(file)
			if err != nil {
				return err
			}

			a.logger.Info().
				Str("file", result.FileName).
				Int("rows", result.TotalRows).
				Int("valid", result.ValidRows).
				Int("errors", result.ErrorRows).
				Msg("cost sheet imported")
			for _, col := range result.Unrecognized {
				a.logger.Warn().Str("column", col).Msg("ignored unrecognized column")
			}
			for i, e := range result.Errors {
				if i == maxErrorsListed {
					a.logger.Warn().Msgf("... and %d more", len(result.Errors)-maxErrorsListed)
					break
				}
				a.logger.Warn().Int("row", e.Row).Str("field", e.Field).Msg(e.Message)
			}

			if errorsFile != "" && len(result.Errors) > 0 {
				report, err := catalog.GenerateErrorReport(result.Errors)
				if err != nil {
					return err
				}
				if err := os.WriteFile(errorsFile, report, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", errorsFile, err)
				}
				a.logger.Info().Str("file", errorsFile).Msg("error report written")
			}

			if result.ValidRows == 0 {
				return fmt.Errorf("no valid rows in %s", result.FileName)
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encode catalog: %w", err)
			}
			return a.writeOutput(outFile, append(data, '\n'), "catalog")
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "cost sheet to import (.csv or .xlsx)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the catalog to file instead of stdout")
	cmd.Flags().StringVar(&errorsFile, "errors", "", "write an .xlsx report of rejected rows")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newTemplateCommand(a *app) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a blank kitchen cost sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := catalog.GenerateSheetTemplate()
			if err != nil {
				return err
			}
			return a.writeOutput(outFile, data, "template")
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "path of the .xlsx file to write")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
