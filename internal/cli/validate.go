package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ytget/texture-checker/internal/export"
	"github.com/ytget/texture-checker/internal/model"
	"github.com/ytget/texture-checker/internal/report"
	"github.com/ytget/texture-checker/internal/validate"
)

const formatText = "text"

func newValidateCmd() *cobra.Command {
	var (
		reqFlags requirementFlags
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "validate <folder>",
		Short: "Validate the texture sets in a folder",
		Long:  "Scan a folder recursively, group texture files into sets and check required maps and resolution. Exits with an error when any set is invalid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			req, err := reqFlags.resolve(cmd)
			if err != nil {
				return err
			}

			rep, err := validate.NewService(nil).ValidateFolder(folder, req)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			exporter := export.NewService()
			out := cmd.OutOrStdout()

			if output != "" {
				written, err := exporter.Export(rep, output)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Report written to %s\n", written)
			} else if format == formatText {
				fmt.Fprint(out, renderText(out, rep))
			} else {
				f, err := export.ParseFormat(format)
				if err != nil {
					return err
				}
				if err := exporter.Encode(out, rep, f); err != nil {
					return err
				}
			}

			if !rep.AllValid() {
				summary := rep.Summary()
				return fmt.Errorf("validation failed: %d of %d texture set(s) invalid", summary.Invalid, summary.Total)
			}
			return nil
		},
	}

	reqFlags.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a .json or .yaml file instead of stdout")

	return cmd
}

// renderText styles the report for terminals and falls back to plain
// lines when output is piped or redirected.
func renderText(out io.Writer, rep *model.Report) string {
	if isTerminal(out) {
		return report.RenderReport(rep)
	}
	return report.RenderPlain(rep)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
