// Package main provides the CLI entry point for sheetimport.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/slpdata/sheetimport/pkg/sheetimport"
	"github.com/slpdata/sheetimport/pkg/sheetimport/models"
	"github.com/slpdata/sheetimport/pkg/sheetimport/ocr"
	"github.com/slpdata/sheetimport/pkg/sheetimport/output"
	"github.com/slpdata/sheetimport/pkg/sheetimport/parser"
	"github.com/slpdata/sheetimport/pkg/sheetimport/section"
	"github.com/slpdata/sheetimport/pkg/sheetimport/source"
)

var (
	templatePath    string
	outputDir       string
	format          string
	pretty          bool
	useOCR          bool
	languages       []string
	jobs            int
	validateChoices bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetimport [input...]",
		Short: "Interpret scanned therapy-session data sheets",
		Long: `sheetimport turns scanned therapy-session data sheets (extracted form
fields and table grids) into structured session records.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template configuration file (required)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: alongside each input)")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, xlsx")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&useOCR, "ocr", false, "Treat image inputs as scans and run OCR")
	rootCmd.Flags().StringSliceVar(&languages, "lang", nil, "OCR languages (tesseract names)")
	rootCmd.Flags().IntVar(&jobs, "jobs", 4, "Maximum sheets interpreted in parallel")
	rootCmd.Flags().BoolVar(&validateChoices, "validate-choices", false, "Fail when a choice value is outside its options")
	_ = rootCmd.MarkFlagRequired("template")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if format != "json" && format != "xlsx" {
		return fmt.Errorf("invalid format: %s (must be json or xlsx)", format)
	}

	configs, err := section.LoadConfigs(templatePath)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}
	sections, err := section.BuildAll(configs)
	if err != nil {
		return fmt.Errorf("failed to build template: %w", err)
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return err
		}
	}

	interp := sheetimport.NewDataSheetInterpreter(sections, sheetimport.Options{ValidateChoices: validateChoices})

	// Each interpretation is independent, so sheets run in parallel.
	var g errgroup.Group
	g.SetLimit(jobs)
	for _, input := range args {
		g.Go(func() error {
			if err := importSheet(interp, input); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func importSheet(interp *sheetimport.DataSheetInterpreter, input string) error {
	content, err := loadContent(input)
	if err != nil {
		return err
	}

	sheet, err := interp.Interpret(*content)
	if err != nil {
		return err
	}

	dest := outputPath(input)
	switch format {
	case "xlsx":
		return output.WriteWorkbook(sheet, dest)
	default:
		data, err := output.ToJSON(sheet, pretty)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, data, 0644)
	}
}

func loadContent(input string) (*models.RawSheetContent, error) {
	switch strings.ToLower(filepath.Ext(input)) {
	case ".json":
		return source.LoadContent(input)
	case ".xlsx":
		return source.ReadWorkbook(input)
	case ".txt":
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, err
		}
		return contentFromText(string(data))
	default:
		if !useOCR {
			return nil, fmt.Errorf("unsupported input %s (use --ocr for image scans)", input)
		}
		text, err := ocr.NewClient(languages...).ImageToText(input)
		if err != nil {
			return nil, err
		}
		return contentFromText(text)
	}
}

// contentFromText covers the raw-text path: label-split the OCR text into
// form data. No table structure is available on this path.
func contentFromText(text string) (*models.RawSheetContent, error) {
	form, err := parser.FormData(text, parser.DefaultLabels)
	if err != nil {
		return nil, err
	}
	return &models.RawSheetContent{FormData: form}, nil
}

func outputPath(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := base + ".session." + format
	if outputDir != "" {
		return filepath.Join(outputDir, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}
