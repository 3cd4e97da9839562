package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsharda/medreview/internal/model"
)

var (
	backupPaths    []string
	backupDir      string
	outJSON        string
	reviewTimeout  time.Duration
	llmProvider    string
	llmModel       string
	pubmedKey      string
	brandName      string
	genericName    string
	therapyArea    string
	indications    string
	targetAudience string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <collateral-file>",
	Short: "Review a marketing collateral file for medical accuracy",
	Long: `Analyze extracts all scientific/medical claims from a collateral text
file, validates them against backup documents, resolves unmatched claims
against PubMed, and produces a scored report.

Example:
  medreview analyze detail_aid.txt --backup trial_results.txt --brand DiabetoFix
  medreview analyze detail_aid.txt --backup-dir ./evidence --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringArrayVar(&backupPaths, "backup", nil, "backup document file (repeatable)")
	analyzeCmd.Flags().StringVar(&backupDir, "backup-dir", "", "directory of backup documents")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: stdout)")
	analyzeCmd.Flags().DurationVar(&reviewTimeout, "timeout", 3*time.Minute, "overall review timeout")
	analyzeCmd.Flags().StringVar(&llmProvider, "provider", "gemini", "extraction provider (gemini, openai, anthropic)")
	analyzeCmd.Flags().StringVar(&llmModel, "model", "", "extraction model name (provider default if empty)")
	analyzeCmd.Flags().StringVar(&pubmedKey, "pubmed-key", "", "NCBI API key for elevated rate limits (or PUBMED_API_KEY)")

	analyzeCmd.Flags().StringVar(&brandName, "brand", "", "brand name of the product")
	analyzeCmd.Flags().StringVar(&genericName, "generic", "", "generic (INN) name")
	analyzeCmd.Flags().StringVar(&therapyArea, "therapy-area", "", "therapy area")
	analyzeCmd.Flags().StringVar(&indications, "indications", "", "approved indications")
	analyzeCmd.Flags().StringVar(&targetAudience, "audience", "", "target audience")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	collateralPath := args[0]

	collateral, err := os.ReadFile(collateralPath)
	if err != nil {
		return fmt.Errorf("read collateral: %w", err)
	}

	backupDocs, err := loadBackupDocs(backupPaths, backupDir)
	if err != nil {
		return err
	}

	cfg := configFromFlags()

	reviewer, err := buildReviewer(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Reviewing: %s (%d backup documents)\n", collateralPath, len(backupDocs))
	}

	ctx, cancel := context.WithTimeout(context.Background(), reviewTimeout)
	defer cancel()

	report := reviewer.Analyze(ctx, string(collateral), backupDocs, metadataFromFlags())

	if err := writeReport(report, outJSON); err != nil {
		return err
	}
	printSummary(report)
	return nil
}

// configFromFlags builds the pipeline configuration from defaults plus flags
func configFromFlags() *model.Config {
	cfg := model.DefaultConfig()
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.PubMed.APIKey = pubmedKey
	cfg.Output.Verbose = verbose
	return cfg
}

func metadataFromFlags() model.Metadata {
	return model.Metadata{
		BrandName:      brandName,
		GenericName:    genericName,
		TherapyArea:    therapyArea,
		Indications:    indications,
		TargetAudience: targetAudience,
	}
}

// writeReport renders the report as JSON to a file or stdout
func writeReport(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", path)
	}
	return nil
}

// printSummary prints a short human-readable digest to stderr
func printSummary(report *model.Report) {
	if report.Error != "" {
		fmt.Fprintf(os.Stderr, "\nAnalysis failed: %s\n", report.Error)
		return
	}
	s := report.Summary
	fmt.Fprintf(os.Stderr, "\nMedical accuracy score: %d/100\n", report.OverallScore)
	fmt.Fprintf(os.Stderr, "Claims: %d total, %d backup-substantiated, %d literature-substantiated, %d unsubstantiated, %d contradicted\n",
		s.TotalClaims, s.SubstantiatedBackup, s.SubstantiatedPubMed, s.Unsubstantiated, s.Contradicted)
	if len(report.PubMedQueriesNeeded) > 0 {
		fmt.Fprintf(os.Stderr, "Outstanding literature lookups: %d\n", len(report.PubMedQueriesNeeded))
	}
}
