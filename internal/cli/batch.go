package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsharda/medreview/internal/worker"
)

var (
	batchOutDir  string
	batchWorkers int
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest-file>",
	Short: "Review multiple collateral files concurrently",
	Long: `Batch reads collateral file paths from a manifest (one per line,
# comments allowed) and reviews them concurrently. Backup documents and
product metadata are shared across the batch.

Example:
  medreview batch collaterals.txt --backup-dir ./evidence --out-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringArrayVar(&backupPaths, "backup", nil, "backup document file (repeatable)")
	batchCmd.Flags().StringVar(&backupDir, "backup-dir", "", "directory of backup documents")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", ".", "directory for per-file JSON reports")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 3, "concurrent reviews")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 15*time.Minute, "overall batch timeout")
	batchCmd.Flags().StringVar(&llmProvider, "provider", "gemini", "extraction provider (gemini, openai, anthropic)")
	batchCmd.Flags().StringVar(&llmModel, "model", "", "extraction model name (provider default if empty)")
	batchCmd.Flags().StringVar(&pubmedKey, "pubmed-key", "", "NCBI API key for elevated rate limits (or PUBMED_API_KEY)")

	batchCmd.Flags().StringVar(&brandName, "brand", "", "brand name of the product")
	batchCmd.Flags().StringVar(&genericName, "generic", "", "generic (INN) name")
	batchCmd.Flags().StringVar(&therapyArea, "therapy-area", "", "therapy area")
	batchCmd.Flags().StringVar(&indications, "indications", "", "approved indications")
	batchCmd.Flags().StringVar(&targetAudience, "audience", "", "target audience")
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]

	backupDocs, err := loadBackupDocs(backupPaths, backupDir)
	if err != nil {
		return err
	}

	cfg := configFromFlags()
	cfg.Concurrency.BatchWorkers = batchWorkers

	reviewer, err := buildReviewer(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	processor := worker.NewBatchProcessor(reviewer, cfg.Concurrency.BatchWorkers)
	results, err := processor.ProcessManifest(ctx, manifestPath, backupDocs, metadataFromFlags())
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		outPath := filepath.Join(batchOutDir, reportName(result.Path))
		data, err := json.MarshalIndent(result.Report, "", "  ")
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: render report: %v\n", result.Path, err)
			continue
		}
		if err := os.WriteFile(outPath, append(data, '\n'), 0644); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ %s: score %d -> %s\n", result.Path, result.Report.OverallScore, outPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d reviews failed", failed, len(results))
	}
	return nil
}

// reportName derives the per-file report filename from the collateral path
func reportName(collateralPath string) string {
	base := filepath.Base(collateralPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".report.json"
}
