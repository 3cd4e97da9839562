package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rsharda/medreview/internal/model"
)

// Analyzer defines the interface for reviewing one piece of collateral
type Analyzer interface {
	Analyze(ctx context.Context, collateral string, backupDocs []model.BackupDocument, meta model.Metadata) *model.Report
}

// ReviewJob reviews a single collateral file
type ReviewJob struct {
	Path       string
	BackupDocs []model.BackupDocument
	Metadata   model.Metadata
	Analyzer   Analyzer
}

// Execute reads the collateral file and runs the review
func (j *ReviewJob) Execute(ctx context.Context) Result {
	text, err := os.ReadFile(j.Path)
	if err != nil {
		return &ReviewResult{Path: j.Path, Error: fmt.Errorf("read collateral: %w", err)}
	}

	report := j.Analyzer.Analyze(ctx, string(text), j.BackupDocs, j.Metadata)
	return &ReviewResult{Path: j.Path, Report: report}
}

// ReviewResult is the outcome of a review job
type ReviewResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the review result
func (r *ReviewResult) GetError() error {
	return r.Error
}

// BatchProcessor reviews multiple collateral files concurrently. Backup
// documents and metadata are shared across the batch.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessFiles reviews the given collateral files concurrently
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string, backupDocs []model.BackupDocument, meta model.Metadata) []*ReviewResult {
	if len(paths) == 0 {
		return []*ReviewResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&ReviewJob{
			Path:       path,
			BackupDocs: backupDocs,
			Metadata:   meta,
			Analyzer:   b.analyzer,
		})
	}

	results := pool.Wait()

	reviewResults := make([]*ReviewResult, len(results))
	for i, result := range results {
		reviewResults[i] = result.(*ReviewResult)
	}
	return reviewResults
}

// ProcessManifest reads collateral paths from a manifest file and reviews
// them concurrently
func (b *BatchProcessor) ProcessManifest(ctx context.Context, manifestPath string, backupDocs []model.BackupDocument, meta model.Metadata) ([]*ReviewResult, error) {
	paths, err := ReadManifest(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return b.ProcessFiles(ctx, paths, backupDocs, meta), nil
}

// ReadManifest reads collateral file paths from a manifest (one per line)
func ReadManifest(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
