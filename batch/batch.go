// Package batch processes many queries in one run: a manifest of query
// strings goes in, a JSON-serializable report comes out.
package batch

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lucidsearch/luq"
)

// Manifest describes a batch run. Manifests are YAML files with a
// queries list; plain text files with one query per line also load.
type Manifest struct {
	Queries []string `yaml:"queries"`
	Workers int      `yaml:"workers,omitempty"`
}

// LoadManifest reads a manifest file. Files ending in .yaml or .yml are
// decoded as YAML; anything else is treated as one query per line,
// skipping blank lines and #-comments.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		var manifest Manifest
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
		return &manifest, nil
	}

	var manifest Manifest
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		manifest.Queries = append(manifest.Queries, line)
	}
	return &manifest, nil
}

// Result captures the outcome for one query. Exactly one of Result and
// Error is set.
type Result struct {
	Query  string           `json:"query"`
	Result *luq.QueryResult `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// Summary aggregates a batch run.
type Summary struct {
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Runner executes batch runs with a bounded worker pool.
type Runner struct {
	parser   *luq.Parser
	logger   *zap.Logger
	workers  int
	progress bool
}

// NewRunner creates a Runner. workers values below one fall back to a
// single worker.
func NewRunner(logger *zap.Logger, workers int, showProgress bool) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		parser:   luq.New(luq.WithLogger(logger)),
		logger:   logger,
		workers:  workers,
		progress: showProgress,
	}
}

// Run parses every query and returns per-query results in input order
// plus a summary. Individual parse failures are captured in their
// Result, not returned; only context cancellation aborts the run.
func (r *Runner) Run(ctx context.Context, queries []string) ([]Result, Summary, error) {
	start := time.Now()
	results := make([]Result, len(queries))

	var bar *progressbar.ProgressBar
	if r.progress {
		bar = progressbar.Default(int64(len(queries)), "parsing")
	}

	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup

	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, Summary{}, err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, Summary{}, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := r.parser.Parse(q)
			if err != nil {
				r.logger.Debug("query failed", zap.String("query", q), zap.Error(err))
				results[i] = Result{Query: q, Error: err.Error()}
			} else {
				results[i] = Result{Query: q, Result: result}
			}
			if bar != nil {
				_ = bar.Add(1)
			}
		}(i, q)
	}
	wg.Wait()

	summary := Summary{Total: len(queries), Elapsed: time.Since(start)}
	for _, result := range results {
		if result.Error == "" {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	r.logger.Info("batch complete",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", summary.Elapsed),
	)
	return results, summary, nil
}
