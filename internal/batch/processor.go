package batch

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"smphr/internal/encode"
	"smphr/internal/render"
)

// Config holds the settings shared by every job of a batch run.
type Config struct {
	OutputDir string
	Width     int
	Height    int
	Format    encode.Format
	Scale     int
	Workers   int

	// Progress receives a rate line every two seconds; nil disables it.
	Progress io.Writer
}

// Job is one text to render into its own image.
type Job struct {
	Index int
	Text  string
}

// Result holds the outcome of processing one job.
type Result struct {
	Index     int
	Text      string
	Image     string // path relative to OutputDir
	Placed    int
	Skipped   int
	Truncated bool
	Success   bool
	Error     string
}

// ReadJobs reads one job per non-empty line of r.
func ReadJobs(r io.Reader) ([]Job, error) {
	var jobs []Job
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		jobs = append(jobs, Job{Index: len(jobs), Text: line})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("batch: read jobs: %w", err)
	}
	return jobs, nil
}

// Run renders all jobs using a worker pool. Results are in job order.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if cfg.Progress != nil {
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f images/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{
		Index: job.Index,
		Text:  job.Text,
		Image: fmt.Sprintf("%d%s", job.Index, cfg.Format.Ext()),
	}

	out, err := render.Render(job.Text, cfg.Width, cfg.Height)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Placed = out.Placed
	res.Skipped = len(out.Skipped)
	res.Truncated = out.Truncated

	path := filepath.Join(cfg.OutputDir, res.Image)
	if err := encode.Save(path, out.Canvas, encode.Options{Format: cfg.Format, Scale: cfg.Scale}); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
