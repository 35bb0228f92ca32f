// Command smphr draws text as semaphore flag figures and saves the image.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"smphr/internal/batch"
	"smphr/internal/config"
	"smphr/internal/debug"
	"smphr/internal/encode"
	"smphr/internal/figure"
	"smphr/internal/layout"
	"smphr/internal/render"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cli struct {
	width       string
	height      string
	format      string
	scale       int
	configFile  string
	batchFile   string
	workers     int
	debugMode   bool
	debugFile   string
	debugPretty bool
	quiet       bool
	showVersion bool
	showHelp    bool

	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr}

	fs := pflag.NewFlagSet("smphr", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&c.width, "width", "w", "", "Output image width in pixels (invalid values use 600)")
	fs.StringVarP(&c.height, "height", "H", "", "Output image height in pixels (invalid values use 400)")
	fs.StringVarP(&c.format, "format", "f", "", "Image format: png, gif, webp, bmp, tiff, tga (default: from extension)")
	fs.IntVarP(&c.scale, "scale", "s", 0, "Integer upscale factor for the saved image")
	fs.StringVarP(&c.configFile, "config", "c", "", "Path to a JSON or YAML config file")
	fs.StringVar(&c.batchFile, "batch", "", "Render each line of this file (- for stdin) into the output directory")
	fs.IntVarP(&c.workers, "workers", "j", 0, "Worker goroutines for --batch (default: NumCPU)")
	fs.BoolVar(&c.debugMode, "debug", false, "Trace render passes (JSON lines on stderr)")
	fs.StringVar(&c.debugFile, "debug-file", "", "Write the trace to this file instead of stderr")
	fs.BoolVar(&c.debugPretty, "debug-pretty", false, "Use the human-readable trace format")
	fs.BoolVarP(&c.quiet, "quiet", "q", false, "Only print errors")
	fs.BoolVarP(&c.showVersion, "version", "v", false, "Show version information")
	fs.BoolVarP(&c.showHelp, "help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if c.showHelp {
		printHelp(stdout, fs)
		return 0
	}
	if c.showVersion {
		fmt.Fprintf(stdout, "smphr version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	var cfg config.Config
	if c.configFile != "" {
		var err error
		cfg, err = config.Load(c.configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	flags := config.Flags{
		Width:   config.ParseSize(c.width),
		Height:  config.ParseSize(c.height),
		Format:  c.format,
		Scale:   c.scale,
		Workers: c.workers,
	}
	if c.batchFile != "" && fs.NArg() > 0 {
		flags.OutputDir = fs.Arg(0)
	}
	cfg.Resolve(flags)

	if c.batchFile != "" {
		return c.runBatch(cfg)
	}
	return c.runSingle(cfg, fs.Args())
}

func (c *cli) runSingle(cfg config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(c.stderr, "Error: No path provided for output file")
		return 1
	}
	path := args[0]
	if len(args) < 2 {
		fmt.Fprintln(c.stderr, "Error: No input provided")
		return 1
	}
	text := strings.Join(args[1:], " ")

	format, err := c.resolveFormat(cfg, path)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}

	session, closeTrace, err := c.openTrace()
	if err != nil {
		fmt.Fprintf(c.stderr, "Error creating debug file: %v\n", err)
		return 1
	}
	defer closeTrace()

	res, err := render.Render(text, cfg.Width, cfg.Height,
		render.WithReporter(c.report),
		render.WithTrace(session),
	)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}

	if err := encode.Save(path, res.Canvas, encode.Options{Format: format, Scale: cfg.Scale}); err != nil {
		fmt.Fprintf(c.stderr, "Could not write output file: %v\n", err)
		return 1
	}

	if !c.quiet {
		fmt.Fprintf(c.stdout, "Wrote %s (%dx%d, %d figures)\n", path, cfg.Width*cfg.Scale, cfg.Height*cfg.Scale, res.Placed)
	}
	return 0
}

func (c *cli) runBatch(cfg config.Config) int {
	if cfg.OutputDir == "" {
		fmt.Fprintln(c.stderr, "Error: No path provided for output directory")
		return 1
	}

	in := io.Reader(os.Stdin)
	if c.batchFile != "-" {
		f, err := os.Open(c.batchFile)
		if err != nil {
			fmt.Fprintf(c.stderr, "Error opening batch file: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	jobs, err := batch.ReadJobs(in)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	if len(jobs) == 0 {
		fmt.Fprintln(c.stdout, "No texts to render.")
		return 0
	}

	format := encode.PNG
	if cfg.Format != "" {
		if format, err = encode.ParseFormat(cfg.Format); err != nil {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
			return 1
		}
	}

	bcfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Format:    format,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
	}
	if !c.quiet {
		bcfg.Progress = c.stdout
		fmt.Fprintf(c.stdout, "Texts: %d, Workers: %d\n", len(jobs), cfg.Workers)
		fmt.Fprintf(c.stdout, "Output: %s\n", cfg.OutputDir)
		fmt.Fprintln(c.stdout, "------------------------------------------------------------")
	}

	start := time.Now()
	results := batch.Run(bcfg, jobs)

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}

	if !c.quiet {
		fmt.Fprintln(c.stdout, "------------------------------------------------------------")
		fmt.Fprintf(c.stdout, "Done in %.1fs\n", time.Since(start).Seconds())
		fmt.Fprintf(c.stdout, "Rendered: %d/%d\n", len(results)-len(failed), len(results))
	}
	if len(failed) > 0 {
		fmt.Fprintf(c.stderr, "\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, r := range failed[:limit] {
			fmt.Fprintf(c.stderr, "  %d %q: %s\n", r.Index, r.Text, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(c.stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(c.stderr, "Warning: manifest write failed: %v\n", err)
	} else if !c.quiet {
		fmt.Fprintf(c.stdout, "Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		return 1
	}
	return 0
}

func (c *cli) resolveFormat(cfg config.Config, path string) (encode.Format, error) {
	if cfg.Format != "" {
		return encode.ParseFormat(cfg.Format)
	}
	return encode.FormatFromPath(path)
}

// report prints render diagnostics the way users of the tool expect them.
func (c *cli) report(d render.Diagnostic) {
	if c.quiet {
		return
	}
	switch {
	case errors.Is(d.Err, layout.ErrVerticalOverflow):
		fmt.Fprintln(c.stdout, "Vertical overflow, exiting loop.\nThis will cut the input text.")
	case errors.Is(d.Err, figure.ErrUnknownFigure):
		fmt.Fprintln(c.stdout, "?")
	default:
		fmt.Fprintf(c.stdout, "Error creating figure, %v.\n", d.Err)
	}
}

// openTrace starts a debug session when any debug option is set.
func (c *cli) openTrace() (*debug.Session, func(), error) {
	debug.InitFromEnv()
	if c.debugMode || c.debugFile != "" {
		debug.SetEnabled(true)
	}
	if !debug.Enabled() {
		return nil, func() {}, nil
	}

	var out io.Writer = c.stderr
	var file *os.File
	if c.debugFile != "" {
		f, err := os.Create(c.debugFile)
		if err != nil {
			return nil, nil, err
		}
		file = f
		out = f
	}

	var sink debug.Sink
	if c.debugPretty || os.Getenv("SMPHR_DEBUG_PRETTY") == "1" {
		sink = debug.NewPrettySink(out)
	} else {
		sink = debug.NewJSONSink(out)
	}

	session := debug.NewSession(sink)
	return session, func() {
		session.Close()
		if file != nil {
			file.Close()
		}
	}, nil
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, "smphr - generate semaphore images from text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  smphr [flags] <output-path> <text...>")
	fmt.Fprintln(w, "  smphr [flags] --batch <file> <output-dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Letters map to semaphore poses, digits currently share the pose of 'a'.")
	fmt.Fprintln(w, "Spaces and newlines leave an empty cell; other characters are skipped.")
}
