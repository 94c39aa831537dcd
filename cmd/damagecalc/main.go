// damagecalc evaluates matchups from a YAML file and prints the results as JSON.
//
// Usage:
//
//	go run ./cmd/damagecalc -in matchup.yaml
//	go run ./cmd/damagecalc -in matchups.yaml -data ./data -pretty
//	cat matchup.yaml | go run ./cmd/damagecalc
//
// The file holds either a single matchup (pokemon_a, pokemon_b, conditions)
// or a list under "matchups".
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/dmgcalc/internal/damage"
	"github.com/udisondev/dmgcalc/internal/data"
)

type options struct {
	dataDir     string
	pretty      bool
	concurrency int
}

type matchupFile struct {
	damage.Request `yaml:",inline"`
	Matchups       []damage.Request `yaml:"matchups"`
}

func main() {
	in := flag.String("in", "-", "matchup YAML file, - for stdin")
	dataDir := flag.String("data", "", "directory overlaying species.yaml / moves.yaml")
	pretty := flag.Bool("pretty", false, "indent JSON output")
	concurrency := flag.Int("j", 4, "matchups evaluated in parallel")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	r := io.Reader(os.Stdin)
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	opts := options{dataDir: *dataDir, pretty: *pretty, concurrency: *concurrency}
	if err := evaluate(context.Background(), r, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// evaluate decodes matchups from r and writes the JSON results to w.
// A single matchup is written as an object, a list as an array.
func evaluate(ctx context.Context, r io.Reader, w io.Writer, opts options) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	var mf matchupFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return fmt.Errorf("parsing matchups: %w", err)
	}

	dex, err := data.LoadDex(opts.dataDir)
	if err != nil {
		return fmt.Errorf("loading static data: %w", err)
	}

	batch := len(mf.Matchups)
	if batch == 0 {
		batch = 1
	}
	svc := damage.NewService(dex, nil, damage.Config{
		BatchConcurrency: opts.concurrency,
		MaxBatchSize:     batch,
	})

	var out any
	if len(mf.Matchups) > 0 {
		out, err = svc.CalculateBatch(ctx, mf.Matchups)
	} else {
		out, err = svc.Calculate(ctx, mf.Request)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
