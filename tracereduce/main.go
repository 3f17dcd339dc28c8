package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/itohio/tracereduce/pkg/config"
	"github.com/itohio/tracereduce/pkg/scope"
	"github.com/itohio/tracereduce/pkg/series"
)

func main() {
	var (
		configFlag      = flag.String("config", "config.yaml", "Configuration file path")
		inFlag          = flag.String("in", "", "Input CSV file (default stdin)")
		outFlag         = flag.String("out", "", "Output CSV file (default stdout)")
		toleranceFlag   = flag.Float64("tolerance", -1, "Reduction tolerance in device units (overrides config)")
		noReduceFlag    = flag.Bool("no-reduce", false, "Emit every visible sample")
		widthFlag       = flag.Float64("width", 0, "Plot width in device units (overrides config)")
		heightFlag      = flag.Float64("height", 0, "Plot height in device units (overrides config)")
		writeConfigFlag = flag.Bool("write-config", false, "Write the effective configuration to -config and exit")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Command line overrides
	if *toleranceFlag >= 0 {
		cfg.Reduction.Tolerance = *toleranceFlag
	}
	if *noReduceFlag {
		cfg.Reduction.Enabled = false
	}
	if *widthFlag > 0 {
		cfg.Plot.Width = *widthFlag
	}
	if *heightFlag > 0 {
		cfg.Plot.Height = *heightFlag
	}

	if *writeConfigFlag {
		if err := cfg.Save(*configFlag); err != nil {
			log.Fatalf("Failed to save configuration: %v", err)
		}
		log.Printf("Configuration written to %s", *configFlag)
		return
	}

	if err := run(cfg, *inFlag, *outFlag); err != nil {
		log.Fatal(err)
	}
}

// run reads series from in, reduces them and writes the traces to out.
// Empty paths select stdin and stdout.
func run(cfg *config.Config, in, out string) error {
	var r io.Reader = os.Stdin
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := series.ReadCSV(r)
	if err != nil {
		return fmt.Errorf("failed to read series: %w", err)
	}

	s := scope.New(cfg)
	if err := s.Update(data); err != nil {
		return fmt.Errorf("failed to reduce series: %w", err)
	}

	traces := s.Traces()
	reduced := make([]series.Series, len(traces))
	for i, t := range traces {
		log.Printf("Trace %q: %d samples, %d after decimation, %d points", t.Name, t.Input, t.Decimated, len(t.X))
		reduced[i] = series.Series{Name: t.Name, X: t.X, Y: t.Y}
	}

	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := series.WriteCSV(w, reduced...); err != nil {
		return fmt.Errorf("failed to write traces: %w", err)
	}
	return nil
}
