package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	stringproc "github.com/daviddahl/string-proc"
	"github.com/daviddahl/string-proc/config"
	"github.com/daviddahl/string-proc/diag"
	jsonsrc "github.com/daviddahl/string-proc/source/json"
)

func main() {
	var (
		cfgPath string
		input   string
		debug   bool
		collect bool
	)
	flag.StringVar(&cfgPath, "config", "", "path to a YAML run config")
	flag.StringVar(&input, "input", "", "path to a JSON telemetry envelope (default: built-in sample)")
	flag.BoolVar(&debug, "debug", false, "log per-step records and work counters")
	flag.BoolVar(&collect, "collect", false, "report every invalid entry instead of the first")
	flag.Parse()

	cfg := config.Config{Input: input, Debug: debug, Collect: collect}
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			fatalf("load config: %v", err)
		}
		cfg = loaded
		// Explicit flags win over the file.
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "input":
				cfg.Input = input
			case "debug":
				cfg.Debug = debug
			case "collect":
				cfg.Collect = collect
			}
		})
	}

	raw, err := loadInput(cfg.Input)
	if err != nil {
		fatalf("load input: %v", err)
	}
	fmt.Printf("Input: %d raw byte strings (with duplicates)\n", len(raw))

	opt := stringproc.ProcessOpt{MaxBytes: cfg.MaxBytes}
	if cfg.Collect {
		opt.OnInvalid = stringproc.Collect
	}

	ctx := context.Background()
	var out []string
	if cfg.Debug {
		logger, lerr := zap.NewDevelopment()
		if lerr != nil {
			fatalf("logger: %v", lerr)
		}
		defer func() { _ = logger.Sync() }()
		rec := &diag.Records{}
		out, err = stringproc.ProcessWithDiagnostics(ctx, raw, diag.Multi(rec, diag.NewZapSink(logger)), opt)
		st := rec.Stats()
		fmt.Printf("Work: %d inputs, %d unique, %d validated, %d bytes scanned (dedup %.1f%%)\n",
			st.Inputs, st.Unique, st.Validated, st.BytesScanned, st.DedupRatio()*100)
	} else {
		out, err = stringproc.Process(ctx, raw, opt)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error processing strings: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nProcessed strings:")
	for i, s := range out {
		fmt.Printf("  %d: %s\n", i, s)
	}
	fmt.Printf("\nTotal processed: %d strings\n", len(out))
}

func loadInput(path string) ([][]byte, error) {
	if path == "" {
		return sample(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jsonsrc.ExtractBytes(data)
}

// sample simulates attribute strings extracted from a few telemetry records.
func sample() [][]byte {
	return [][]byte{
		[]byte("service.name"),
		[]byte("http.method"),
		[]byte("service.name"),
		[]byte("http.status_code"),
		[]byte("region"),
		[]byte("http.method"),
		[]byte("trace.id"),
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
