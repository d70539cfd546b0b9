package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/evilscientress/android-call-log-converter/internal/config"
	"github.com/evilscientress/android-call-log-converter/internal/convert"
	"github.com/evilscientress/android-call-log-converter/internal/metrics"
	"github.com/evilscientress/android-call-log-converter/internal/render"
)

// Version is set at build time via -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	var (
		cfgPath     = flag.String("config", "", "path to optional YAML config")
		output      = flag.String("o", "", `output file, "-" for stdout (default: input name with .csv)`)
		fieldsFlag  = flag.String("fields", "", "comma separated column list (default: the standard 12 columns)")
		startFlag   = flag.String("start", "", "limit export to calls on or after this date (YYYY-MM-DD)")
		stopFlag    = flag.String("stop", "", "limit export to calls until (including) this date (YYYY-MM-DD)")
		tzFlag      = flag.String("timezone", "", "IANA timezone for all displayed timestamps (default Europe/Vienna)")
		scanAll     = flag.Bool("scan-all", false, "do not assume the export is sorted newest-first")
		showMetrics = flag.Bool("metrics", false, "print a metrics snapshot after the run")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] infile.json\n\nConverts a call log exported from an Android phone in json format to a csv file.\nUse \"-\" as infile to read from stdin.\n\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("calllog2csv " + Version)
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	infile := flag.Arg(0)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *tzFlag != "" {
		cfg.Timezone = *tzFlag
	}
	if *scanAll {
		cfg.ScanAll = true
	}
	if *showMetrics {
		cfg.Metrics.Enable = true
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("%v", err)
	}

	opts := render.Options{Fields: cfg.Fields, ScanAll: cfg.ScanAll}
	if *fieldsFlag != "" {
		opts.Fields = splitFields(*fieldsFlag)
	}
	if opts.Start, err = parseDate(*startFlag, loc); err != nil {
		log.Fatalf("-start: %v", err)
	}
	if opts.Stop, err = parseDate(*stopFlag, loc); err != nil {
		log.Fatalf("-stop: %v", err)
	}

	// Resolve input and output. A file input without -o writes next to
	// the input with a .csv extension; stdin without -o writes to stdout.
	var in io.Reader = os.Stdin
	outPath := *output
	if infile != "-" {
		f, err := os.Open(infile)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
		if outPath == "" {
			outPath = convert.OutputPath(infile)
		}
	}

	var out io.Writer = os.Stdout
	if outPath != "" && outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("open output: %v", err)
		}
		defer f.Close()
		out = f
	}

	if err := convert.Run(in, out, loc, opts); err != nil {
		log.Fatalf("convert: %v", err)
	}
	if outPath != "" && outPath != "-" {
		log.Printf("wrote %s", outPath)
	}

	if cfg.Metrics.Enable {
		snap, err := metrics.Snapshot()
		if err != nil {
			log.Printf("metrics snapshot: %v", err)
		} else if snap != "" {
			fmt.Fprintln(os.Stderr, "METRICS SNAPSHOT:\n"+snap)
		}
	}
}

func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseDate reads a YYYY-MM-DD calendar date as midnight in the display
// timezone. An empty string means no bound.
func parseDate(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return &t, nil
}
