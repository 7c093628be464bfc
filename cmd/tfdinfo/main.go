// Command tfdinfo computes time-frequency distributions of the built-in test
// signals and prints a summary table or the magnitude image as CSV.
//
// Usage:
//
//	tfdinfo [flags]
//
// Examples:
//
//	tfdinfo
//	tfdinfo -signal chirp -method wd
//	tfdinfo -signal atoms -method pwd -size 17 -csv > atoms_pwd.csv
//	tfdinfo -config tfd.json -backend gonum -workers 4
//	tfdinfo -input speech.wav -rate 8000 -n 1024 -method sm
//	tfdinfo -list
//	tfdinfo -v -no-color -signal fm
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/RyanBlaney/sonido-tfd/algorithms/signals"
	"github.com/RyanBlaney/sonido-tfd/algorithms/tfd"
	"github.com/RyanBlaney/sonido-tfd/analysis"
	"github.com/RyanBlaney/sonido-tfd/analysis/config"
	"github.com/RyanBlaney/sonido-tfd/logging"
	"github.com/RyanBlaney/sonido-tfd/transcode"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logging.Error(err, "tfdinfo failed")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tfdinfo", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON config file")
	input := fs.String("input", "", "audio file to analyse instead of the test signals (needs ffmpeg)")
	rate := fs.Int("rate", 8000, "decode sample rate for -input")
	signalName := fs.String("signal", "", "signal name (default: all)")
	methodName := fs.String("method", "", "distribution: stft, sm, pwd, wd (default: all)")
	length := fs.Int("n", 0, "signal length in samples")
	windowType := fs.String("window", "", "analysis window type")
	size := fs.Int("size", 0, "analysis window length")
	smooth := fs.Int("smooth", 0, "S-method smoothing window length (odd)")
	fftLength := fs.Int("fft", -1, "frequency bins (0 = signal length)")
	backend := fs.String("backend", "", "fft backend: go-dsp or gonum")
	workers := fs.Int("workers", 0, "column workers")
	asCSV := fs.Bool("csv", false, "print the positive-frequency magnitude image as CSV")
	list := fs.Bool("list", false, "list signals and distributions")
	verbose := fs.Bool("v", false, "debug logging")
	noColor := fs.Bool("no-color", false, "plain log output")
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(cfg, *length, *windowType, *size, *smooth, *fftLength, *backend, *workers)
	if *verbose {
		cfg.LogLevel = "debug"
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(level)
	if *noColor {
		logging.DisableColors()
	}

	catalog, err := signals.Catalog(cfg.SignalLength)
	if err != nil {
		return err
	}

	if *list {
		printList(stdout, catalog)
		return nil
	}

	var picked []signals.Named
	if *input != "" {
		s, err := decodeInput(*input, *rate, cfg.SignalLength)
		if err != nil {
			return err
		}
		picked = []signals.Named{s}
	} else {
		picked, err = pickSignals(catalog, *signalName, cfg.SignalLength)
		if err != nil {
			return err
		}
	}
	methods, err := pickMethods(*methodName)
	if err != nil {
		return err
	}

	a, err := analysis.NewAnalyzer(cfg)
	if err != nil {
		return err
	}

	if *asCSV {
		if len(picked) != 1 || len(methods) != 1 {
			return errors.New("-csv needs exactly one -signal and one -method")
		}
		return writeCSV(stdout, a, picked[0], methods[0])
	}
	return printSummaries(stdout, a, picked, methods)
}

func applyFlags(cfg *config.Config, length int, windowType string, size, smooth, fftLength int, backend string, workers int) {
	if length > 0 {
		cfg.SignalLength = length
	}
	if windowType != "" {
		cfg.WindowType = windowType
	}
	if size > 0 {
		cfg.WindowSize = size
	}
	if smooth > 0 {
		cfg.SmoothingSize = smooth
	}
	if fftLength >= 0 {
		cfg.FFTLength = fftLength
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if workers > 0 {
		cfg.Workers = workers
	}
}

// decodeInput reads up to n samples of an audio file and returns its
// analytic signal
func decodeInput(path string, rate, n int) (signals.Named, error) {
	cfg := transcode.DefaultDecoderConfig()
	cfg.SampleRate = rate
	cfg.MaxSamples = n

	samples, err := transcode.NewDecoder(cfg).DecodeFile(context.Background(), path)
	if err != nil {
		return signals.Named{}, err
	}
	return signals.Named{
		Name:        filepath.Base(path),
		Description: fmt.Sprintf("%d samples at %d Hz", len(samples), rate),
		Samples:     signals.Analytic(samples),
	}, nil
}

func pickSignals(catalog []signals.Named, name string, n int) ([]signals.Named, error) {
	if name == "" {
		return catalog, nil
	}
	s, err := signals.Lookup(name, n)
	if err != nil {
		return nil, fmt.Errorf("%w (try -list)", err)
	}
	return []signals.Named{s}, nil
}

func pickMethods(name string) ([]tfd.Method, error) {
	if name == "" {
		return tfd.Methods(), nil
	}
	m, err := tfd.ParseMethod(name)
	if err != nil {
		return nil, err
	}
	return []tfd.Method{m}, nil
}

func printList(w io.Writer, catalog []signals.Named) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SIGNAL\tDESCRIPTION")
	for _, s := range catalog {
		fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "METHOD\tTITLE")
	for _, m := range tfd.Methods() {
		fmt.Fprintf(tw, "%s\t%s\n", m, m.Title())
	}
	tw.Flush()
}

func printSummaries(w io.Writer, a *analysis.Analyzer, picked []signals.Named, methods []tfd.Method) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "signal\tmethod\tpeak t\tpeak f\tmean f\tenergy\tconcentration\trenyi\t")

	for _, s := range picked {
		for _, m := range methods {
			sum, err := a.Summarize(m, s.Samples)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", s.Name, m, err)
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%.4f\t%.4f\t%.4g\t%.4f\t%.3f\t\n",
				s.Name, m.Title(), sum.PeakTime, sum.PeakFrequency, sum.MeanPeakFrequency,
				sum.Energy, sum.Concentration, sum.RenyiEntropy)
		}
	}
	return tw.Flush()
}

// writeCSV prints one row per time sample, one column per non-negative
// frequency bin
func writeCSV(w io.Writer, a *analysis.Analyzer, s signals.Named, m tfd.Method) error {
	img, err := a.Image(m, s.Samples)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	rows, cols := img.Dims()
	record := make([]string, cols)
	for r := range rows {
		for c := range cols {
			record[c] = strconv.FormatFloat(img.At(r, c), 'g', 6, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
