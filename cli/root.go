package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/blastramp/blastramp"
	"github.com/blastramp/blastramp/probe"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	jsonOutput bool
	configPath string
	verbose    bool
)

// probeConfig is the optional YAML probe list: candidate libraries tried
// in order, the way a host would express its preferred BLAS backends.
type probeConfig struct {
	Libraries []string `yaml:"libraries"`
}

type report struct {
	Path       string `json:"path"`
	Suffix     string `json:"suffix,omitempty"`
	Interface  string `json:"interface"`
	Convention string `json:"convention,omitempty"`
	Error      string `json:"error,omitempty"`
}

var rootCmd = &cobra.Command{
	Use:          "blastramp <shared library>...",
	Short:        "Detect the symbol mangling suffix and integer-width ABI of BLAS/LAPACK libraries",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(verbose)

		paths, err := gatherPaths(args)
		if err != nil {
			return err
		}

		var failed bool
		for _, path := range paths {
			r := probeOne(path, logger)
			if r.Error != "" || r.Interface == probe.WidthUnknown.String() {
				failed = true
			}
			if err := printReport(cmd, r); err != nil {
				return err
			}
		}
		if failed {
			return errors.New("one or more libraries have no usable ABI")
		}
		return nil
	},
}

func gatherPaths(args []string) ([]string, error) {
	paths := append([]string{}, args...)
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
		var cfg probeConfig
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
		paths = append(paths, cfg.Libraries...)
	}
	if len(paths) == 0 {
		if env := os.Getenv("BLASTRAMP_LIB"); env != "" {
			paths = append(paths, env)
		}
	}
	if len(paths) == 0 {
		return nil, errors.New("no libraries to probe: pass paths, --config, or set BLASTRAMP_LIB")
	}
	return paths, nil
}

func probeOne(path string, logger *slog.Logger) report {
	r := report{Path: path, Interface: probe.WidthUnknown.String()}

	library, err := blastramp.Open(path, blastramp.WithLogger(logger))
	if err != nil {
		r.Error = err.Error()
		return r
	}
	defer library.Close()

	detection, err := library.Detect()
	if err != nil {
		r.Error = err.Error()
		return r
	}

	r.Suffix = detection.Suffix
	r.Interface = detection.Width.String()
	if detection.Convention != probe.ConventionUnknown {
		r.Convention = detection.Convention.String()
	}
	return r
}

func printReport(cmd *cobra.Command, r report) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	if r.Error != "" {
		_, err := fmt.Fprintf(out, "%s: error: %s\n", r.Path, r.Error)
		return err
	}
	line := fmt.Sprintf("%s: suffix %q interface %s", r.Path, r.Suffix, r.Interface)
	if r.Convention != "" {
		line += " convention " + r.Convention
	}
	_, err := fmt.Fprintln(out, line)
	return err
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit one JSON report per library")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file listing candidate libraries to probe")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log probe steps")
}
