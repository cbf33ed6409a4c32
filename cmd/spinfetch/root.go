//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.bug.st/spinfetch"
)

type options struct {
	configPath string
	baseURL    string
	outputDir  string
	size       int64
	timeout    time.Duration
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "spinfetch",
		Short: "Download an image while a spinner keeps you company",
		Long: `spinfetch picks an image from its catalog by size, downloads it and
saves it locally, drawing a spinner on the terminal until the download
is over.

The built-in catalog only lists placeholder images: use --base-url or
--config to point spinfetch at a server that actually hosts them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.baseURL, "base-url", "", "base URL of the catalog images")
	flags.StringVar(&opts.outputDir, "output-dir", "", "directory where the image is saved")
	flags.Int64Var(&opts.size, "size", 0, "target image size in bytes")
	flags.DurationVar(&opts.timeout, "timeout", 0, "maximum duration of the download (0 waits forever)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	spinfetch.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).With().Timestamp().Logger())

	cfg := spinfetch.GetDefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = spinfetch.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	if opts.size > 0 {
		cfg.TargetSize = opts.size
	}
	if opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}
	cfg.Out = cmd.OutOrStdout()

	report, err := spinfetch.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s bytes downloaded\n", groupDigits(report.Size))
	fmt.Fprintln(out, "Name:", report.Name)
	fmt.Fprintf(out, "Elapsed time: %.3gs\n", report.Elapsed.Seconds())
	return nil
}

// groupDigits formats n with an underscore every three digits.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('_')
		}
		b.WriteRune(c)
	}
	return sign + b.String()
}
