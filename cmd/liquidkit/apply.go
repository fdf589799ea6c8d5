package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/liquidkit/pkg/config"
	"github.com/dmitrymomot/liquidkit/svc/render"
)

type applyOptions struct {
	pipeline    string
	preset      string
	presetsFile string
	keepNewline bool
}

func newApplyCmd() *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Run a filter pipeline over a file or stdin",
		Long: `Apply reads text from the given file, or stdin when no file is given,
runs it through a filter pipeline and prints the result.

  echo '<p>Hello World</p>' | liquidkit apply --pipeline 'strip_html | truncate: 8'
  liquidkit apply --preset card_title --presets presets.yaml title.html

Presets default to the file named by RENDER_PRESETS_FILE.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.pipeline, "pipeline", "p", "", "filter pipeline, e.g. 'strip_html | truncate: 20'")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "named pipeline from the presets file")
	cmd.Flags().StringVar(&opts.presetsFile, "presets", "", "YAML presets file")
	cmd.Flags().BoolVar(&opts.keepNewline, "keep-newline", false, "keep the trailing newline of the input")
	cmd.MarkFlagsMutuallyExclusive("pipeline", "preset")

	return cmd
}

func runApply(cmd *cobra.Command, opts *applyOptions, args []string) error {
	var cfg render.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if opts.presetsFile != "" {
		cfg.PresetsFile = opts.presetsFile
	}
	if opts.preset == "" {
		cfg.PresetsFile = ""
	}

	svc, err := render.NewService(cfg)
	if err != nil {
		return err
	}

	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if !opts.keepNewline {
		input = strings.TrimSuffix(strings.TrimSuffix(input, "\n"), "\r")
	}

	out, err := svc.Render(cmd.Context(), input, opts.pipeline, opts.preset)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func readInput(stdin io.Reader, args []string) (string, error) {
	r := stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
