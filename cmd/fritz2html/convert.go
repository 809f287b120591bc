package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianc/fritz2html/internal/fritz2html/outfile"
	"github.com/kilianc/fritz2html/pkg/fritz2html"
)

type convertFlags struct {
	output         string
	byteRange      string
	indentWidth    int
	tabs           bool
	keepWhitespace bool
	minify         bool
}

func newConvertCmd(a *app) *cobra.Command {
	f := &convertFlags{}
	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert HTML to fritz2 code",
		Long: `Without paths, reads HTML from stdin and writes fritz2 code to stdout.

Paths behave like Go patterns and generate one *.html.kt file next to each
*.html source:
  - ./...          recurse from cwd
  - ./dir          only that directory (non-recursive)
  - ./dir/...      recurse from that directory
  - ./page.html    only that file

With --range start:end and a single file, the markup in that byte range is
replaced in place by its conversion.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyFlags(cmd, f)
			return a.runConvert(cmd, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the conversion of a single input to this file")
	cmd.Flags().StringVar(&f.byteRange, "range", "", "replace the byte range start:end of a single file in place")
	cmd.Flags().IntVar(&f.indentWidth, "indent", 0, "spaces per indent level (overrides config)")
	cmd.Flags().BoolVar(&f.tabs, "tabs", false, "indent with tabs (overrides config)")
	cmd.Flags().BoolVar(&f.keepWhitespace, "keep-whitespace", false, "keep whitespace-only text (overrides config)")
	cmd.Flags().BoolVar(&f.minify, "minify", false, "collapse whitespace before parsing (overrides config)")
	return cmd
}

// applyFlags lets explicitly set flags win over the config file.
func (a *app) applyFlags(cmd *cobra.Command, f *convertFlags) {
	fl := cmd.Flags()
	if fl.Changed("indent") {
		a.cfg.IndentWidth = f.indentWidth
	}
	if fl.Changed("tabs") {
		a.cfg.UseTabs = f.tabs
	}
	if fl.Changed("keep-whitespace") {
		a.cfg.KeepWhitespace = f.keepWhitespace
	}
	if fl.Changed("minify") {
		a.cfg.Minify = f.minify
	}
}

func (a *app) options() []fritz2html.Option {
	return []fritz2html.Option{
		fritz2html.WithIndent(a.cfg.Indent()),
		fritz2html.WithKeepWhitespace(a.cfg.KeepWhitespace),
		fritz2html.WithMinify(a.cfg.Minify),
		fritz2html.WithLogger(a.log),
	}
}

func (a *app) convert(src []byte) (string, error) {
	return fritz2html.Convert(src, a.options()...)
}

func (a *app) runConvert(cmd *cobra.Command, f *convertFlags, args []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if len(args) == 0 {
		if f.byteRange != "" {
			return fmt.Errorf("fritz2html: --range needs a file")
		}
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		out, err := a.convert(src)
		if err != nil {
			return err
		}
		return a.emit(cmd, f.output, out)
	}

	if f.byteRange != "" {
		if len(args) != 1 || f.output != "" {
			return fmt.Errorf("fritz2html: --range needs exactly one file and no --output")
		}
		start, end, err := parseRange(f.byteRange)
		if err != nil {
			return err
		}
		return a.replaceRange(args[0], start, end)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	paths, err := collectHTMLPaths(cwd, args)
	if err != nil {
		return err
	}
	if f.output != "" {
		if len(paths) != 1 {
			return fmt.Errorf("fritz2html: --output needs exactly one input, got %d", len(paths))
		}
		src, err := os.ReadFile(paths[0])
		if err != nil {
			return err
		}
		out, err := a.convert(src)
		if err != nil {
			return fmt.Errorf("%s: %w", paths[0], err)
		}
		return a.emit(cmd, f.output, out)
	}

	sort.Strings(paths)
	var allErr error
	for _, pth := range paths {
		if err := a.generateFile(pth); err != nil {
			allErr = errors.Join(allErr, err)
		}
	}
	return allErr
}

// emit writes out to stdout or to the output file. Both get the same bytes:
// nothing for an empty conversion, otherwise out and a trailing newline.
func (a *app) emit(cmd *cobra.Command, output, out string) error {
	if output == "" {
		_, err := cmd.OutOrStdout().Write(terminated(out))
		return err
	}
	a.log.Debug("writing output", "path", output)
	return outfile.WriteGeneratedFile(output, terminated(out))
}

func terminated(out string) []byte {
	if out == "" {
		return nil
	}
	return []byte(out + "\n")
}

// generateFile writes <pth>.kt next to the HTML source.
func (a *app) generateFile(pth string) error {
	b, err := os.ReadFile(pth)
	if err != nil {
		return err
	}
	out, err := a.convert(b)
	if err != nil {
		return fmt.Errorf("%s: %w", pth, err)
	}
	outPath := pth + ".kt"
	a.log.Debug("generating", "source", pth, "out", outPath)
	return outfile.WriteGeneratedFile(outPath, terminated(out))
}

// replaceRange converts the markup in [start, end) of pth and splices the
// result back in a single write. An empty conversion leaves the file as is.
func (a *app) replaceRange(pth string, start, end int) error {
	b, err := os.ReadFile(pth)
	if err != nil {
		return err
	}
	if end > len(b) || start > end {
		return fmt.Errorf("range %d:%d out of bounds for %s (%d bytes)", start, end, pth, len(b))
	}
	out, err := a.convert(b[start:end])
	if err != nil {
		return fmt.Errorf("%s: %w", pth, err)
	}
	if out == "" {
		a.log.Debug("empty conversion, file left unchanged", "path", pth)
		return nil
	}
	return outfile.ReplaceRange(pth, start, end, out)
}

func parseRange(s string) (int, int, error) {
	before, after, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q: want start:end", s)
	}
	start, err := strconv.Atoi(before)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start %q: %w", before, err)
	}
	end, err := strconv.Atoi(after)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end %q: %w", after, err)
	}
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("invalid range %q", s)
	}
	return start, end, nil
}
