// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist reads newline-separated numbers from stdin and prints the
// value of a distribution function at each of them.
//
// Usage:
//
//	dist [flags] family
//
// For example,
//
//	seq 0 0.25 1 | dist --fn quantile --param 0 --param 1 norm
//
// prints the standard normal quantiles at 0, 0.25, 0.5, 0.75 and 1.
// Lines that are not numbers are logged and skipped.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/num"
	"github.com/aclements/go-distfn/stats"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := newDistCmd(log).Execute(); err != nil {
		log.Fatal("dist failed", zap.Error(err))
	}
}

type options struct {
	fn             string
	logForm        bool
	params         []float64
	precision      string
	paramPrecision string
}

func newDistCmd(log *zap.Logger) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "dist [flags] family",
		Short: "evaluate a distribution function over numbers on stdin",
		Long: `
  Reads one number per line from stdin and prints the density, cumulative
  probability or quantile of the named family at each of them.

  Input values and parameters are read at their own precisions and
  promoted to a common working precision: float32 only if both are
  float32, float64 otherwise.

  Families: ` + strings.Join(stats.Families(), " ") + `
`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDist(cmd.InOrStdin(), cmd.OutOrStdout(), log, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.fn, "fn", "pdf", "function to evaluate: pdf, cdf or quantile")
	f.BoolVar(&opts.logForm, "log", false, "print the natural log of the pdf or cdf")
	f.Float64SliceVar(&opts.params, "param", nil, "distribution parameter, in order; may be repeated")
	f.StringVar(&opts.precision, "precision", "float64", "precision of the input values: float32 or float64")
	f.StringVar(&opts.paramPrecision, "param-precision", "float64", "precision of the parameters: float32 or float64")
	return cmd
}

func runDist(r io.Reader, w io.Writer, log *zap.Logger, name string, opts options) error {
	family, err := stats.Lookup(name)
	if err != nil {
		return err
	}
	kind, err := stats.ParseKind(opts.fn)
	if err != nil {
		return err
	}
	xPrec, err := parsePrecision(opts.precision)
	if err != nil {
		return err
	}
	pPrec, err := parsePrecision(opts.paramPrecision)
	if err != nil {
		return err
	}

	xs, err := readInput(r, log, xPrec)
	if err != nil {
		return err
	}
	log.Debug("evaluating",
		zap.String("family", family.Name),
		zap.Stringer("fn", kind),
		zap.Stringer("precision", num.Resolve(xPrec, pPrec)))

	out := bufio.NewWriter(w)
	switch {
	case xPrec == num.Float32 && pPrec == num.Float32:
		err = evalAll(out, family, kind, toFloat32(xs), toFloat32(opts.params), opts.logForm)
	case xPrec == num.Float32:
		err = evalAll(out, family, kind, toFloat32(xs), opts.params, opts.logForm)
	case pPrec == num.Float32:
		err = evalAll(out, family, kind, xs, toFloat32(opts.params), opts.logForm)
	default:
		err = evalAll(out, family, kind, xs, opts.params, opts.logForm)
	}
	if err != nil {
		return err
	}
	return out.Flush()
}

func evalAll[X, P num.Real](w io.Writer, family stats.Family, kind stats.Kind, xs []X, params []P, logForm bool) error {
	for _, x := range xs {
		v, err := stats.EvalAs(family, kind, x, params, logForm)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%.6g\n", v)
	}
	return nil
}

func toFloat32(xs []float64) []float32 {
	return grid.MapSlice(xs, func(x float32) float32 { return x })
}

func parsePrecision(s string) (num.Precision, error) {
	switch s {
	case num.Float64.String():
		return num.Float64, nil
	case num.Float32.String():
		return num.Float32, nil
	}
	return 0, errors.Newf("unknown precision %q", s)
}

func bitSize(p num.Precision) int {
	if p == num.Float32 {
		return 32
	}
	return 64
}

func readInput(r io.Reader, log *zap.Logger, prec num.Precision) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, bitSize(prec))
		if err != nil {
			log.Warn("skipping input line", zap.Int("line", line), zap.Error(err))
			continue
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return xs, nil
}
