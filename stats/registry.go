// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/aclements/go-distfn/num"
)

var (
	// ErrUnknownFamily is returned by Lookup for a name that is not
	// a registered family.
	ErrUnknownFamily = errors.New("unknown distribution family")

	// ErrParamCount is returned by Family.Eval when the number of
	// parameters does not match the family.
	ErrParamCount = errors.New("wrong number of distribution parameters")

	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("unknown function kind")
)

// A Kind selects which function of a family to evaluate.
type Kind int

const (
	PDF Kind = iota // density or mass
	CDF
	Quantile
)

func (k Kind) String() string {
	switch k {
	case PDF:
		return "pdf"
	case CDF:
		return "cdf"
	case Quantile:
		return "quantile"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the Kind named s: "pdf", "cdf" or "quantile".
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{PDF, CDF, Quantile} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// A Family describes a distribution family that can be evaluated by
// name.
type Family struct {
	// Name is the short name of the family, such as "norm".
	Name string

	// Params names the family's parameters in the order Eval
	// expects them.
	Params []string

	// Discrete is true for families with a mass function.
	Discrete bool

	f32 evaluator[float32]
	f64 evaluator[float64]
}

// Eval evaluates the kind function of f at x with the given parameters.
// Evaluation happens in float32 if prec is num.Float32 and in float64
// otherwise. logForm is ignored for Quantile.
//
// Eval returns an error only if params has the wrong length; invalid
// parameter values produce NaN like the underlying functions.
func (f Family) Eval(kind Kind, x float64, params []float64, logForm bool, prec num.Precision) (float64, error) {
	if len(params) != len(f.Params) {
		return 0, errors.Wrapf(ErrParamCount, "%s takes %d (%v), got %d", f.Name, len(f.Params), f.Params, len(params))
	}
	if prec == num.Float32 {
		ps := make([]float32, len(params))
		for i, p := range params {
			ps[i] = float32(p)
		}
		v, err := f.f32.eval(kind, float32(x), ps, logForm)
		return float64(v), err
	}
	return f.f64.eval(kind, x, params, logForm)
}

// EvalAs is like f.Eval, but takes the argument and parameters in
// their own types and evaluates in the working precision they promote
// to: float32 only if X and P are both float32 types, and float64
// otherwise.
func EvalAs[X, P num.Real](f Family, kind Kind, x X, params []P, logForm bool) (float64, error) {
	prec := num.Resolve(num.PrecisionOf[X](), num.PrecisionOf[P]())
	ps := make([]float64, len(params))
	for i, p := range params {
		ps[i] = float64(p)
	}
	return f.Eval(kind, float64(x), ps, logForm, prec)
}

type evaluator[W num.Float] struct {
	d, p func(x W, ps []W, logForm bool) W
	q    func(p W, ps []W) W
}

func (e evaluator[W]) eval(kind Kind, x W, ps []W, logForm bool) (W, error) {
	switch kind {
	case PDF:
		return e.d(x, ps, logForm), nil
	case CDF:
		return e.p(x, ps, logForm), nil
	case Quantile:
		return e.q(x, ps), nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%v", kind)
}

func oneParam[W num.Float](d, p func(x, a W, logForm bool) W, q func(p, a W) W) evaluator[W] {
	return evaluator[W]{
		d: func(x W, ps []W, lf bool) W { return d(x, ps[0], lf) },
		p: func(x W, ps []W, lf bool) W { return p(x, ps[0], lf) },
		q: func(x W, ps []W) W { return q(x, ps[0]) },
	}
}

func twoParam[W num.Float](d, p func(x, a, b W, logForm bool) W, q func(p, a, b W) W) evaluator[W] {
	return evaluator[W]{
		d: func(x W, ps []W, lf bool) W { return d(x, ps[0], ps[1], lf) },
		p: func(x W, ps []W, lf bool) W { return p(x, ps[0], ps[1], lf) },
		q: func(x W, ps []W) W { return q(x, ps[0], ps[1]) },
	}
}

var families = map[string]Family{
	"bern": {Name: "bern", Params: []string{"prob"}, Discrete: true,
		f32: oneParam(Dbern[float32], Pbern[float32], Qbern[float32]),
		f64: oneParam(Dbern[float64], Pbern[float64], Qbern[float64])},
	"beta": {Name: "beta", Params: []string{"a", "b"},
		f32: twoParam(Dbeta[float32], Pbeta[float32], Qbeta[float32]),
		f64: twoParam(Dbeta[float64], Pbeta[float64], Qbeta[float64])},
	"binom": {Name: "binom", Params: []string{"n", "prob"}, Discrete: true,
		f32: twoParam(Dbinom[float32], Pbinom[float32], Qbinom[float32]),
		f64: twoParam(Dbinom[float64], Pbinom[float64], Qbinom[float64])},
	"cauchy": {Name: "cauchy", Params: []string{"mu", "sigma"},
		f32: twoParam(Dcauchy[float32], Pcauchy[float32], Qcauchy[float32]),
		f64: twoParam(Dcauchy[float64], Pcauchy[float64], Qcauchy[float64])},
	"chisq": {Name: "chisq", Params: []string{"dof"},
		f32: oneParam(Dchisq[float32], Pchisq[float32], Qchisq[float32]),
		f64: oneParam(Dchisq[float64], Pchisq[float64], Qchisq[float64])},
	"exp": {Name: "exp", Params: []string{"rate"},
		f32: oneParam(Dexp[float32], Pexp[float32], Qexp[float32]),
		f64: oneParam(Dexp[float64], Pexp[float64], Qexp[float64])},
	"f": {Name: "f", Params: []string{"df1", "df2"},
		f32: twoParam(Df[float32], Pf[float32], Qf[float32]),
		f64: twoParam(Df[float64], Pf[float64], Qf[float64])},
	"gamma": {Name: "gamma", Params: []string{"shape", "scale"},
		f32: twoParam(Dgamma[float32], Pgamma[float32], Qgamma[float32]),
		f64: twoParam(Dgamma[float64], Pgamma[float64], Qgamma[float64])},
	"invgamma": {Name: "invgamma", Params: []string{"shape", "rate"},
		f32: twoParam(Dinvgamma[float32], Pinvgamma[float32], Qinvgamma[float32]),
		f64: twoParam(Dinvgamma[float64], Pinvgamma[float64], Qinvgamma[float64])},
	"laplace": {Name: "laplace", Params: []string{"mu", "sigma"},
		f32: twoParam(Dlaplace[float32], Plaplace[float32], Qlaplace[float32]),
		f64: twoParam(Dlaplace[float64], Plaplace[float64], Qlaplace[float64])},
	"logis": {Name: "logis", Params: []string{"mu", "sigma"},
		f32: twoParam(Dlogis[float32], Plogis[float32], Qlogis[float32]),
		f64: twoParam(Dlogis[float64], Plogis[float64], Qlogis[float64])},
	"lnorm": {Name: "lnorm", Params: []string{"mu", "sigma"},
		f32: twoParam(Dlnorm[float32], Plnorm[float32], Qlnorm[float32]),
		f64: twoParam(Dlnorm[float64], Plnorm[float64], Qlnorm[float64])},
	"norm": {Name: "norm", Params: []string{"mu", "sigma"},
		f32: twoParam(Dnorm[float32], Pnorm[float32], Qnorm[float32]),
		f64: twoParam(Dnorm[float64], Pnorm[float64], Qnorm[float64])},
	"pois": {Name: "pois", Params: []string{"rate"}, Discrete: true,
		f32: oneParam(Dpois[float32], Ppois[float32], Qpois[float32]),
		f64: oneParam(Dpois[float64], Ppois[float64], Qpois[float64])},
	"t": {Name: "t", Params: []string{"dof"},
		f32: oneParam(Dt[float32], Pt[float32], Qt[float32]),
		f64: oneParam(Dt[float64], Pt[float64], Qt[float64])},
	"unif": {Name: "unif", Params: []string{"a", "b"},
		f32: twoParam(Dunif[float32], Punif[float32], Qunif[float32]),
		f64: twoParam(Dunif[float64], Punif[float64], Qunif[float64])},
	"weibull": {Name: "weibull", Params: []string{"shape", "scale"},
		f32: twoParam(Dweibull[float32], Pweibull[float32], Qweibull[float32]),
		f64: twoParam(Dweibull[float64], Pweibull[float64], Qweibull[float64])},
	"wilcox": {Name: "wilcox", Params: []string{"m", "n"}, Discrete: true,
		f32: twoParam(Dwilcox[float32], Pwilcox[float32], Qwilcox[float32]),
		f64: twoParam(Dwilcox[float64], Pwilcox[float64], Qwilcox[float64])},
}

// Lookup returns the family with the given short name.
func Lookup(name string) (Family, error) {
	f, ok := families[name]
	if !ok {
		return Family{}, errors.Wrapf(ErrUnknownFamily, "%q", name)
	}
	return f, nil
}

// Families returns the names of all registered families in sorted
// order.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
