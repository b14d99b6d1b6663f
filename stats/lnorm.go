// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-distfn/grid"
	"github.com/aclements/go-distfn/num"
)

// Dlnorm returns the density at x of the log-normal distribution whose
// logarithm has mean mu and standard deviation sigma, or its natural
// log if logForm.
func Dlnorm[W num.Float](x, mu, sigma W, logForm bool) W {
	if !locScaleValid(mu, sigma) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	if x <= 0 || num.IsInf(x, 1) {
		return zeroProb[W](logForm)
	}
	lx := num.Log(x)
	return expUnless(Dnorm(lx, mu, sigma, true)-lx, logForm)
}

// Plnorm returns the cumulative probability at x of the log-normal
// distribution, or its natural log if logForm.
func Plnorm[W num.Float](x, mu, sigma W, logForm bool) W {
	if !locScaleValid(mu, sigma) || num.IsNaN(x) {
		return num.NaN[W]()
	}
	switch {
	case belowEpsilon(x):
		return zeroProb[W](logForm)
	case num.IsInf(x, 1):
		return oneProb[W](logForm)
	}
	return Pnorm(num.Log(x), mu, sigma, logForm)
}

// Qlnorm returns the quantile at p of the log-normal distribution.
func Qlnorm[W num.Float](p, mu, sigma W) W {
	if !locScaleValid(mu, sigma) {
		return num.NaN[W]()
	}
	if q, ok := quantileEdge(p, 0, num.Inf[W](1)); ok {
		return q
	}
	return num.Exp(Qnorm(p, mu, sigma))
}

// DlnormGrid returns Dlnorm of every element of xs.
func DlnormGrid[X num.Real, W num.Float](xs grid.Reader[X], mu, sigma W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Dlnorm(x, mu, sigma, logForm) })
}

// PlnormGrid returns Plnorm of every element of xs.
func PlnormGrid[X num.Real, W num.Float](xs grid.Reader[X], mu, sigma W, logForm bool) *grid.Grid[W] {
	return grid.Map(xs, func(x W) W { return Plnorm(x, mu, sigma, logForm) })
}

// QlnormGrid returns Qlnorm of every element of ps.
func QlnormGrid[X num.Real, W num.Float](ps grid.Reader[X], mu, sigma W) *grid.Grid[W] {
	return grid.Map(ps, func(p W) W { return Qlnorm(p, mu, sigma) })
}

// LogNormalDist is a log-normal distribution: the distribution of
// exp(Y) where Y is normal with mean Mu and standard deviation Sigma.
type LogNormalDist struct {
	Mu, Sigma float64
}

func (d LogNormalDist) PDF(x float64) float64    { return Dlnorm(x, d.Mu, d.Sigma, false) }
func (d LogNormalDist) LogPDF(x float64) float64 { return Dlnorm(x, d.Mu, d.Sigma, true) }
func (d LogNormalDist) CDF(x float64) float64    { return Plnorm(x, d.Mu, d.Sigma, false) }
func (d LogNormalDist) LogCDF(x float64) float64 { return Plnorm(x, d.Mu, d.Sigma, true) }
func (d LogNormalDist) InvCDF(y float64) float64 { return Qlnorm(y, d.Mu, d.Sigma) }

func (d LogNormalDist) PDFEach(xs []float64) []float64 {
	return DlnormGrid(column(xs), d.Mu, d.Sigma, false).RawData()
}

func (d LogNormalDist) CDFEach(xs []float64) []float64 {
	return PlnormGrid(column(xs), d.Mu, d.Sigma, false).RawData()
}

func (d LogNormalDist) InvCDFEach(ys []float64) []float64 {
	return QlnormGrid(column(ys), d.Mu, d.Sigma).RawData()
}

func (d LogNormalDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.999)
}
