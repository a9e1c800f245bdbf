// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Profiling driver for the collapse and subtract hot paths,
// run it under perf or with a CPU profiler attached.
package main

import (
	"math/rand/v2"
	"net/netip"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gaissmai/aclpfx"
	"github.com/gaissmai/aclpfx/internal/tests/random"
)

var (
	prng = rand.New(rand.NewPCG(42, 42))
	mpp  = netip.MustParsePrefix
)

func annotate(pfxs []netip.Prefix, token string) []aclpfx.AnnotatedPrefix {
	out := make([]aclpfx.AnnotatedPrefix, 0, len(pfxs))
	for _, pfx := range pfxs {
		out = append(out, aclpfx.New(pfx, pfx.String(), token))
	}
	return out
}

func main() {
	addrs := annotate(random.Within(prng, mpp("10.0.0.0/8"), 16, 100_000), "ADDRS")
	addrs = append(addrs, annotate(random.Within(prng, mpp("2001:db8::/32"), 32, 100_000), "ADDRS")...)
	excludes := annotate(random.Within(prng, mpp("10.0.0.0/8"), 20, 10_000), "EXCLUDES")

	start := time.Now()
	var collapsed, subtracted []aclpfx.AnnotatedPrefix
	for range 100 {
		collapsed = aclpfx.Collapse(addrs, excludes)
		subtracted = aclpfx.Subtract(addrs, excludes, true)
	}

	logrus.WithFields(logrus.Fields{
		"addrs":      len(addrs),
		"excludes":   len(excludes),
		"collapsed":  len(collapsed),
		"subtracted": len(subtracted),
		"elapsed":    time.Since(start),
	}).Info("done")
}
