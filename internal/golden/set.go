// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden is a simple and slow prefix set, a slice of prefixes,
// used as reference for the address coverage of collapsed and
// subtracted prefix lists.
package golden

import (
	"cmp"
	"net/netip"
	"slices"

	"github.com/gaissmai/aclpfx/internal/cidr"
)

// Set is the union of the addresses of its prefixes.
type Set []netip.Prefix

// Insert adds pfx, masked, duplicates are ignored.
func (s *Set) Insert(pfx netip.Prefix) {
	pfx = pfx.Masked()
	if slices.Contains(*s, pfx) {
		return
	}
	*s = append(*s, pfx)
}

// Contains reports whether any prefix of s contains addr.
func (s Set) Contains(addr netip.Addr) bool {
	for _, pfx := range s {
		if pfx.Contains(addr) {
			return true
		}
	}
	return false
}

// Probes returns the addresses where coverage of s may change: the first
// and last address of every prefix and their outer neighbors.
func (s Set) Probes() []netip.Addr {
	var probes []netip.Addr
	for _, pfx := range s {
		first, last := pfx.Addr(), cidr.LastAddr(pfx)
		probes = append(probes, first, last)
		if prev := first.Prev(); prev.IsValid() {
			probes = append(probes, prev)
		}
		if next := last.Next(); next.IsValid() {
			probes = append(probes, next)
		}
	}
	slices.SortFunc(probes, netip.Addr.Compare)
	return slices.Compact(probes)
}

// Diff returns the first probe address covered by exactly one of a and b.
// Coverage only changes at prefix boundaries, probing both boundary sets
// is exact.
func Diff(a, b Set) (addr netip.Addr, differ bool) {
	probes := append(a.Probes(), b.Probes()...)
	slices.SortFunc(probes, netip.Addr.Compare)

	for _, p := range probes {
		if a.Contains(p) != b.Contains(p) {
			return p, true
		}
	}
	return addr, false
}

// Equal reports whether a and b cover the same addresses.
func Equal(a, b Set) bool {
	_, differ := Diff(a, b)
	return !differ
}

// Minus returns the addresses of a not covered by b, as canonical prefixes.
func Minus(a, b Set) Set {
	work := slices.Clone(a)
	for _, hole := range b {
		var next Set
		for _, pfx := range work {
			next = append(next, cidr.SplitExcluding(pfx, hole)...)
		}
		work = next
	}
	slices.SortFunc(work, CmpPrefix)
	return slices.Compact(work)
}

// CmpPrefix, helper function, compare func for prefix sort,
// all cidrs are already normalized
func CmpPrefix(a, b netip.Prefix) int {
	if cmpAddr := a.Addr().Compare(b.Addr()); cmpAddr != 0 {
		return cmpAddr
	}

	return cmp.Compare(a.Bits(), b.Bits())
}
