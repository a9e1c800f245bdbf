// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package aclpfx

import "net/netip"

// ComplementIndex maps a network address to the complement prefixes
// starting at that address.
//
// Complements are prefixes that are excluded elsewhere in the consuming
// system, e.g. a destination-exclude next to a destination-address list.
// They are only used to veto merges that would change the outcome of
// such an exclude.
type ComplementIndex map[netip.Addr][]netip.Prefix

// NewComplementIndex indexes complements by network address. Complements
// not starting at the network address of any prefix in addrs can never
// veto a merge and are dropped.
func NewComplementIndex(addrs, complements []AnnotatedPrefix) ComplementIndex {
	if len(complements) == 0 {
		return nil
	}

	present := make(map[netip.Addr]struct{}, len(addrs))
	for _, a := range addrs {
		present[a.Prefix.Masked().Addr()] = struct{}{}
	}

	idx := make(ComplementIndex)
	for _, c := range complements {
		pfx := c.Prefix.Masked()
		if _, ok := present[pfx.Addr()]; ok {
			idx[pfx.Addr()] = append(idx[pfx.Addr()], pfx)
		}
	}
	return idx
}

// IsSafeToMerge reports whether candidate may be absorbed by mergeTarget.
//
// The merge is unsafe if a complement starting at the candidate's network
// address is at least as specific as mergeTarget but less specific than
// candidate: after the merge the most specific match for addresses in the
// complement would no longer be the candidate, reversing the intent of the
// exclude. Consider
//
//	destination-address: 10.0.0.0/8, 10.0.0.0/10
//	destination-exclude: 10.0.0.0/9
//
// Here 10.0.0.1 matches via the /10, absorbing the /10 into the /8 would
// make the /9 exclude win.
func IsSafeToMerge(candidate, mergeTarget netip.Prefix, idx ComplementIndex) bool {
	for _, c := range idx[candidate.Addr()] {
		if mergeTarget.Bits() <= c.Bits() && c.Bits() < candidate.Bits() {
			return false
		}
	}
	return true
}
