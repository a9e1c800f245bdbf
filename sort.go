// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package aclpfx

import (
	"cmp"
	"slices"

	"github.com/gaissmai/aclpfx/internal/cidr"
)

// SortByNetworkKey returns a copy of addrs sorted by IP version, network
// address and prefix length. IPv4 sorts before IPv6, equal keys keep
// their input order.
func SortByNetworkKey(addrs []AnnotatedPrefix) []AnnotatedPrefix {
	out := slices.Clone(addrs)
	slices.SortStableFunc(out, cmpNetworkKey)
	return out
}

// cmpNetworkKey, compare func for prefix sort
func cmpNetworkKey(a, b AnnotatedPrefix) int {
	return cidr.Compare(a.Prefix, b.Prefix)
}

// groupByToken splits addrs into runs sharing the same ParentToken,
// runs are ordered by token.
func groupByToken(addrs []AnnotatedPrefix) [][]AnnotatedPrefix {
	sorted := slices.Clone(addrs)
	slices.SortStableFunc(sorted, func(a, b AnnotatedPrefix) int {
		return cmp.Compare(a.ParentToken, b.ParentToken)
	})

	var groups [][]AnnotatedPrefix
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].ParentToken == sorted[i].ParentToken {
			j++
		}
		groups = append(groups, sorted[i:j:j])
		i = j
	}
	return groups
}

// dedupSorted removes consecutive entries with equal prefixes,
// the first one wins.
func dedupSorted(sorted []AnnotatedPrefix) []AnnotatedPrefix {
	return slices.CompactFunc(sorted, func(a, b AnnotatedPrefix) bool {
		return a.Prefix == b.Prefix
	})
}
