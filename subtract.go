// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package aclpfx

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/gaissmai/aclpfx/internal/cidr"
)

// Subtract returns the addresses of superset not covered by any prefix in
// excludes. Prefixes split by an exclude keep the comment and tokens of
// the prefix they were split from.
//
// With collapse set, both inputs and the result are collapsed, otherwise
// the result is sorted by network key with duplicate prefixes removed.
// The inputs are not modified.
func Subtract(superset, excludes []AnnotatedPrefix, collapse bool) []AnnotatedPrefix {
	var sup, exc []AnnotatedPrefix
	if collapse {
		sup = Collapse(superset, nil)
		exc = Collapse(excludes, nil)
	} else {
		sup = SortByNetworkKey(masked(superset))
		exc = SortByNetworkKey(masked(excludes))
	}

	// both are stacks, the smallest network key on top
	slices.Reverse(sup)
	slices.Reverse(exc)

	var out []AnnotatedPrefix
	var splits int

	for len(sup) > 0 && len(exc) > 0 {
		top, ex := sup[len(sup)-1], exc[len(exc)-1]

		switch {
		case top.Overlaps(ex):
			sup = sup[:len(sup)-1]
			rest := RemoveAddressFromList([]AnnotatedPrefix{top}, ex)
			for _, r := range slices.Backward(rest) {
				sup = pushSorted(sup, r)
			}
			splits++
		case cmpNetworkKey(top, ex) < 0:
			// top is below ex and all remaining excludes
			out = append(out, top)
			sup = sup[:len(sup)-1]
		default:
			// ex is below top and all remaining superset prefixes
			exc = exc[:len(exc)-1]
		}
	}
	out = append(out, sup...)

	if collapse {
		out = Collapse(out, nil)
	} else {
		out = dedupSorted(SortByNetworkKey(out))
	}

	if l := debugLog(); l != nil {
		l.WithFields(logrus.Fields{
			"superset": len(superset),
			"excludes": len(excludes),
			"splits":   splits,
			"out":      len(out),
		}).Debug("subtracted prefix lists")
	}

	return out
}

// pushSorted inserts a into the stack, keeping it ordered with the
// smallest network key on top.
//
// For collapsed input the split results are always smaller than the rest
// of the stack and end up on top. Uncollapsed input may have nested
// prefixes below the top, then the split results must be sorted in.
func pushSorted(stack []AnnotatedPrefix, a AnnotatedPrefix) []AnnotatedPrefix {
	i := len(stack)
	for i > 0 && cmpNetworkKey(stack[i-1], a) < 0 {
		i--
	}
	return slices.Insert(stack, i, a)
}

// RemoveAddressFromList removes exclude from every prefix in superset.
//
// Prefixes inside exclude are dropped, prefixes containing exclude are
// split into the prefixes covering the rest, each with the comment and
// tokens of the prefix it was split from. The result is sorted by network
// key.
func RemoveAddressFromList(superset []AnnotatedPrefix, exclude AnnotatedPrefix) []AnnotatedPrefix {
	hole := exclude.Prefix.Masked()

	var out []AnnotatedPrefix
	for _, a := range superset {
		pfx := a.Prefix.Masked()
		switch {
		case cidr.Contains(hole, pfx):
			// gone
		case cidr.Contains(pfx, hole):
			for _, rest := range cidr.SplitExcluding(pfx, hole) {
				out = append(out, a.withPrefix(rest))
			}
		default:
			out = append(out, a.withPrefix(pfx))
		}
	}

	return SortByNetworkKey(out)
}
