// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package aclpfx

import "github.com/sirupsen/logrus"

// CollapseByToken collapses addrs, but only prefixes with the same
// ParentToken are ever merged. Complements are not considered.
//
// A token group whose prefixes are all inside the prefixes of another
// group is dropped, the output never has two groups where one just
// repeats addresses of the other under a different token.
func CollapseByToken(addrs []AnnotatedPrefix) []AnnotatedPrefix {
	groups := groupByToken(masked(addrs))

	var accepted [][]AnnotatedPrefix
	for _, group := range groups {
		group = Collapse(group, nil)

		keep := true
		for k := 0; k < len(accepted); {
			if IsSuperNet(accepted[k], group) {
				keep = false
				break
			}
			if IsSuperNet(group, accepted[k]) {
				accepted = append(accepted[:k], accepted[k+1:]...)
				continue
			}
			k++
		}

		if keep {
			accepted = append(accepted, group)
		}
	}

	var out []AnnotatedPrefix
	for _, group := range accepted {
		out = append(out, group...)
	}

	if l := debugLog(); l != nil {
		l.WithFields(logrus.Fields{
			"in":     len(addrs),
			"out":    len(out),
			"tokens": len(groups),
			"kept":   len(accepted),
		}).Debug("collapsed prefix list by token")
	}

	return out
}

// IsSuperNet reports whether every prefix in subnets is inside some
// prefix in supernets.
func IsSuperNet(supernets, subnets []AnnotatedPrefix) bool {
	for _, sub := range subnets {
		if !inList(supernets, sub) {
			return false
		}
	}
	return true
}

// inList reports whether a is inside any prefix of list.
func inList(list []AnnotatedPrefix, a AnnotatedPrefix) bool {
	for _, item := range list {
		if a.SubnetOf(item) {
			return true
		}
	}
	return false
}
