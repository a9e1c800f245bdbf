// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package aclpfx

import (
	"net/netip"

	"github.com/sirupsen/logrus"

	"github.com/gaissmai/aclpfx/internal/cidr"
	"github.com/gaissmai/aclpfx/internal/seq"
)

// Collapse returns the minimal list of prefixes matching the same
// addresses as addrs, sorted by network key.
//
//	Collapse([1.1.0.0/24, 1.1.1.0/24, 1.1.2.0/24, 1.1.3.0/24, 1.1.4.0/24], nil)
//	  -> [1.1.0.0/22, 1.1.4.0/24]
//
// Comments of absorbed prefixes are appended to the comment of the
// surviving prefix, see AddComment.
//
// Where a platform evaluates excludes with most specific match, the
// exclude list should always be passed as complements, otherwise merges
// may reverse the intent of the exclude, see IsSafeToMerge.
//
// addrs and complements are not modified.
func Collapse(addrs, complements []AnnotatedPrefix) []AnnotatedPrefix {
	sorted := SortByNetworkKey(masked(addrs))
	return CollapseSorted(sorted, NewComplementIndex(sorted, complements))
}

// CollapseSorted is Collapse for input already sorted by network key,
// with a prebuilt complement index. Unsorted input gives a valid but
// possibly not minimal result.
//
// The prefixes are held in a linked list, a worklist of nodes drives the
// merges until no neighboring pair is mergeable. A node is queued again
// only if it absorbed its successor, the predecessor of a widened node is
// queued again since it may now contain it or be its sibling.
func CollapseSorted(sorted []AnnotatedPrefix, idx ComplementIndex) []AnnotatedPrefix {
	if len(sorted) == 0 {
		return nil
	}

	list := seq.New(sorted)
	fringe := seq.NewDeque(len(sorted))
	for h := range len(sorted) {
		fringe.PushBack(h)
	}

	var merges, vetoes int

	for fringe.Len() > 0 {
		h, _ := fringe.PopFront()

		nh := list.Next(h)
		if nh == seq.Nil {
			continue
		}

		cur, next := list.At(h), list.At(nh)

		if cidr.Contains(cur.Prefix, next.Prefix) {
			if !IsSafeToMerge(next.Prefix, cur.Prefix, idx) {
				vetoes++
				logVeto(next.Prefix, cur.Prefix)
				continue
			}

			cur.AddComment(next.Comment)
			list.RemoveNext(h)
			fringe.PushFront(h)
			merges++
			continue
		}

		super, ok := siblingSupernet(cur.Prefix, next.Prefix)
		if !ok {
			continue
		}
		if !IsSafeToMerge(next.Prefix, super, idx) {
			vetoes++
			logVeto(next.Prefix, super)
			continue
		}

		cur.AddComment(next.Comment)
		list.RemoveNext(h)
		cur.Prefix = super
		fringe.PushFront(h)
		if ph := list.Prev(h); ph != seq.Nil {
			fringe.PushBack(ph)
		}
		merges++
	}

	out := list.Values()

	if l := debugLog(); l != nil {
		l.WithFields(logrus.Fields{
			"in":     len(sorted),
			"out":    len(out),
			"merges": merges,
			"vetoes": vetoes,
		}).Debug("collapsed prefix list")
	}

	return out
}

// siblingSupernet returns the common supernet of a and b if a is the
// lower and b the upper half of it.
func siblingSupernet(a, b netip.Prefix) (netip.Prefix, bool) {
	if a.Addr().BitLen() != b.Addr().BitLen() || a.Bits() != b.Bits() || a.Bits() == 0 {
		return netip.Prefix{}, false
	}

	if cidr.LastAddr(a).Next() != b.Addr() {
		return netip.Prefix{}, false
	}

	super, err := cidr.Supernet(a)
	if err != nil || super.Addr() != a.Addr() {
		return netip.Prefix{}, false
	}
	return super, true
}

func logVeto(candidate, target netip.Prefix) {
	if l := debugLog(); l != nil {
		l.WithFields(logrus.Fields{
			"candidate": candidate,
			"target":    target,
		}).Debug("merge vetoed by complement")
	}
}
