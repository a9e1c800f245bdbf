// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package aclpfx maintains IPv4 and IPv6 prefix lists for the generation
// of network access-control configurations.
//
// Every prefix carries a free text comment and the token of the named
// list it was taken from. The package computes two derived lists:
//
//   - Collapse:  the minimal list of prefixes matching exactly the same addresses
//   - Subtract:  the exact difference of two prefix lists
//
// Collapsing never changes which addresses match. Since ACL platforms
// often evaluate excludes with most specific match, merging adjacent or
// nested prefixes can silently change the outcome of an exclude rule.
// Collapse takes the exclude list as complements and vetoes such merges,
// see IsSafeToMerge.
//
// CollapseByToken only merges prefixes of the same list and drops lists
// completely covered by other lists.
//
// Comments of merged prefixes are concatenated, tokens are never changed.
//
// All functions are pure, they neither modify their input nor share state
// between calls and may be used concurrently.
package aclpfx
