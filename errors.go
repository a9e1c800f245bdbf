// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package aclpfx

import "github.com/gaissmai/aclpfx/internal/cidr"

// Error kinds, returned wrapped with context. Test with errors.Is.
//
// A version mismatch between two prefixes is never an error, mixed
// IPv4/IPv6 lists are legitimate input and such pairs are simply not
// comparable or mergeable.
var (
	// ErrInvalidAddress is returned for malformed textual input.
	ErrInvalidAddress = cidr.ErrInvalidAddress

	// ErrPrefixLength is returned when a supernet is requested beyond length 0.
	ErrPrefixLength = cidr.ErrPrefixLength
)
