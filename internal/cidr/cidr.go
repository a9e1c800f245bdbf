// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package cidr implements the bit-exact prefix arithmetic the collapse and
// exclude algorithms are built on: parsing, containment, supernets, the
// last address of a prefix and punching a hole into a prefix.
//
// All prefixes returned by this package are masked. Functions taking two
// prefixes never fail on mixed IP versions, they just report false.
package cidr

import (
	"cmp"
	"net/netip"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidAddress is returned for malformed textual input.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrPrefixLength is returned when a prefix can't be widened any further.
	ErrPrefixLength = errors.New("invalid prefix length")
)

// Parse parses s as a prefix. A bare address is taken as host prefix.
//
// With strict set, a prefix with host bits set is rejected, otherwise the
// host bits are masked off.
func Parse(s string, strict bool) (netip.Prefix, error) {
	s = strings.TrimSpace(s)

	if !strings.Contains(s, "/") {
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return netip.Prefix{}, errors.Wrapf(ErrInvalidAddress, "%q: %v", s, err)
		}
		if addr.Zone() != "" {
			return netip.Prefix{}, errors.Wrapf(ErrInvalidAddress, "%q: zones not allowed", s)
		}
		return netip.PrefixFrom(addr, addr.BitLen()), nil
	}

	pfx, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, errors.Wrapf(ErrInvalidAddress, "%q: %v", s, err)
	}

	if strict && pfx != pfx.Masked() {
		return netip.Prefix{}, errors.Wrapf(ErrInvalidAddress, "%q has host bits set", s)
	}

	return pfx.Masked(), nil
}

// Contains reports whether b is inside a, a == b included.
func Contains(a, b netip.Prefix) bool {
	return a.Addr().BitLen() == b.Addr().BitLen() &&
		a.Bits() <= b.Bits() &&
		a.Contains(b.Addr())
}

// Overlaps reports whether a and b have any address in common.
func Overlaps(a, b netip.Prefix) bool {
	return a.Overlaps(b)
}

// Supernet returns the prefix one bit shorter than p.
func Supernet(p netip.Prefix) (netip.Prefix, error) {
	if p.Bits() <= 0 {
		return netip.Prefix{}, errors.Wrapf(ErrPrefixLength, "supernet of %s", p)
	}

	super, err := p.Addr().Prefix(p.Bits() - 1)
	if err != nil {
		return netip.Prefix{}, errors.Wrapf(ErrPrefixLength, "supernet of %s: %v", p, err)
	}
	return super, nil
}

// LastAddr returns the last (broadcast) address of p.
func LastAddr(p netip.Prefix) netip.Addr {
	is4 := p.Addr().Is4()
	a16 := p.Masked().Addr().As16()

	bits := p.Bits()
	if is4 {
		bits += 96
	}

	// set all host bits, partial byte first
	i := bits / 8
	if rem := bits % 8; rem != 0 {
		a16[i] |= 0xff >> rem
		i++
	}
	for ; i < 16; i++ {
		a16[i] = 0xff
	}

	last := netip.AddrFrom16(a16)
	if is4 {
		return last.Unmap()
	}
	return last
}

// halves splits p into its lower and upper half, p must not be a host prefix.
func halves(p netip.Prefix) (lo, hi netip.Prefix) {
	lo = netip.PrefixFrom(p.Addr(), p.Bits()+1)
	hi = netip.PrefixFrom(LastAddr(lo).Next(), p.Bits()+1)
	return lo, hi
}

// SplitExcluding returns the canonical prefixes covering p without hole,
// sorted by Compare.
//
// If hole and p are disjoint the result is p itself,
// if hole covers p the result is empty.
func SplitExcluding(p, hole netip.Prefix) []netip.Prefix {
	p, hole = p.Masked(), hole.Masked()

	if !Overlaps(p, hole) {
		return []netip.Prefix{p}
	}
	if Contains(hole, p) {
		return nil
	}

	// hole is strictly inside p, walk down towards the hole
	// and keep the sibling half at every level
	out := make([]netip.Prefix, 0, hole.Bits()-p.Bits())
	for cur := p; cur != hole; {
		lo, hi := halves(cur)
		if Contains(lo, hole) {
			out = append(out, hi)
			cur = lo
		} else {
			out = append(out, lo)
			cur = hi
		}
	}

	slices.SortFunc(out, Compare)
	return out
}

// Compare orders prefixes by IP version, network address and prefix length.
func Compare(a, b netip.Prefix) int {
	if c := a.Addr().Compare(b.Addr()); c != 0 {
		return c
	}
	return cmp.Compare(a.Bits(), b.Bits())
}
