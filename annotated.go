// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package aclpfx

import (
	"net/netip"
	"strings"

	"github.com/pkg/errors"

	"github.com/gaissmai/aclpfx/internal/cidr"
)

// AnnotatedPrefix is a network prefix with a free text comment and the
// token of the named list it was taken from.
//
// The Prefix is treated as immutable, merges replace it by a new value.
// The Comment only grows, see AddComment. Token and ParentToken are set
// at creation and never touched by collapsing or excluding.
type AnnotatedPrefix struct {
	Prefix      netip.Prefix
	Comment     string
	Token       string
	ParentToken string
}

// New returns an AnnotatedPrefix for pfx, pfx gets masked.
func New(pfx netip.Prefix, comment, token string) AnnotatedPrefix {
	return AnnotatedPrefix{
		Prefix:      pfx.Masked(),
		Comment:     comment,
		Token:       token,
		ParentToken: token,
	}
}

// Parse parses s as IPv4 or IPv6 prefix, a bare address is taken as host prefix.
//
// With strict set, host bits to the right of the prefix length are an
// error, otherwise they are masked off. Malformed input returns an error
// wrapping ErrInvalidAddress.
func Parse(s, comment, token string, strict bool) (AnnotatedPrefix, error) {
	pfx, err := cidr.Parse(s, strict)
	if err != nil {
		return AnnotatedPrefix{}, errors.WithMessage(err, "parse prefix")
	}
	return New(pfx, comment, token), nil
}

// MustParse is like Parse in non-strict mode but panics on error.
// Intended for tests and static tables.
func MustParse(s, comment, token string) AnnotatedPrefix {
	a, err := Parse(s, comment, token, false)
	if err != nil {
		panic(err)
	}
	return a
}

// AddComment appends comment, separated by ", ".
//
// An empty comment or a comment already contained in the existing text
// is ignored.
func (a *AnnotatedPrefix) AddComment(comment string) {
	if a.Comment == "" {
		a.Comment = comment
		return
	}
	if comment != "" && !strings.Contains(a.Comment, comment) {
		a.Comment += ", " + comment
	}
}

// Is4 reports whether a is an IPv4 prefix.
func (a AnnotatedPrefix) Is4() bool { return a.Prefix.Addr().Is4() }

// SubnetOf reports whether a is inside o. Different IP versions are
// never subnets of each other.
func (a AnnotatedPrefix) SubnetOf(o AnnotatedPrefix) bool {
	return cidr.Contains(o.Prefix, a.Prefix)
}

// SupernetOf reports whether o is inside a.
func (a AnnotatedPrefix) SupernetOf(o AnnotatedPrefix) bool {
	return cidr.Contains(a.Prefix, o.Prefix)
}

// Overlaps reports whether a and o have any address in common.
func (a AnnotatedPrefix) Overlaps(o AnnotatedPrefix) bool {
	return cidr.Overlaps(a.Prefix, o.Prefix)
}

// Supernet returns the prefix diff bits shorter, carrying comment and tokens.
// It returns an error wrapping ErrPrefixLength if the length would drop below zero.
func (a AnnotatedPrefix) Supernet(diff int) (AnnotatedPrefix, error) {
	bits := a.Prefix.Bits() - diff
	if diff < 0 || bits < 0 {
		return AnnotatedPrefix{}, errors.Wrapf(ErrPrefixLength,
			"prefix length is %d, cannot widen by %d", a.Prefix.Bits(), diff)
	}

	super, err := a.Prefix.Addr().Prefix(bits)
	if err != nil {
		return AnnotatedPrefix{}, errors.Wrapf(ErrPrefixLength, "%s: %v", a.Prefix, err)
	}

	a.Prefix = super
	return a, nil
}

// withPrefix returns a copy of a with pfx and the same metadata.
func (a AnnotatedPrefix) withPrefix(pfx netip.Prefix) AnnotatedPrefix {
	a.Prefix = pfx
	return a
}

// String returns the prefix, followed by the comment if there is one.
func (a AnnotatedPrefix) String() string {
	if a.Comment == "" {
		return a.Prefix.String()
	}
	return a.Prefix.String() + " # " + a.Comment
}

// masked returns a copy of addrs with all prefixes masked.
func masked(addrs []AnnotatedPrefix) []AnnotatedPrefix {
	out := make([]AnnotatedPrefix, len(addrs))
	for i, a := range addrs {
		out[i] = a.withPrefix(a.Prefix.Masked())
	}
	return out
}
