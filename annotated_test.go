// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package aclpfx

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaissmai/aclpfx/internal/golden"
)

var mpp = netip.MustParsePrefix

// aps, helper to build an uncommented prefix list
func aps(ss ...string) []AnnotatedPrefix {
	out := make([]AnnotatedPrefix, 0, len(ss))
	for _, s := range ss {
		out = append(out, MustParse(s, "", ""))
	}
	return out
}

// pfxs strips the metadata
func pfxs(list []AnnotatedPrefix) []netip.Prefix {
	var out []netip.Prefix
	for _, a := range list {
		out = append(out, a.Prefix)
	}
	return out
}

func goldenSet(list []AnnotatedPrefix) golden.Set {
	var s golden.Set
	for _, a := range list {
		s.Insert(a.Prefix)
	}
	return s
}

func TestNew(t *testing.T) {
	t.Parallel()

	a := New(mpp("10.1.2.3/8"), "corp", "RFC1918")
	assert.Equal(t, mpp("10.0.0.0/8"), a.Prefix)
	assert.Equal(t, "corp", a.Comment)
	assert.Equal(t, "RFC1918", a.Token)
	assert.Equal(t, "RFC1918", a.ParentToken)
	assert.True(t, a.Is4())
}

func TestParse(t *testing.T) {
	t.Parallel()

	a, err := Parse("2001:db8::/32", "doc", "DOC_NET", true)
	require.NoError(t, err)
	assert.Equal(t, mpp("2001:db8::/32"), a.Prefix)
	assert.False(t, a.Is4())

	_, err = Parse("1.1.0.1/22", "", "", true)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	a, err = Parse("1.1.0.1/22", "", "", false)
	require.NoError(t, err)
	assert.Equal(t, mpp("1.1.0.0/22"), a.Prefix)

	_, err = Parse("not an address", "", "", false)
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Contains(t, err.Error(), "not an address")

	assert.Panics(t, func() { MustParse("1.1.1.1/40", "", "") })
}

func TestAddComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		add   []string
		want  string
	}{
		{name: "empty start", start: "", add: []string{"a"}, want: "a"},
		{name: "append", start: "a", add: []string{"b"}, want: "a, b"},
		{name: "duplicate", start: "a", add: []string{"a"}, want: "a"},
		{name: "substring", start: "web servers", add: []string{"web"}, want: "web servers"},
		{name: "empty add", start: "a", add: []string{""}, want: "a"},
		{name: "chain", start: "a", add: []string{"b", "c", "b"}, want: "a, b, c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(mpp("10.0.0.0/8"), tt.start, "")
			for _, c := range tt.add {
				a.AddComment(c)
			}
			assert.Equal(t, tt.want, a.Comment)
		})
	}
}

func TestSubnetSupernetOf(t *testing.T) {
	t.Parallel()

	big, small := MustParse("10.0.0.0/8", "", ""), MustParse("10.1.0.0/16", "", "")
	v6 := MustParse("::/0", "", "")

	assert.True(t, small.SubnetOf(big))
	assert.False(t, big.SubnetOf(small))
	assert.True(t, big.SupernetOf(small))
	assert.True(t, big.SupernetOf(big))

	// different versions are not comparable, but never an error
	assert.False(t, big.SubnetOf(v6))
	assert.False(t, v6.SupernetOf(big))
	assert.False(t, v6.Overlaps(big))
}

func TestSupernet(t *testing.T) {
	t.Parallel()

	a := MustParse("1.1.1.0/24", "b", "TOK")

	s, err := a.Supernet(1)
	require.NoError(t, err)
	assert.Equal(t, mpp("1.1.0.0/23"), s.Prefix)
	assert.Equal(t, "b", s.Comment)
	assert.Equal(t, "TOK", s.Token)
	assert.Equal(t, "TOK", s.ParentToken)

	s, err = a.Supernet(24)
	require.NoError(t, err)
	assert.Equal(t, mpp("0.0.0.0/0"), s.Prefix)

	_, err = a.Supernet(25)
	assert.ErrorIs(t, err, ErrPrefixLength)

	_, err = MustParse("::/0", "", "").Supernet(1)
	assert.ErrorIs(t, err, ErrPrefixLength)

	_, err = a.Supernet(-1)
	assert.ErrorIs(t, err, ErrPrefixLength)

	// the receiver is untouched
	assert.Equal(t, mpp("1.1.1.0/24"), a.Prefix)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10.0.0.0/8", MustParse("10.0.0.0/8", "", "").String())
	assert.Equal(t, "10.0.0.0/8 # corp, lab", MustParse("10.0.0.0/8", "corp, lab", "X").String())
}

func TestSortByNetworkKey(t *testing.T) {
	t.Parallel()

	in := aps("2001:db8::/32", "10.0.0.0/9", "10.0.0.0/8", "1.1.1.0/24", "::/0", "10.128.0.0/9")
	got := SortByNetworkKey(in)

	assert.Equal(t,
		[]netip.Prefix{
			mpp("1.1.1.0/24"), mpp("10.0.0.0/8"), mpp("10.0.0.0/9"), mpp("10.128.0.0/9"),
			mpp("::/0"), mpp("2001:db8::/32"),
		},
		pfxs(got))

	// input untouched
	assert.Equal(t, mpp("2001:db8::/32"), in[0].Prefix)

	// stable for equal keys
	dups := []AnnotatedPrefix{
		MustParse("10.0.0.0/8", "first", ""),
		MustParse("1.0.0.0/8", "", ""),
		MustParse("10.0.0.0/8", "second", ""),
	}
	got = SortByNetworkKey(dups)
	assert.Equal(t, "first", got[1].Comment)
	assert.Equal(t, "second", got[2].Comment)
}
