// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates masked prefixes for property tests,
// fuzzing and profiling. All functions are deterministic for a given prng.
package random

import (
	"math/rand/v2"
	"net/netip"
)

// IP4 returns a random IPv4 address.
func IP4(prng *rand.Rand) netip.Addr {
	var a4 [4]byte
	for i := range a4 {
		a4[i] = byte(prng.UintN(256))
	}
	return netip.AddrFrom4(a4)
}

// IP6 returns a random IPv6 address.
func IP6(prng *rand.Rand) netip.Addr {
	var a16 [16]byte
	for i := range a16 {
		a16[i] = byte(prng.UintN(256))
	}
	return netip.AddrFrom16(a16)
}

// IP returns a random IPv4 or IPv6 address, 50/50.
func IP(prng *rand.Rand) netip.Addr {
	if prng.IntN(2) == 1 {
		return IP4(prng)
	}
	return IP6(prng)
}

// Prefix4 returns a random masked IPv4 prefix.
func Prefix4(prng *rand.Rand) netip.Prefix {
	return netip.PrefixFrom(IP4(prng), prng.IntN(33)).Masked()
}

// Prefix6 returns a random masked IPv6 prefix.
func Prefix6(prng *rand.Rand) netip.Prefix {
	return netip.PrefixFrom(IP6(prng), prng.IntN(129)).Masked()
}

// Prefix returns a random masked IPv4 or IPv6 prefix, 50/50.
func Prefix(prng *rand.Rand) netip.Prefix {
	if prng.IntN(2) == 1 {
		return Prefix4(prng)
	}
	return Prefix6(prng)
}

// Within returns n random prefixes inside base, at most depth bits
// longer than base. Random prefixes are almost never adjacent or nested,
// dense prefixes inside a small base collapse a lot.
func Within(prng *rand.Rand, base netip.Prefix, depth, n int) []netip.Prefix {
	base = base.Masked()
	maxBits := min(base.Addr().BitLen(), base.Bits()+depth)

	pfxs := make([]netip.Prefix, 0, n)
	for range n {
		bits := base.Bits() + prng.IntN(maxBits-base.Bits()+1)
		pfxs = append(pfxs, netip.PrefixFrom(addrWithin(prng, base), bits).Masked())
	}
	return pfxs
}

// addrWithin returns a random address inside base.
func addrWithin(prng *rand.Rand, base netip.Prefix) netip.Addr {
	var rnd netip.Addr
	if base.Addr().Is4() {
		rnd = IP4(prng)
	} else {
		rnd = IP6(prng)
	}

	b := base.Addr().AsSlice()
	r := rnd.AsSlice()
	for i := range b {
		hostBits := max(0, min(8, (i+1)*8-base.Bits()))
		b[i] |= r[i] & byte(0xff>>(8-hostBits))
	}

	addr, _ := netip.AddrFromSlice(b)
	return addr
}
