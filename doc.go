// Package gappal finds maximal length-constrained gapped palindromes in a
// byte string.
//
// A gapped palindrome at position j with center-gap (p, q) and arm length L
// is a pair of substrings s[p-L:p] and s[j:j+L] such that the second arm
// equals the reverse of the first. This package implements the
// Kolpakov-Kucherov (K&K) algorithm, which finds every such palindrome whose
// arms are at least a given minimum length and whose gap falls within a
// given closed interval, in O(n + output) time.
//
// The implementation is built from three layers:
//
//   - A suffix tree over the input, built online with Ukkonen's algorithm.
//   - A constant-time lowest-common-ancestor structure over that tree,
//     following the Bender-Farach-Colton reduction to range-minimum-query
//     (Euler tour -> block partition -> sparse table over block minima ->
//     precomputed tables for every +-1 block).
//   - The K&K sweep itself, which uses substring-equivalence classes and the
//     LCA structure's O(1) longest-common-prefix queries to verify and
//     extend palindrome candidates without ever rescanning a character.
//
// See "The LCA Problem Revisited" by Bender and Farach-Colton, and
// "Finding Maximal Repetitions in a Word in Linear Time" by Kolpakov and
// Kucherov, for the underlying algorithms.
//
// The package is single-threaded: constructors build a value once, and
// subsequent queries may themselves mutate internal caches (the
// normalized-block RMQ database lazily builds tables on first use of a
// block signature; the enumerator advances per-class cursors as it sweeps).
// Apart from a finished [Tree], whose queries only read it, none of the
// types here are safe for concurrent use.
package gappal
