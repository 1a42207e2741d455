// Package hashcode encodes and decodes the answer-history persistence
// format a URL-hash-based driver uses to make a sort resumable: a compact
// string representation of a boolean answer sequence, optionally prefixed
// by the item list being ranked.
//
// Format:
//
//	item1,item2,…!aabba
//
// Items are percent-encoded (via net/url) and comma-separated; the answer
// suffix maps true to 'a' and false to 'b', in order. The '!' separator is
// omitted when there are no answers yet. All characters other than 'a'/'b'
// in the answer suffix are ignored on decode, so a driver can embed the
// format in a larger fragment (or tolerate stray characters from manual
// editing) without failing.
//
// Decoding is total: there is no invalid input, only input that decodes to
// fewer items or answers than the caller may have expected. A short or
// malformed history just leaves the replayed Stepper sitting at its first
// unanswered comparison.
package hashcode
