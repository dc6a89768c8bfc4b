// Package wordfreq extracts word-frequency statistics from the text of a web
// page or any other document. Text is split on whitespace, tokens carrying
// punctuation, symbols or digits are dropped, the rest are lowercased with
// locale-aware casing and counted, and the result is ranked by frequency.
//
// This package contains the counting core plus domain types and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/, rod/,
// goquery/).
package wordfreq
