// Package emoji reads the color glyph tables of emoji fonts and classifies
// emoji code-point sequences.
//
// Supported color formats:
//
//   - COLR v0 + CPAL (Microsoft, layered outline glyphs)
//   - CBDT/CBLC (Google, PNG strikes)
//   - sbix (Apple, PNG strikes)
//
// COLR v1 paint graphs are not interpreted; a v1 table is read through its
// v0 base glyph and layer records, which fonts keep for compatibility.
//
// All parsers work on raw table bytes and never modify them. Parsed tables
// are read-only and safe for concurrent use.
//
// Sequence helpers follow Unicode Technical Report #51:
// https://www.unicode.org/reports/tr51/
package emoji
