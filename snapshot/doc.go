// Package snapshot implements a self-describing binary container for
// compressed model payloads.
//
// A snapshot file carries a header (magic, format version, codec name,
// compression), a manifest section, a payload section, a directory of
// section offsets with CRC32 checksums, and a footer locating the
// directory. Files record everything needed to open them; readers never
// guess the codec or compression.
package snapshot
