// Package hash provides fast CRC32-Castagnoli (CRC32C) hashing.
//
// The kernel uses it for one purpose beyond the usual integrity checks:
// deriving the deterministic tessellation jitter. Subdivision probes a
// parameter interval at a pseudo-random interior sample so the deviation
// test does not alias with exact-grid features; hashing the interval's
// own endpoint bits (instead of drawing from a global RNG) keeps the
// result reproducible for identical inputs.
package hash
