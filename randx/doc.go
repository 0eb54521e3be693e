// Package randx draws uniform random values from an injectable Source.
//
// A Rand built from a seeded Source replays the same sequence for the same
// seed. The package-level helpers use the process-wide generator of
// math/rand/v2, which is safe for concurrent use; a seeded Rand is not and
// each goroutine should own its own.
package randx
