// Package vcf provides a resonant one-pole low-pass filter for whole sample
// buffers.
//
// The low-pass recursion is
//
//	x'[n] = x[n] + 4r·(x[n] - x[n-1])
//	y[n]  = α·y[n-1] + (1-α)·x'[n]
//
// with α = exp(-2π·fc/fs)·(1 - r/2). Cutoff fc is clamped to [20, fs/2] and
// resonance r to [0, 0.99] before use. The derivative term emphasizes content
// near the cutoff; output is not clamped and may exceed [-1, 1] at high
// resonance.
//
// Filter memory starts from silence on every call and lives only in local
// variables, so a Filter is safe for concurrent use. High-pass and band-pass
// modes are not implemented: Apply passes the input through unchanged and
// reports StatusPassThrough instead of failing.
package vcf
