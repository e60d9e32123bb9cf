// Package cpu detects the widest SIMD register set of the host CPU.
//
// The result decides the preferred buffer alignment: a buffer aligned to the
// register width lets vector loads and stores run without splitting across
// cache lines.
//
//	| ISA     | Register width | Preferred alignment |
//	|---------|----------------|---------------------|
//	| AVX-512 | 512 bit        | 64 bytes            |
//	| AVX2    | 256 bit        | 32 bytes            |
//	| SVE2    | >= 128 bit     | 16 bytes            |
//	| NEON    | 128 bit        | 16 bytes            |
//	| generic | -              | 16 bytes            |
//
// Set C2D_SIMD=generic|neon|sve2|avx2|avx512 to override detection (the
// override is ignored when the CPU lacks the requested ISA).
package cpu
