//go:build !c2ddebug

package c2d

// debugChecks enables contract assertions on element access and resize.
// Build with -tags c2ddebug to turn them on.
const debugChecks = false
