//go:build c2ddebug

package c2d

// debugChecks enables contract assertions on element access and resize.
const debugChecks = true
