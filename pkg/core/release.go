//go:build release

package core

// DebugChecks enables contract assertions. Build with -tags release to
// compile them out of the render path.
const DebugChecks = false
