// Package testutil provides helpers shared by eolmix tests.
//
// Key components:
//   - TestEnvironment: isolated XDG directories plus an afero filesystem,
//     either in memory or rooted in a temp directory
//   - FaultFS: an afero.Fs wrapper that injects open and write errors per path
//   - AssertRawContent: byte-exact comparison with visible line endings
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated only when a test must see the
//     bytes the operating system stored
//   - Each test builds its own environment; nothing is shared between tests
package testutil
