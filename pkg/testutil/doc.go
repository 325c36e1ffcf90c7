// Package testutil provides utilities for testing lootifier components.
//
// Key components:
//   - TestEnvironment: in-memory filesystem plus XDG directories isolated
//     from the host, cleaned up with the test
//
// Usage guidelines:
//   - Prefer the in-memory filesystem; touch the real disk only for code that
//     bypasses afero (logging, config files, man pages)
//   - Keep test data inline
package testutil
