// Package exitcodes defines the standard exit codes used by enterprise-reporter.
package exitcodes

// Exit code constants used by enterprise-reporter
// These constants define the exit codes that the application uses to indicate
// various states when it exits:
//
// * Success (0): Used when all tests in the reported run pass
// * TestFailure (1): Used when the reported run contains failing tests
// * RuntimeErr (2): Used for runtime errors such as bad configuration or
//   unwritable report artifacts
const (
	Success     = 0 // All tests pass
	TestFailure = 1 // Test failures
	RuntimeErr  = 2 // Runtime errors
)
