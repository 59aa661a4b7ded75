// Package validation judges submitted field values against field constraints.
//
// Every validator is a pure function of the value and its Options and reports
// the outcome as a Result value. Failures are data: validators never panic and
// never return Go errors. Composite validators always run the required check
// first and stop at the first failure, so an empty optional value is valid for
// every validator in this package.
//
// Results carry a machine Code and Params next to the default English message
// so callers (see package feedback) can translate them.
package validation
