// Package diagnostic provides structured, aggregated error reporting for the
// schema generator.
//
// Validation and key resolution never stop at the first defect: every check
// appends to a shared Diagnostics value so one run reports everything wrong
// with a schema at once. Any error diagnostic blocks artifact generation
// entirely; there is no best-effort emission path.
package diagnostic
