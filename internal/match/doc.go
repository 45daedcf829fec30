// Package match ranks candidate names by edit distance. Diagnostics use it
// to turn "unknown attribute" and "unknown transform" errors into "did you
// mean" remedies.
package match
