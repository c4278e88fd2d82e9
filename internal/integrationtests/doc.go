// Package integrationtests runs the application end to end against schematic
// files written to temporary directories.
package integrationtests
