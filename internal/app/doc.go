// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (load the schematic,
// analyze it, print the results), decoupled from the CLI entrypoint.
package app
