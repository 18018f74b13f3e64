// Package main hosts the sleeve CLI entrypoint and command tree.
//
// The Cobra-based commands translate terminal invocations into conversion
// runs, tool checks, history queries, and configuration scaffolding. The
// package centralizes configuration resolution and progress rendering so
// subcommands stay thin; conversion logic lives in the internal packages.
package main
