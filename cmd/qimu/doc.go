// Package main hosts the qimu CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into calls on
// the internal packages: reads-table drives sample discovery, config
// manages the persisted TOML settings, and version reports build
// information. This package centralizes configuration resolution, logger
// setup, and terminal presentation so subcommands stay declarative.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through a command or flag here.
package main
