// Package cli wires together the Cobra command tree for the redactobj binary.
//
// It defines the root command and all subcommands (scrub, match, config,
// version), binds flags, reads configuration, runs the redactor over the
// input documents, and returns deterministic exit codes.
package cli
