// Package core provides the payload generation logic for afscreen.
//
// This package contains all core functionality separated from UI concerns.
// Functions here take values and return values; prompting, styling and file
// writing belong in the cli, cmd and output packages.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - Diagnostics go through an injected *slog.Logger
//   - Randomness comes from an injected [SeedSource]
//
// # Generation Pipeline
//
// A run is split into independent steps:
//
//  1. [NormalizeSequence] - strips whitespace from pasted sequences
//  2. [TargetLoader.Load] - validates the CSV header and reads targets
//  3. [BuildPayload] - pairs every target with every screening chain
//  4. [Chunks] - partitions the payload into bounded windows
//
// Output of the chunks is handled by the output package.
package core
