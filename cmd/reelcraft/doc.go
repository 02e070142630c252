// Package main hosts the reelcraft CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into pipeline runs:
// the create command chains narration, transcription, and video composition,
// while the audio, subtitles, and video commands expose each stage standalone.
// It centralizes configuration resolution and structured logging setup so
// subcommands can focus on flags and output.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
