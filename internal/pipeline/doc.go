// Package pipeline sequences the audio, subtitle, and video stages of a run
// and resolves the artifact paths the stages hand off to each other.
package pipeline
