// Package ffprobe wraps the ffprobe binary to inspect media containers.
//
// The pipeline uses it to read audio durations when no explicit video duration
// is configured and to confirm a probed file carries an audio stream at all.
package ffprobe
