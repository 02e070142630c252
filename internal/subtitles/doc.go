// Package subtitles generates and manipulates SRT subtitle tracks.
//
// The generator submits audio to an AI transcription service and serializes
// the returned timed segments into index-numbered SRT with millisecond
// precision. The package also owns SRT parsing, validation, and the merge
// helper that concatenates per-segment tracks into one continuous track.
package subtitles
