// Package video renders final MP4 deliverables by looping a still image,
// overlaying subtitle text, and muxing the narration audio track with ffmpeg.
package video
