// Package gemini is a minimal REST client for the Gemini generateContent API.
//
// The pipeline uses two capabilities: speech synthesis (text plus a prebuilt
// voice name returning PCM audio) and audio transcription (inline audio
// returning timed JSON segments). Both are single blocking requests with no
// retry; callers classify failures with the services error markers.
package gemini
