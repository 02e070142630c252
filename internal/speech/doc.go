// Package speech turns text files into narrated WAV audio via a cloud TTS
// service. The service answers with headerless PCM, so the generator wraps
// the payload in a RIFF container before writing it out.
package speech
