// Package ffmpeg drives the external transcoding engine.
//
// It has three responsibilities:
//   - Graph: a declarative trim-and-concatenate filter description built
//     from time spans, rendered deterministically to ffmpeg
//     filter_complex syntax
//   - Transcoder: a one-shot subprocess invocation of ffmpeg that applies
//     a Graph to a source file and writes the condensed audio output
//   - ProbeDuration: an ffprobe wrapper reporting a container's duration
//
// ffmpeg and ffprobe are treated as opaque subprocesses: success is a
// zero exit status, and failures surface the engine's own stderr text.
package ffmpeg
