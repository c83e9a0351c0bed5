// Package subtitle loads textual subtitle files into a common caption model.
//
// Three formats are supported, selected by file extension: SubRip (.srt)
// and the Sub Station Alpha family (.ass, .ssa). Parsers normalize all of
// them into ordered Caption values with millisecond timing and plain text
// (styling markup is stripped so downstream filtering sees dialogue only).
//
// Key entry points:
//   - DetectFormat: map a path's extension to a Format
//   - Load: parse a subtitle file into []Caption
//   - Discover: find a sibling subtitle file next to a video
package subtitle
