package subtitle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	// ErrNotFound marks a missing subtitle file.
	ErrNotFound = errors.New("subtitle file not found")
	// ErrUnsupportedFormat marks an extension no parser handles.
	ErrUnsupportedFormat = errors.New("unsupported subtitle format")
	// ErrParse marks malformed subtitle content.
	ErrParse = errors.New("subtitle parse error")
)

// Caption is one subtitle cue: a time range and its plain dialogue text.
// Values are immutable once parsed.
type Caption struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Format identifies a supported subtitle file format.
type Format int

const (
	FormatSRT Format = iota
	FormatASS
	FormatSSA
)

func (f Format) String() string {
	switch f {
	case FormatSRT:
		return "srt"
	case FormatASS:
		return "ass"
	case FormatSSA:
		return "ssa"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// siblingExtensions is the preference order for Discover.
var siblingExtensions = []string{".srt", ".ass", ".ssa"}

// DetectFormat maps a path's extension to its Format. Matching is
// case-insensitive; an unrecognized extension is a checked error, never a
// default fallthrough.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT, nil
	case ".ass":
		return FormatASS, nil
	case ".ssa":
		return FormatSSA, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load parses the subtitle file at path into captions in source order.
// Cues with zero or negative span are skipped during parsing; everything
// else is preserved untouched.
func Load(path string) ([]Caption, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read subtitles: %w", err)
	}

	content := normalizeContent(data)
	switch format {
	case FormatSRT:
		return parseSRT(content)
	default:
		// .ass and .ssa share the Sub Station Alpha event syntax.
		return parseASS(content)
	}
}

// Discover looks for a subtitle file next to videoPath with the same stem,
// trying extensions in a fixed preference order. It reports the first hit.
func Discover(videoPath string) (string, bool) {
	stem := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	for _, ext := range siblingExtensions {
		candidate := stem + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// DiscoverExtensions exposes the extension preference order for diagnostics.
func DiscoverExtensions() []string {
	return append([]string(nil), siblingExtensions...)
}

func normalizeContent(data []byte) string {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimPrefix(content, "\ufeff")
}
