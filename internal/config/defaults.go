package config

const (
	defaultMergeGapMS  = 1250
	defaultFFmpeg      = "ffmpeg"
	defaultFFprobe     = "ffprobe"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultMusicFilter = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Condense: Condense{
			MergeGapMS:  defaultMergeGapMS,
			MusicFilter: defaultMusicFilter,
		},
		FFmpeg: FFmpeg{
			Binary:      defaultFFmpeg,
			ProbeBinary: defaultFFprobe,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
