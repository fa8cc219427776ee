package utils

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeDuration runs ffprobe on a media file and returns its duration in seconds.
func ProbeDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to probe media file")
	}
	return ParseProbeDuration(out)
}

// ParseProbeDuration reads format.duration from ffprobe JSON output.
func ParseProbeDuration(probe string) (float64, error) {
	if !gjson.Valid(probe) {
		return 0, errors.New("ffprobe output is not valid json")
	}
	d := gjson.Get(probe, "format.duration")
	if !d.Exists() {
		// some containers only report per-stream durations
		d = gjson.Get(probe, "streams.#(codec_type==\"video\").duration")
	}
	if !d.Exists() {
		return 0, errors.New("ffprobe output has no duration")
	}
	return d.Float(), nil
}
