package x264engine

import "github.com/user/framepump/pkg/ports"

// preset is the libx264 speed preset used for every session.
const preset = "veryfast"

// warnIgnoredParams reports requested settings that x264-go does not expose.
// Rate control follows the preset and the keyframe interval is the frame rate.
func warnIgnoredParams(logger ports.Logger, p ports.SessionParams) {
	logger.Warn("Bitrate %d is not applied by the x264 engine, rate control follows the %s preset", p.Bitrate, preset)
	if p.GOP != p.FPS {
		logger.Warn("GOP %d is not applied by the x264 engine, the keyframe interval is the frame rate (%d)", p.GOP, p.FPS)
	}
}
