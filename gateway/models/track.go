package models

import "strings"

// ISO 7813 magnetic-stripe sentinels.
const (
	Track1StartSentinel = '%'
	Track2StartSentinel = ';'
	TrackEndSentinel    = '?'
)

// StripSentinels returns the payload of a raw track: the leading start
// sentinel, the last end sentinel and anything after it (usually the LRC) are
// removed. Tracks that are not framed as expected are returned unchanged.
func StripSentinels(track string, start, end byte) string {
	if track == "" || track[0] != start {
		return track
	}

	idx := strings.LastIndexByte(track, end)
	switch {
	case idx < 0:
		return track
	case idx == 0:
		// start and end sentinels are the same byte and only the leading
		// one is present.
		return track[1:]
	}

	return track[1:idx]
}
