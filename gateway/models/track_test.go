package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripSentinels(t *testing.T) {
	cases := []struct {
		name       string
		track      string
		start, end byte
		want       string
	}{
		{"framed track 1", "%1234567890?", '%', '?', "1234567890"},
		{"no start sentinel", "1234567890", '%', '?', "1234567890"},
		{"no end sentinel", "%1234567890", '%', '?', "%1234567890"},
		{"empty", "", '%', '?', ""},
		{"framed track 2", ";4111111111111111=2501?", ';', '?', "4111111111111111=2501"},
		{"trailing LRC dropped", ";4111111111111111=2501?7", ';', '?', "4111111111111111=2501"},
		{"last end sentinel wins", "%AB?CD?x", '%', '?', "AB?CD"},
		{"end sentinel without start", "12?34?", '%', '?', "12?34?"},
		{"only sentinels", "%?", '%', '?', ""},
		{"start only", "%", '%', '?', "%"},
		{"wrong start for track", "%B4111^DOE/JOHN^2501?", ';', '?', "%B4111^DOE/JOHN^2501?"},
		{"same start and end, single sentinel", "?abc", '?', '?', "abc"},
		{"same start and end, framed", "?abc?", '?', '?', "abc"},
		{"same start and end, sentinel only", "?", '?', '?', ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, StripSentinels(c.track, c.start, c.end))
		})
	}
}

func TestStripSentinels_Idempotent(t *testing.T) {
	for _, payload := range []string{"1234567890", "B4111111111111111^DOE/JOHN^2501", "4111111111111111=2501", ""} {
		once := StripSentinels(payload, '%', '?')
		require.Equal(t, payload, once)
		require.Equal(t, once, StripSentinels(once, '%', '?'))
	}
}
