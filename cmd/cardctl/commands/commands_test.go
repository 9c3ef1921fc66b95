package commands

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alovak/cardflow-gateway/gateway/iso8583"
	"github.com/alovak/cardflow-gateway/gateway/models"
	moov "github.com/moov-io/iso8583"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestFieldsCmd(t *testing.T) {
	t.Run("form", func(t *testing.T) {
		out, err := run(t, "fields", "--number", "4111111111111111", "--exp", "2501", "--brand", "Visa")
		require.NoError(t, err)
		require.Equal(t, "card_num=4111111111111111&exp_date=2501&method=CC", out)
	})

	t.Run("empty card code is present", func(t *testing.T) {
		out, err := run(t, "fields", "--number", "4111111111111111", "--exp", "2501", "--card-code=", "--json")
		require.NoError(t, err)

		fields := models.Fields{}
		require.NoError(t, json.Unmarshal([]byte(out), &fields))
		require.Contains(t, fields, models.FieldCardCode)
		require.Empty(t, fields[models.FieldCardCode])
	})

	t.Run("track 1 is stripped", func(t *testing.T) {
		out, err := run(t, "fields", "--number", "4111111111111111", "--exp", "2501",
			"--track1", "%B4111111111111111^DOE/JOHN^2501?", "--json")
		require.NoError(t, err)

		fields := models.Fields{}
		require.NoError(t, json.Unmarshal([]byte(out), &fields))
		require.Equal(t, "B4111111111111111^DOE/JOHN^2501", fields[models.FieldTrack1])
	})

	t.Run("number is required", func(t *testing.T) {
		_, err := run(t, "fields", "--exp", "2501")
		require.Error(t, err)
	})
}

func TestISO8583Cmd(t *testing.T) {
	out, err := run(t, "iso8583", "--number", "4111111111111111", "--exp", "0125", "--track2", ";4111111111111111=2501?")
	require.NoError(t, err)

	packed, err := hex.DecodeString(out)
	require.NoError(t, err)

	message := moov.NewMessage(iso8583.Spec)
	require.NoError(t, message.Unpack(packed))

	track2, err := message.GetString(35)
	require.NoError(t, err)
	require.Equal(t, "4111111111111111=2501", track2)
}
