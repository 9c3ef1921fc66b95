package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alovak/cardflow-gateway/gateway/iso8583"
)

func iso8583Cmd() *cobra.Command {
	var card cardFlags

	cmd := &cobra.Command{
		Use:   "iso8583",
		Short: "Print a packed 0100 authorization request for a card, hex encoded",
		RunE: func(cmd *cobra.Command, args []string) error {
			packed, err := iso8583.PackAuthorizationRequest(card.request(cmd).ToCreditCard())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(packed))
			return err
		},
	}

	card.bind(cmd)
	return cmd
}
