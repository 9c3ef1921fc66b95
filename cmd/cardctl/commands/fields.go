package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alovak/cardflow-gateway/gateway/models"
	"github.com/alovak/cardflow-gateway/internal/gatewayclient"
)

func fieldsCmd() *cobra.Command {
	var (
		card   cardFlags
		asJSON bool
		remote string
	)

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the gateway fields for a card",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := card.request(cmd)

			var fields models.Fields
			if remote != "" {
				var err error
				fields, err = gatewayclient.New(remote, nil).ExportFields(cmd.Context(), req)
				if err != nil {
					return err
				}
			} else {
				fields = req.ToCreditCard().Fields()
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(fields)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), fields.Encode())
			return err
		},
	}

	card.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of form encoding")
	cmd.Flags().StringVar(&remote, "remote", "", "gateway base URL; export through a running gateway")
	return cmd
}
