package commands

import (
	"github.com/spf13/cobra"

	"github.com/alovak/cardflow-gateway/gateway/models"
)

// cardFlags binds the card flags of a command. Optional flags that were not
// given stay absent; an explicitly empty value is kept.
type cardFlags struct {
	number, expiration              string
	cardCode, brand, track1, track2 string
}

func (f *cardFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.number, "number", "", "card number")
	cmd.Flags().StringVar(&f.expiration, "exp", "", "expiration date, MMYY")
	cmd.Flags().StringVar(&f.cardCode, "card-code", "", "card verification code")
	cmd.Flags().StringVar(&f.brand, "brand", "", "card brand (Visa, MasterCard, ...)")
	cmd.Flags().StringVar(&f.track1, "track1", "", "raw track 1 including sentinels")
	cmd.Flags().StringVar(&f.track2, "track2", "", "raw track 2 including sentinels")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("exp")
}

func (f *cardFlags) request(cmd *cobra.Command) models.CreditCardRequest {
	optional := func(name, value string) *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return &value
	}

	return models.CreditCardRequest{
		Number:     f.number,
		Expiration: f.expiration,
		CardCode:   optional("card-code", f.cardCode),
		Brand:      optional("brand", f.brand),
		Track1:     optional("track1", f.track1),
		Track2:     optional("track2", f.track2),
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cardctl",
		Short:         "Export card payment data for the gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(fieldsCmd(), iso8583Cmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
