package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tankerlog/tankerlog/pkg/tankerkoenig"
)

var correctionTypes = map[string]tankerkoenig.CorrectionType{
	"name":          tankerkoenig.CorrectionWrongName,
	"status-open":   tankerkoenig.CorrectionWrongStatusOpen,
	"status-closed": tankerkoenig.CorrectionWrongStatusClosed,
	"price-e5":      tankerkoenig.CorrectionWrongPriceE5,
	"price-e10":     tankerkoenig.CorrectionWrongPriceE10,
	"price-diesel":  tankerkoenig.CorrectionWrongPriceDiesel,
	"brand":         tankerkoenig.CorrectionWrongBrand,
	"street":        tankerkoenig.CorrectionWrongStreet,
	"house-number":  tankerkoenig.CorrectionWrongHouseNumber,
	"post-code":     tankerkoenig.CorrectionWrongPostCode,
	"place":         tankerkoenig.CorrectionWrongPlace,
	"location":      tankerkoenig.CorrectionWrongLocation,
}

func complainCmd() *cobra.Command {
	var correctionValue string

	cmd := &cobra.Command{
		Use:   "complain <station-id> <type>",
		Short: "Submit a station data correction",
		Long: `Submits a crowdsourced data correction for a station.

Types: name, status-open, status-closed, price-e5, price-e10,
price-diesel, brand, street, house-number, post-code, place, location.

The status corrections take no value; price corrections take a decimal
value (e.g. 1.899), post-code a 5-digit code, location a "lat,lng" pair
and the rest any text.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			correctionType, ok := correctionTypes[args[1]]
			if !ok {
				return fmt.Errorf("unknown correction type: %s", args[1])
			}

			api, err := newAPI(logger)
			if err != nil {
				return err
			}

			req := api.Correction(args[0], correctionType)
			if correctionValue != "" {
				req.SetCorrectionValue(correctionValue)
			}

			result, err := req.Execute(context.Background())
			if err != nil {
				return err
			}
			if !result.OK {
				return fmt.Errorf("correction was not accepted: %s", result.Message)
			}

			fmt.Println("correction submitted")
			return nil
		},
	}

	cmd.Flags().StringVar(&correctionValue, "value", "", "Correction value (format depends on the correction type)")

	return cmd
}
