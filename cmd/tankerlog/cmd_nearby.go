package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tankerlog/tankerlog/pkg/tankerkoenig"
)

func nearbyCmd() *cobra.Command {
	var lat, lng, radius float64
	var fuelType string
	var sortBy string

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List stations around a coordinate",
		Long:  "Searches for stations around the given coordinates. With a specific fuel type the results can be sorted by price.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			api, err := newAPI(logger)
			if err != nil {
				return err
			}

			req := api.List(lat, lng).SetSearchRadius(radius)

			switch fuelType {
			case "all":
				req.SetGasRequestType(tankerkoenig.GasRequestALL)
			case "diesel":
				req.SetGasRequestType(tankerkoenig.GasRequestDiesel)
			case "e5":
				req.SetGasRequestType(tankerkoenig.GasRequestE5)
			case "e10":
				req.SetGasRequestType(tankerkoenig.GasRequestE10)
			default:
				return fmt.Errorf("unknown fuel type: %s", fuelType)
			}

			switch sortBy {
			case "dist":
				req.SetSorting(tankerkoenig.SortingDistance)
			case "price":
				req.SetSorting(tankerkoenig.SortingPrice)
			default:
				return fmt.Errorf("unknown sorting: %s", sortBy)
			}

			result, err := req.Execute(context.Background())
			if err != nil {
				return err
			}
			if !result.OK {
				return fmt.Errorf("list request failed: %s", result.Message)
			}

			for _, station := range result.Stations {
				line := fmt.Sprintf("%-40s", station.Name)
				if station.Price != nil {
					line += fmt.Sprintf("  %.3f €/L", *station.Price)
				}
				if station.Location != nil && station.Location.Distance != nil {
					line += fmt.Sprintf("  %.1f km", *station.Location.Distance)
				}
				if station.IsOpen {
					line += "  open"
				} else {
					line += "  closed"
				}
				fmt.Printf("%s  [%s]\n", line, station.ID)
			}

			fmt.Printf("\n%d stations found\n", len(result.Stations))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude of the search center (required)")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude of the search center (required)")
	cmd.Flags().Float64Var(&radius, "radius", 5, "Search radius in km (1-25)")
	cmd.Flags().StringVar(&fuelType, "fuel-type", "all", "Fuel type (diesel, e5, e10, all)")
	cmd.Flags().StringVar(&sortBy, "sort", "dist", "Sorting (dist, price)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}
