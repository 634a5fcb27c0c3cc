package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tankerlog/tankerlog/pkg/tankerkoenig"
)

func detailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detail <station-id>",
		Short: "Print detail information for a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			api, err := newAPI(logger)
			if err != nil {
				return err
			}

			result, err := api.Detail(args[0]).Execute(context.Background())
			if err != nil {
				return err
			}
			if !result.OK || result.Station == nil {
				return fmt.Errorf("detail request failed: %s", result.Message)
			}

			printStation(*result.Station)
			return nil
		},
	}

	return cmd
}

func printStation(station tankerkoenig.Station) {
	fmt.Printf("Station: %s\n", station.Name)
	if station.Brand != "" {
		fmt.Printf("Brand:   %s\n", station.Brand)
	}
	fmt.Printf("ID:      %s\n", station.ID)

	status := "closed"
	if station.IsOpen {
		status = "open"
	}
	fmt.Printf("Status:  %s\n", status)

	if station.Location != nil {
		loc := station.Location
		fmt.Printf("Address: %s %s, %s %s\n", loc.Street, loc.HouseNumber, loc.PostCode, loc.City)
		fmt.Printf("Coords:  %.6f, %.6f\n", loc.Lat, loc.Lng)
	}

	if station.GasPrices != nil {
		fmt.Println("Prices:")
		for _, gasType := range []tankerkoenig.GasType{tankerkoenig.GasTypeDiesel, tankerkoenig.GasTypeE5, tankerkoenig.GasTypeE10} {
			if price, ok := station.GasPrices.Price(gasType); ok {
				fmt.Printf("  %-6s %.3f €/L\n", gasType, price)
			}
		}
	}

	if station.WholeDay != nil && *station.WholeDay {
		fmt.Println("Open 24 hours")
	}

	if len(station.OpeningTimes) > 0 {
		fmt.Println("Opening times:")
		for _, openingTime := range station.OpeningTimes {
			line := fmt.Sprintf("  %s", openingTime.Text)
			if openingTime.Start != "" && openingTime.End != "" {
				line += fmt.Sprintf(" %s - %s", openingTime.Start, openingTime.End)
			}
			if openingTime.IncludesHolidays {
				line += " (incl. holidays)"
			}
			fmt.Println(line)
		}
	}

	if len(station.Overrides) > 0 {
		fmt.Printf("Overrides: %s\n", strings.Join(station.Overrides, "; "))
	}
}
