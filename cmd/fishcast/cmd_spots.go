package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishcast/internal/catalog"
)

var spotsCmd = &cobra.Command{
	Use:   "spots",
	Short: "List the spot catalog",
	Long:  `Display every spot in the built-in Tampa Bay catalog.`,
	RunE:  runSpots,
}

func init() {
	rootCmd.AddCommand(spotsCmd)
}

func runSpots(_ *cobra.Command, _ []string) error {
	spots := catalog.Spots()

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("Tampa Bay Spot Catalog")
	fmt.Println(strings.Repeat("=", 80))

	for i, spot := range spots {
		fmt.Printf("\n[%d] %s\n", i+1, spot.Name)
		fmt.Printf("    ID: %s\n", spot.ID)
		fmt.Printf("    Location: %.4f, %.4f\n", spot.Lat, spot.Lon)
		fmt.Printf("    Species: %s\n", strings.Join(spot.Species, ", "))
		fmt.Printf("    Habitat: %s\n", strings.Join(spot.Habitat, ", "))
		fmt.Printf("    Bite bias: %s tide\n", spot.TidePref)
		fmt.Printf("    %s\n", spot.Description)
		for _, tip := range spot.Tips {
			fmt.Printf("      - %s\n", tip)
		}
	}

	fmt.Printf("\nSpecies covered: %s\n", strings.Join(catalog.SpeciesList(), ", "))
	fmt.Println(strings.Repeat("=", 80) + "\n")
	return nil
}
