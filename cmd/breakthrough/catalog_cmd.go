package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lumenpath/breakthrough/catalog"
)

var (
	catalogClass     string
	catalogIntensity string
	catalogLowTier   bool
	catalogFallbacks bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the sequence templates",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogClass, "class", "", "filter by class (reveal, release, ...)")
	catalogCmd.Flags().StringVar(&catalogIntensity, "intensity", "", "filter by intensity (low, medium, high, extreme)")
	catalogCmd.Flags().BoolVar(&catalogLowTier, "low-tier", false, "only templates safe for low-end devices")
	catalogCmd.Flags().BoolVar(&catalogFallbacks, "fallbacks", false, "only fallback templates")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	variants := catalog.All()
	switch {
	case catalogFallbacks:
		variants = catalog.Fallbacks()
	case catalogLowTier:
		variants = catalog.LowTier()
	case catalogClass != "":
		variants = catalog.ByClass(catalog.Class(catalogClass))
	case catalogIntensity != "":
		variants = catalog.ByIntensity(catalog.Intensity(catalogIntensity))
	}

	if len(variants) == 0 {
		fmt.Println("No templates match the filter.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLASS\tINTENSITY\tPATTERN\tDURATION\tFLAGS")
	for _, v := range variants {
		var flags []string
		if v.LowTierSafe {
			flags = append(flags, "low-tier")
		}
		if v.IsFallback {
			flags = append(flags, "fallback")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ID, v.Name, v.Class, v.Intensity, v.Pattern, v.Duration, strings.Join(flags, ","))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d templates\n", len(variants))
	return nil
}
