package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/AnyUserName/imgconv/internal/codec"
	"github.com/AnyUserName/imgconv/internal/encoder"
	"github.com/AnyUserName/imgconv/internal/format"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List known formats, their identifiers and codec support",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) error {
	lib := codec.New()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMAT\tSHORT\tLEGACY\tMIME\tDECODE\tENCODE")
	for _, f := range format.All {
		dec, enc := lib.Supports(f)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f,
			joinIDs(format.ShortNames, f),
			joinIDs(format.Legacy, f),
			joinIDs(format.MIMETypes, f),
			yesNo(dec), yesNo(enc),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	comp, filt := encoder.Keywords()
	fmt.Println()
	fmt.Printf("PNG compression: %s\n", strings.Join(comp, ", "))
	fmt.Printf("PNG filter:      %s\n", strings.Join(filt, ", "))
	return nil
}

func joinIDs(r format.Resolver, f format.Format) string {
	list := r.Identifiers(f)
	if len(list) == 0 {
		return "-"
	}
	return strings.Join(list, ",")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
