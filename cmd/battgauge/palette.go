package main

import (
	"battgauge/gauge"
	"battgauge/widgets"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var roles = []gauge.Color{gauge.ColorFrame, gauge.ColorFilled, gauge.ColorEmpty, gauge.ColorSegmentFrame}

func NewPaletteCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the gauge colours in the terminal and in PNG snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			output := termenv.NewOutput(out)
			printRoles(out, output)
			if all {
				printColors(out, output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "also show all 256 terminal colours")

	return cmd
}

func printRoles(out io.Writer, output *termenv.Output) {
	for _, role := range roles {
		style := widgets.DefaultBatteryPalette[role]
		rgba := gauge.DefaultPalette.RGBA(role)
		sample := output.String(" ━━ ").
			Foreground(output.Color(fmt.Sprint(style.FG))).
			Background(output.Color(fmt.Sprint(style.BG)))
		fmt.Fprintf(out, "%-13s %s  fg %3d  bg %3d  png #%02x%02x%02x\n",
			role, sample, style.FG, style.BG, rgba.R, rgba.G, rgba.B)
	}
}

func printColors(out io.Writer, output *termenv.Output) {
	for i := 0; i < 256; i++ {
		fmt.Fprint(out, output.String(fmt.Sprintf("   %3v   ", i)).Background(output.Color(fmt.Sprint(i))))
		if i%6 == 3 {
			fmt.Fprintln(out)
		}
	}
	fmt.Fprintln(out)
}
