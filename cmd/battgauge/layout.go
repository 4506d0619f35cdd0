package main

import (
	"battgauge/gauge"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var roleColors = map[gauge.Color]*color.Color{
	gauge.ColorFrame:        color.New(color.Bold),
	gauge.ColorFilled:       color.New(color.FgGreen),
	gauge.ColorEmpty:        color.New(color.FgHiBlack),
	gauge.ColorSegmentFrame: color.New(color.FgCyan),
}

func NewLayoutCommand() *cobra.Command {
	var size sizeFlags

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the draw commands of a gauge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, width, height, err := size.gauge(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if out == os.Stdout && termenv.NewOutput(os.Stdout).ColorProfile() == termenv.Ascii {
				color.NoColor = true
			}
			fmt.Fprintf(out, "%s %dx%d voltage %.2f filled %d/%d\n",
				g.Orientation(), width, height, g.Voltage(), g.FilledSegmentCount(), g.SegmentCount())
			printCommands(out, g.Render(float64(width), float64(height)))
			return nil
		},
	}

	size.register(cmd)

	return cmd
}

func printCommands(out io.Writer, commands []gauge.Command) {
	rows := [][]string{{"#", "kind", "color", "x", "y", "width", "height", "pen"}}
	for i, command := range commands {
		role := command.Color.String()
		if c, ok := roleColors[command.Color]; ok {
			role = c.Sprint(role)
		}
		rows = append(rows, []string{
			fmt.Sprint(i),
			command.Kind.String(),
			role,
			fmt.Sprintf("%.2f", command.Rect.X),
			fmt.Sprintf("%.2f", command.Rect.Y),
			fmt.Sprintf("%.2f", command.Rect.Width),
			fmt.Sprintf("%.2f", command.Rect.Height),
			fmt.Sprintf("%g", command.Pen),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := ansi.PrintableRuneWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for _, row := range rows {
		buf := &strings.Builder{}
		for i, cell := range row {
			if i > 0 {
				buf.WriteString("  ")
			}
			buf.WriteString(cell)
			if i < len(row)-1 {
				buf.WriteString(strings.Repeat(" ", widths[i]-ansi.PrintableRuneWidth(cell)))
			}
		}
		fmt.Fprintln(out, buf.String())
	}
}
