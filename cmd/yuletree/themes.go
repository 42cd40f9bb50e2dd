package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/yuletree"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C5A059"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the tree palettes in cycling order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printThemes(cmd.OutOrStdout())
		},
	}
}

func printThemes(w io.Writer) error {
	for i, t := range yuletree.Themes() {
		var lights []string
		for _, c := range t.LightColors {
			lights = append(lights, swatch(c))
		}
		_, err := fmt.Fprintf(w, "%s %s  main %s  decoration %s  lights %s  %s\n",
			styleDim.Render(fmt.Sprintf("%d", i)),
			styleTitle.Render(fmt.Sprintf("%-13s", t.Name)),
			swatch(t.MainColor),
			swatch(t.DecorationColor),
			strings.Join(lights, " "),
			styleDim.Render(fmt.Sprintf("%d ornaments", t.OrnamentCount)),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// swatch renders a hex color as a colored block followed by its code.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██") + " " + hex
}
