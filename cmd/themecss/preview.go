package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/crswll/tailwindcss-theming/internal/config"
	"github.com/crswll/tailwindcss-theming/internal/preview"
	"github.com/crswll/tailwindcss-theming/internal/theme"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "preview <document>",
		Short: "Render a theme document as terminal swatches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(flags)

			doc, err := config.ParseDocument(args[0])
			if err != nil {
				log.Error(err, "failed to load theme document")
				return err
			}

			themes, err := config.BuildThemes(doc)
			if err != nil {
				log.Error(err, "failed to build theme model")
				return err
			}

			// Surface resolution problems here too; an unresolvable set
			// should not preview as if it could render.
			if _, err := theme.ResolveDefault(themes); err != nil {
				log.Error(err, "theme resolution failed")
				return err
			}

			if interactive && term.IsTerminal(int(os.Stdout.Fd())) {
				program := tea.NewProgram(preview.NewModel(themes, doc.Settings), tea.WithAltScreen())
				_, err := program.Run()
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), preview.RenderThemes(themes, doc.Settings))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse themes in an interactive viewer")

	return cmd
}
