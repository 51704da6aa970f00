package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crswll/tailwindcss-theming/internal/config"
	"github.com/crswll/tailwindcss-theming/internal/stylesheet"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "generate <document>",
		Short: "Emit a CSS stylesheet for a theme document",
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
			log.WithFields(map[string]any{"path": args[0], "themes": len(themes)}).Debug("theme document loaded")

			out, err := stylesheet.Render(themes, doc.Settings)
			if err != nil {
				log.Error(err, "theme resolution failed")
				return err
			}

			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
				log.Error(err, "failed to write stylesheet")
				return err
			}
			log.WithFields(map[string]any{"path": outPath}).Info("stylesheet written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the stylesheet to a file instead of stdout")

	return cmd
}
