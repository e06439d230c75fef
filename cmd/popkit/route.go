package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	internalconfig "github.com/popkit-dev/popkit/internal/config"
	"github.com/popkit-dev/popkit/internal/router"
	"github.com/popkit-dev/popkit/pkg/logger"
)

func newRouteCmd() *cobra.Command {
	var suggest bool

	cmd := &cobra.Command{
		Use:   "route <prompt>",
		Short: "Show which agents a prompt would route to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, _ := os.Getwd()

			cfg, err := (&internalconfig.Loader{
				ExplicitPath: configPath,
				WorkDir:      workDir,
			}).Load()
			if err != nil {
				return err
			}

			routerCfg := cfg.GetRouter()
			engine := router.NewEngine(
				router.LoadTable(routerCfg, logger.NewNoOpLogger()),
				routerCfg.GetThreshold(),
				routerCfg.GetMaxAgents(),
			)

			prompt := strings.Join(args, " ")
			matches := engine.Route(prompt)

			out := cmd.OutOrStdout()

			if len(matches) == 0 {
				fmt.Fprintln(out, "no agents matched")

				if suggest {
					for _, name := range engine.Suggest(prompt) {
						fmt.Fprintf(out, "did you mean: %s\n", name)
					}
				}

				return nil
			}

			table := tablewriter.NewTable(out)
			table.Header("Agent", "Category", "Score", "Keywords")

			for _, m := range matches {
				table.Append(
					m.Agent,
					m.Category,
					fmt.Sprintf("%.1f", m.Score),
					strings.Join(m.Keywords, ", "),
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().BoolVar(&suggest, "suggest", false, "suggest agents for near-miss keywords when nothing matches")

	return cmd
}
