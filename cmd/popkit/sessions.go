package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	internalconfig "github.com/popkit-dev/popkit/internal/config"
	"github.com/popkit-dev/popkit/internal/session"
	"github.com/popkit-dev/popkit/pkg/logger"
)

func newSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List tracked host sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			workDir, _ := os.Getwd()

			cfg, err := (&internalconfig.Loader{
				ExplicitPath: configPath,
				WorkDir:      workDir,
			}).Load()
			if err != nil {
				return err
			}

			tracker := session.NewTracker(
				session.NewStore(cfg.Session.GetStateFile()),
				cfg.Session,
				logger.NewNoOpLogger(),
			)

			sessions, err := tracker.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(sessions) == 0 {
				fmt.Fprintln(out, "no tracked sessions")

				return nil
			}

			sort.Slice(sessions, func(i, j int) bool {
				return sessions[i].LastSeenAt.After(sessions[j].LastSeenAt)
			})

			table := tablewriter.NewTable(out)
			table.Header("Session", "Status", "Started", "Last Seen", "Prompts", "Commands")

			for _, info := range sessions {
				status := string(info.Status)
				if info.Status == session.StatusPoisoned && info.PoisonReason != "" {
					status = fmt.Sprintf("%s (%s)", status, info.PoisonReason)
				}

				table.Append(
					info.ID,
					status,
					humanize.Time(info.StartedAt),
					humanize.Time(info.LastSeenAt),
					fmt.Sprintf("%d", info.PromptCount),
					fmt.Sprintf("%d", info.CommandCount),
				)
			}

			return table.Render()
		},
	}
}
