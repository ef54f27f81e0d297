package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/frontandrew/drivesure/internal/domain"
	"github.com/spf13/cobra"
)

func newTrafficCmd(get func() *app) *cobra.Command {
	var brief bool

	cmd := &cobra.Command{
		Use:   "traffic",
		Short: "Show live traffic on major Lagos routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			if err := a.requireOnline(); err != nil {
				return err
			}
			reports, err := a.traffic.FetchTrafficReports(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			title(out, a.t("trafficReport"))
			for _, r := range reports {
				fmt.Fprintf(out, "  %-40s %s  %s\n", r.Route, badgeLabel(string(r.Status), a.t(strings.ToLower(string(r.Status)))),
					labelStyle.Render(a.t("lastUpdated")+": "+r.LastUpdated))
			}

			if !brief {
				return nil
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, a.t("generatingBriefing"))
			briefing, err := a.assistant.TrafficBriefing(cmd.Context(), reports)
			if err != nil {
				if errors.Is(err, domain.ErrAssistantOffline) {
					fmt.Fprintf(out, "%s: %s\n", a.t("trafficBriefing"), a.t("offline"))
					return nil
				}
				return err
			}

			title(out, a.t("trafficBriefing"))
			renderMarkdown(out, briefing)
			return nil
		},
	}

	cmd.Flags().BoolVar(&brief, "brief", false, "ask the AI assistant for a briefing")
	return cmd
}
