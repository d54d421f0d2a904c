package main

import (
	"fmt"
	"os"
	"path/filepath"
	"pr-dashboard/internal/bootstrap"
	"pr-dashboard/internal/domain/models"
	"pr-dashboard/internal/infrastructure/config"
	"pr-dashboard/internal/infrastructure/logger"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "prreport",
		Short:         "Pull request evaluation reports",
		Long:          "Query pull request activity for a team member and export evaluation reports as PDF.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default ./config/config.yaml)")

	cmd.AddCommand(newGenerateCmd(opts), newMembersCmd(opts))
	return cmd
}

func (o *rootOptions) build(cmd *cobra.Command) (*bootstrap.App, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}
	return bootstrap.Build(cmd.Context(), cfg, logger.New(cfg.Env))
}

type generateOptions struct {
	member       string
	from         string
	to           string
	repos        []string
	state        string
	targetBranch string
	outDir       string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an evaluation report PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := opts.query()
			if err != nil {
				return err
			}
			app, err := root.build(cmd)
			if err != nil {
				return err
			}

			rep, err := app.Report.Generate(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("generate report: %w", err)
			}

			if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			path := filepath.Join(opts.outDir, rep.FileName)
			if err := os.WriteFile(path, rep.Content, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Report written to %s\n", path)
			if rep.Score.Sufficient {
				fmt.Fprintf(out, "Overall score: %.1f/10 - %s\n", rep.Score.Value, rep.Score.Label)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.member, "member", "m", "", "member uuid")
	f.StringVar(&opts.from, "from", "", "start date (YYYY-MM-DD)")
	f.StringVar(&opts.to, "to", "", "end date (YYYY-MM-DD)")
	f.StringSliceVarP(&opts.repos, "repo", "r", nil, "repository, repeatable or comma separated")
	f.StringVar(&opts.state, "state", "", "OPEN, MERGED or DECLINED")
	f.StringVar(&opts.targetBranch, "target-branch", "", "target branch filter")
	f.StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("repo")
	return cmd
}

func (o *generateOptions) query() (models.PRQuery, error) {
	from, err := time.Parse(models.DateLayout, o.from)
	if err != nil {
		return models.PRQuery{}, fmt.Errorf("invalid --from, use YYYY-MM-DD: %w", err)
	}
	to, err := time.Parse(models.DateLayout, o.to)
	if err != nil {
		return models.PRQuery{}, fmt.Errorf("invalid --to, use YYYY-MM-DD: %w", err)
	}
	return models.PRQuery{
		Author:       o.member,
		From:         from,
		To:           to,
		Repositories: o.repos,
		State:        models.PRState(strings.ToUpper(o.state)),
		TargetBranch: o.targetBranch,
	}, nil
}

func newMembersCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List workspace members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := root.build(cmd)
			if err != nil {
				return err
			}
			members, err := app.Dashboard.ListMembers(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "UUID\tNAME\tUSERNAME")
			for _, m := range members {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.UUID, m.DisplayName, m.Username)
			}
			return tw.Flush()
		},
	}
}
