package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taxsite/internal/config"
	"taxsite/internal/database"
	"taxsite/internal/domain/lead"
	"taxsite/internal/pkg/utils"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List leads captured without a CRM",
	Long:  "Lists the newest locally captured leads from DATABASE_URL.",
	RunE:  runLeads,
}

var (
	leadsLimit int
	leadsJSON  bool
)

func init() {
	leadsCmd.Flags().IntVarP(&leadsLimit, "limit", "n", 50, "Maximum number of leads to show")
	leadsCmd.Flags().BoolVar(&leadsJSON, "json", false, "Print JSON including selections and attachments")
	rootCmd.AddCommand(leadsCmd)
}

func runLeads(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is empty")
	}
	db, err := database.Connect(cfg.DatabaseURL, zap.NewNop())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := lead.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate leads: %w", err)
	}
	return printLeads(cmd.Context(), cmd.OutOrStdout(), lead.NewRepository(db), leadsLimit)
}

func printLeads(ctx context.Context, w io.Writer, repo lead.Repository, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	leads, err := repo.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list leads: %w", err)
	}
	if leadsJSON {
		return writeJSON(w, leadViews(leads))
	}
	if len(leads) == 0 {
		fmt.Fprintln(w, "No leads captured.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTACT ID\tNAME\tEMAIL\tCATEGORY\tSCORE\tCREATED")
	for _, l := range leads {
		score := "-"
		if l.ICPScore != nil {
			score = fmt.Sprint(*l.ICPScore)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ContactID, l.FullName(), l.Email, l.LeadCategory, score, l.CreatedAt.UTC().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

type leadView struct {
	*lead.Lead
	Selections  any `json:"selections,omitempty"`
	Attachments any `json:"attachments,omitempty"`
}

func leadViews(leads []*lead.Lead) []leadView {
	views := make([]leadView, 0, len(leads))
	for _, l := range leads {
		views = append(views, leadView{
			Lead:        l,
			Selections:  utils.FromJSONString(l.Selections),
			Attachments: utils.FromJSONString(l.Attachments),
		})
	}
	return views
}
