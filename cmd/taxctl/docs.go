package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taxsite/internal/config"
	"taxsite/internal/domain/documents"
	"taxsite/internal/storage/blob"
	"taxsite/internal/web"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List uploaded lead documents",
	Long:  "Lists the documents stored for one email (--email) or every document grouped by email (--all), using the blob storage settings from the environment.",
	RunE:  runDocs,
}

var (
	docsEmail string
	docsAll   bool
	docsQuery string
	docsJSON  bool
)

func init() {
	docsCmd.Flags().StringVarP(&docsEmail, "email", "e", "", "Email whose documents to list")
	docsCmd.Flags().BoolVar(&docsAll, "all", false, "List every document grouped by email")
	docsCmd.Flags().StringVarP(&docsQuery, "query", "q", "", "With --all, filter by email or file name")
	docsCmd.Flags().BoolVar(&docsJSON, "json", false, "Print JSON instead of a table")
	docsCmd.MarkFlagsMutuallyExclusive("email", "all")
	docsCmd.MarkFlagsOneRequired("email", "all")

	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	store, err := blob.FromConfig(cfg.Blob)
	if errors.Is(err, blob.ErrNotConfigured) {
		return fmt.Errorf("blob storage is not configured: set AZURE_BLOB_CONTAINER_SAS_URL or AZURE_STORAGE_ACCOUNT, AZURE_STORAGE_CONTAINER and AZURE_CONTAINER_SAS_TOKEN")
	}
	if err != nil {
		return err
	}
	return listDocs(cmd.Context(), cmd.OutOrStdout(), documents.NewService(store, cfg.Documents.StartYear))
}

func listDocs(ctx context.Context, w io.Writer, svc *documents.Service) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if docsAll {
		groups, err := svc.BrowseAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to browse documents: %w", err)
		}
		groups = documents.FilterGroups(groups, docsQuery)
		if docsJSON {
			return writeJSON(w, groups)
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, g := range groups {
			fmt.Fprintf(tw, "%s\t%d file%s\n", g.Email, len(g.Files), web.Plural(len(g.Files)))
			writeItems(tw, g.Files)
		}
		return tw.Flush()
	}

	items, err := svc.ListForEmail(ctx, docsEmail)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	if docsJSON {
		return writeJSON(w, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "No documents found.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeItems(tw, items)
	return tw.Flush()
}

func writeItems(w io.Writer, items []blob.Item) {
	for _, it := range items {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", web.Basename(it.Name), web.Bytes(it.Size), web.Modified(it.LastModified), it.URL)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
