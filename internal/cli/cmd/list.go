package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

type uploadRecord struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	SizeMB      float64   `json:"size_mb"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

func newListCommand(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := opts.origin() + "/uploads?limit=" + strconv.Itoa(limit)
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			resp, err := opts.http.Do(req)
			if err != nil {
				return fmt.Errorf("list uploads: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
				return fmt.Errorf("list uploads: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
			}

			var payload struct {
				Uploads []uploadRecord `json:"uploads"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				return fmt.Errorf("decode uploads: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFILENAME\tSIZE (MB)\tTYPE\tUPLOADED")
			for _, u := range payload.Uploads {
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n",
					u.ID, u.Filename, u.SizeMB, u.ContentType, u.CreatedAt.Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of uploads to show (max 50)")
	return cmd
}
