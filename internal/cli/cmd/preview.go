package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/saransh1220/animal-drop/internal/client"
	"github.com/spf13/cobra"
)

func newPreviewCommand(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "preview <animal>",
		Short: "Select an animal and fetch its preview image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.loadPage(cmd.Context())
			if err != nil {
				return err
			}

			if err := app.Page.Choose(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, client.ErrNoSuchOption) {
					return fmt.Errorf("%w (available: %s)", err, strings.Join(values(app.Page), ", "))
				}
				return err
			}

			src := opts.origin() + app.Page.Image.Src()
			color.New(color.FgBlue).Fprintf(cmd.OutOrStdout(), "Preview: %s\n", src)

			n, err := fetch(cmd, opts.http, src, out)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", n, out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the image to this file")
	return cmd
}

func values(page *client.Page) []string {
	vals := make([]string, 0, len(page.Radios))
	for _, r := range page.Radios {
		vals = append(vals, r.Value())
	}
	return vals
}

// fetch checks the image is served and optionally saves it
func fetch(cmd *cobra.Command, httpClient *http.Client, src, out string) (int64, error) {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, src, nil)
	if err != nil {
		return 0, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch preview: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch preview: status %d", resp.StatusCode)
	}

	dst := io.Discard
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		dst = f
	}
	return io.Copy(dst, resp.Body)
}
