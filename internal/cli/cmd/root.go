// Package cmd holds the commands of the uploader CLI, which drives the upload
// page of a running server from the terminal.
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/saransh1220/animal-drop/internal/client"
	"github.com/saransh1220/animal-drop/internal/shared/logger"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

type options struct {
	server  string
	timeout time.Duration
	verbose bool
	http    *http.Client
}

// NewRootCommand creates the root command. httpClient may be nil.
func NewRootCommand(httpClient *http.Client) *cobra.Command {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	opts := &options{http: httpClient}

	root := &cobra.Command{
		Use:           "uploader",
		Short:         "Preview animals and upload files to an animal-drop server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logger.Get().SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.server, "server", "s", defaultServer, "server base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "upload timeout (0 waits indefinitely)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newSendCommand(opts), newPreviewCommand(opts), newListCommand(opts))
	return root
}

func (o *options) origin() string {
	return strings.TrimRight(o.server, "/")
}

// loadPage fetches / and binds both handlers to it
func (o *options) loadPage(ctx context.Context) (*client.App, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.origin()+"/", nil)
	if err != nil {
		return nil, err
	}
	resp, err := o.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("load page: status %d", resp.StatusCode)
	}

	page, err := client.ParsePage(resp.Body)
	if err != nil {
		return nil, err
	}
	return client.Mount(page, o.origin(),
		client.WithHTTPClient(o.http),
		client.WithTimeout(o.timeout),
	), nil
}
