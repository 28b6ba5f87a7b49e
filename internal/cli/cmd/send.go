package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/saransh1220/animal-drop/internal/client"
	"github.com/spf13/cobra"
)

func newSendCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "send <file>",
		Short: "Upload a file through the upload form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := client.OpenFile(args[0])
			if err != nil {
				return err
			}

			app, err := opts.loadPage(cmd.Context())
			if err != nil {
				return err
			}
			app.Page.ChooseFile(file)
			app.Page.SubmitForm(cmd.Context())

			return report(cmd.OutOrStdout(), app.Page)
		},
	}
}

// report prints the message line and, after a success, the results table
func report(w io.Writer, page *client.Page) error {
	msg := page.Message
	if msg.HasClass("err") {
		color.New(color.FgRed).Fprintln(w, msg.Text())
		return fmt.Errorf("upload failed: %s", msg.Text())
	}
	color.New(color.FgGreen).Fprintln(w, msg.Text())

	if page.ResultsCard.Hidden() {
		return nil
	}
	rows, err := client.Rows(page.ResultsBody.InnerHTML())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILENAME\tSIZE (MB)\tTYPE")
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
