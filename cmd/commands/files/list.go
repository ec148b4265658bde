package files

import (
	"context"

	"nathanbeddoewebdev/polar/internal/clierr"
	"nathanbeddoewebdev/polar/internal/cmdutil"
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// ListCommand returns the "files list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List files uploaded to an organization",
		Args:  cobra.NoArgs,
		RunE:  clierr.Handle(runList),
	}

	cmdutil.AddOrgFlag(cmd)
	cmdutil.AddPageFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	params, err := cmdutil.ListParams(cmd)
	if err != nil {
		return err
	}

	client, err := cmdutil.NewClient(cmd)
	if err != nil {
		return err
	}

	page, err := cmdutil.Spin(cmd, "Fetching files...", func(ctx context.Context) (*polar.ListResource[polar.File], error) {
		return client.ListFiles(ctx, params)
	})
	if err != nil {
		return err
	}

	return cmdutil.PrintPage(cmd, page, params, fileTable)
}

func fileTable(files []polar.File) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Name", "Type", "Size", "Purpose", "Uploaded", "Created"},
		Empty:   "No files found.",
	}
	for _, f := range files {
		view.AddRow(f.ID, f.Name, f.MimeType, formatSize(f.Size), f.Service, output.Bool(f.IsUploaded), output.Date(f.CreatedAt))
	}
	return view
}

func formatSize(n int64) string {
	if n < 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}
