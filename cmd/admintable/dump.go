package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"admintable/internal/ui/common"
	"admintable/internal/ui/users"
)

func newDumpCmd() *cobra.Command {
	var (
		page int
		term string
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print one page of the member table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.log.Sync() }()

			ctx := contextOrBackground(cmd)
			if a.cfg.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
				defer cancel()
			}
			recs, err := a.client.ListMembers(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to fetch user data")
			}
			a.state.Load(recs)
			a.state.Search(term)
			a.state.GoToPage(page)

			v := a.state.Snapshot()
			out := cmd.OutOrStdout()
			switch {
			case v.NotFound:
				fmt.Fprintln(out, "User doesn't exist")
				return nil
			case v.OutOfRange:
				return errors.Errorf("page %d is past the last page (%d)", v.CurrentPage, v.LastPage)
			}
			fmt.Fprintln(out, common.NewTable(users.Columns(0, v.AllOnPageSelected), users.Rows(v.Visible)).View())
			fmt.Fprintln(out, users.Pagination(v))
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page to print")
	cmd.Flags().StringVar(&term, "search", "", "Only print members matching this term")
	return cmd
}
