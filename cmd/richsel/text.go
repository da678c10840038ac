package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjkroege/richselect/rich"
)

func newTextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "text FILE",
		Short: "Print the plain text of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			_, err = fmt.Fprintln(a.stdout, rich.PlainText(markdownBlocks(src)))
			return err
		},
	}
}
