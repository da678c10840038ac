package main

import (
	"github.com/spf13/cobra"
)

func newLayoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout FILE",
		Short: "Print the layout hierarchy of a document as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(args[0])
			if err != nil {
				return err
			}
			defer d.model.Close()
			return d.layout.Encode(a.stdout)
		},
	}
}
