package main

import (
	"fmt"
	"os"
	"path/filepath"

	"9fans.net/go/plan9"
	"9fans.net/go/plumb"
	"github.com/spf13/cobra"
)

type plumbMessage = plumb.Message

// sendToPlumber writes m to the plumber's send port.
func sendToPlumber(m *plumbMessage) error {
	fid, err := plumb.Open("send", int(plan9.OWRITE))
	if err != nil {
		return fmt.Errorf("open plumber: %w", err)
	}
	defer fid.Close()
	if err := m.Send(fid); err != nil {
		return fmt.Errorf("plumb %q: %w", m.Data, err)
	}
	return nil
}

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open FILE X Y",
		Short: "Plumb the link under a point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := parsePoint(args[1], args[2])
			if err != nil {
				return err
			}
			d, err := a.load(args[0])
			if err != nil {
				return err
			}
			defer d.model.Close()

			url := d.model.URLAt(pt)
			if url == "" {
				return fmt.Errorf("no link at %s,%s", args[1], args[2])
			}
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			if args[0] != "-" {
				if abs, err := filepath.Abs(args[0]); err == nil {
					dir = filepath.Dir(abs)
				}
			}
			a.log.Debug("plumbing link", "url", url, "dir", dir)
			return a.send(&plumbMessage{
				Src:  "richsel",
				Dir:  dir,
				Type: "text",
				Data: []byte(url),
			})
		},
	}
}
