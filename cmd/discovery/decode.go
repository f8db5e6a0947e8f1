package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/discovery/internal/model"
)

func newDecodeCmd(a *app) *cobra.Command {
	var canonical bool

	cmd := &cobra.Command{
		Use:   "decode <query|url|->",
		Short: "Decode a query string, deep link, or JSON payload",
		Long: `Decode discovery params from a raw query string ("sort=newest&page=2"),
a deep link ("https://www.kickstarter.com/discover/advanced?category_id=1"),
or, with "-", a JSON object read from stdin.`,
		GroupID: "query",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := decodeInput(args[0], cmd.InOrStdin())
			if err != nil {
				a.log.Debug("decode failed", "input", args[0], "error", err)
				return fmt.Errorf("invalid discovery params: %w", err)
			}
			a.log.Debug("decoded params", "params", p.String())

			out := cmd.OutOrStdout()
			switch {
			case a.jsonOutput:
				return printJSON(out, p)
			case canonical:
				fmt.Fprintln(out, model.Encode(p).Encode())
			default:
				fmt.Fprintln(out, p.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&canonical, "canonical", false, "print the canonical query string instead")
	return cmd
}

func decodeInput(in string, stdin io.Reader) (model.Params, error) {
	switch {
	case in == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return model.Defaults(), fmt.Errorf("read stdin: %w", err)
		}
		return model.DecodeJSON(data)
	case strings.Contains(in, "://"):
		return model.DecodeURL(in)
	default:
		return model.DecodeQuery(in)
	}
}
