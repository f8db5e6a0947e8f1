package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/discovery/internal/model"
	"github.com/alfredjeanlab/discovery/internal/seed"
)

func newEncodeCmd(a *app) *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:     "encode [flags]",
		Short:   "Encode discovery params as a query string",
		GroupID: "query",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := a.cfg.BaseParams()
			if err != nil {
				return err
			}
			p, err := paramsFromFlags(cmd, base)
			if err != nil {
				return err
			}

			q := model.Encode(p)
			a.log.Debug("encoded params", "params", p.String(), "keys", q.Len())

			out := cmd.OutOrStdout()
			switch {
			case a.jsonOutput:
				return printJSON(out, q.Map())
			case table:
				printQueryTable(out, q, a.style)
			default:
				fmt.Fprintln(out, q.Encode())
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Bool("staff-picks", false, "only staff picks")
	f.Bool("has-video", false, "only projects with a video")
	f.Bool("starred", false, "only projects you starred")
	f.Bool("backed", false, "projects you backed (--backed=false for ones you did not)")
	f.Bool("social", false, "only projects your friends backed")
	f.Bool("recommended", false, "only recommended projects")
	f.Int64("similar-to", 0, "projects similar to this project id")
	f.Int64("category", 0, "category id")
	f.String("term", "", "search term")
	f.String("state", "", "project state (all, live, successful)")
	f.String("sort", "", "sort order (magic, popularity, newest, end_date, most_funded)")
	f.Int("page", 0, "page number, starting at 1")
	f.Int("per-page", 0, "page size")
	f.Int("seed", 0, "randomization seed")
	f.Bool("random-seed", false, "generate a fresh randomization seed")
	f.Bool("include-potd", false, "include the project of the day (needs --staff-picks)")
	f.BoolVar(&table, "table", false, "print a key/value table")
	return cmd
}

// paramsFromFlags applies every flag the user actually set on top of base.
// Unset flags leave base untouched, so --backed=false means "not backed"
// while omitting --backed means "any".
func paramsFromFlags(cmd *cobra.Command, base model.Params) (model.Params, error) {
	f := cmd.Flags()
	p := base

	bools := []struct {
		name string
		with func(model.Params, bool) model.Params
	}{
		{"staff-picks", model.Params.WithStaffPicks},
		{"has-video", model.Params.WithHasVideo},
		{"starred", model.Params.WithStarred},
		{"backed", model.Params.WithBacked},
		{"social", model.Params.WithSocial},
		{"recommended", model.Params.WithRecommended},
		{"include-potd", model.Params.WithIncludePOTD},
	}
	for _, b := range bools {
		if !f.Changed(b.name) {
			continue
		}
		v, err := f.GetBool(b.name)
		if err != nil {
			return p, err
		}
		p = b.with(p, v)
	}

	ints := []struct {
		name string
		with func(model.Params, int) model.Params
	}{
		{"page", model.Params.WithPage},
		{"per-page", model.Params.WithPerPage},
		{"seed", model.Params.WithSeed},
	}
	for _, n := range ints {
		if !f.Changed(n.name) {
			continue
		}
		v, err := f.GetInt(n.name)
		if err != nil {
			return p, err
		}
		p = n.with(p, v)
	}

	if f.Changed("similar-to") {
		id, _ := f.GetInt64("similar-to")
		p = p.WithSimilarTo(model.ProjectRef{ID: id})
	}
	if f.Changed("category") {
		id, _ := f.GetInt64("category")
		p = p.WithCategory(model.CategoryRef{ID: id})
	}
	if f.Changed("term") {
		term, _ := f.GetString("term")
		p = p.WithQuery(term)
	}
	if f.Changed("state") {
		name, _ := f.GetString("state")
		s, ok := model.ParseState(name)
		if !ok {
			return p, fmt.Errorf("--state: unknown state %q", name)
		}
		p = p.WithState(s)
	}
	if f.Changed("sort") {
		name, _ := f.GetString("sort")
		s, ok := model.ParseSort(name)
		if !ok {
			return p, fmt.Errorf("--sort: unknown sort %q", name)
		}
		p = p.WithSort(s)
	}

	if random, _ := f.GetBool("random-seed"); random {
		if f.Changed("seed") {
			return p, errors.New("--seed and --random-seed cannot be used together")
		}
		n, err := seed.Generate()
		if err != nil {
			return p, err
		}
		p = p.WithSeed(n)
	}
	return p, nil
}
