package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alfredjeanlab/discovery/internal/model"
	"github.com/alfredjeanlab/discovery/internal/ui"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printQueryTable(w io.Writer, q model.Query, style ui.Styler) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE")
	for _, k := range q.Keys() {
		v, _ := q.Get(k)
		fmt.Fprintf(tw, "%s\t%s\n", k, v)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%s\n", style.Muted(fmt.Sprintf("%d keys", q.Len())))
}
