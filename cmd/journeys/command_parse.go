package main

import (
	"encoding/json"

	"journeys/internal/report"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	File   string `arg:"" help:"Journeys file, or - for stdin"`
	Format string `help:"Output format" enum:"yaml,json" default:"yaml"`
	Trace  bool   `help:"Trace the journey grammar while parsing"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	journeys, err := ctx.parseInput(cmd.File, cmd.Trace)
	if err != nil {
		return err
	}

	docs := make([]report.JourneyDocument, 0, len(journeys))
	for _, j := range journeys {
		docs = append(docs, report.NewJourneyDocument(j))
	}

	if cmd.Format == "json" {
		enc := json.NewEncoder(ctx.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}
	return report.WriteYAML(ctx.Stdout, docs)
}
