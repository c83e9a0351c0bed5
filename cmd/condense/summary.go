package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"condense/internal/condense"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSummaryTable(result condense.Result, sourceDuration time.Duration, outputPath string) string {
	rows := [][]string{
		{"Captions loaded", fmt.Sprintf("%d", result.CaptionsLoaded)},
		{"Captions kept", fmt.Sprintf("%d", result.CaptionsKept)},
		{"Intervals", fmt.Sprintf("%d", len(result.Intervals))},
		{"Dialogue duration", formatDuration(result.DialogueDuration)},
	}
	if sourceDuration > 0 {
		ratio := float64(result.DialogueDuration) / float64(sourceDuration)
		rows = append(rows,
			[]string{"Source duration", formatDuration(sourceDuration)},
			[]string{"Condensed to", fmt.Sprintf("%.1f%%", ratio*100)},
		)
	}
	rows = append(rows, []string{"Output", outputPath})
	return renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}

func renderIntervalTable(intervals []condense.Interval) string {
	rows := make([][]string, 0, len(intervals))
	for i, iv := range intervals {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			formatDuration(iv.Start),
			formatDuration(iv.End),
			formatDuration(iv.Duration()),
		})
	}
	return renderTable(
		[]string{"#", "Start", "End", "Length"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
	)
}

// formatDuration renders a timestamp as H:MM:SS.mmm.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	millis := (d - seconds*time.Second) / time.Millisecond
	return fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
