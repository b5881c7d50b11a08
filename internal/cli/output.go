package cli

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/okian/ipldash/internal/domain/chart"
	"github.com/okian/ipldash/internal/domain/types"
	"github.com/olekukonko/tablewriter"
)

// OutputFormatter writes command results as a table or as JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func newFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w}
}

// Emit writes data as indented JSON in json mode, otherwise as a table of
// header and rows.
func (f *OutputFormatter) Emit(data any, header []string, rows [][]string) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	table := tablewriter.NewWriter(f.Writer)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

// Entries writes a ranked board.
func (f *OutputFormatter) Entries(entries []types.Entry, category, value string) error {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{strconv.Itoa(e.Rank), e.Category, chart.Count(e.Value)}
	}
	return f.Emit(entries, []string{"Rank", category, value}, rows)
}

// TeamRecords writes a win-rate table.
func (f *OutputFormatter) TeamRecords(records []types.TeamRecord) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Team,
			strconv.Itoa(r.Matches),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			chart.Percent(r.WinRate),
		}
	}
	return f.Emit(records, []string{"Team", "Matches", "Wins", "Losses", "Win Rate"}, rows)
}
