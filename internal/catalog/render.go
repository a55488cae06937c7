package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/skipcount/internal/generator"
	"github.com/verte-zerg/skipcount/internal/model"
)

const previewTerms = 4

// RenderModes prints the modes as an aligned table.
func RenderModes(w io.Writer, modes []model.CountingMode) error {
	if len(modes) == 0 {
		_, err := fmt.Fprintln(w, "No modes available.")
		return err
	}
	headers := []string{"ID", "Mode", "Step", "Counts"}
	rows := make([][]string, 0, len(modes))
	for _, m := range modes {
		rows = append(rows, []string{
			m.ID,
			m.Emoji + " " + m.Label,
			"+" + strconv.Itoa(m.Step),
			preview(m.Step),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func preview(step int) string {
	seq := generator.Sequence(step, generator.TargetLength)
	parts := make([]string, 0, previewTerms+1)
	for _, v := range seq[:previewTerms] {
		parts = append(parts, strconv.Itoa(v))
	}
	parts = append(parts, "...", strconv.Itoa(seq[len(seq)-1]))
	return strings.Join(parts, ", ")
}
