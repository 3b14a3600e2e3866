/*
 * table.go, part of goDock.
 *
 * Copyright 2026 The goDock authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmera/godock/pipeline"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

//Table renders the outcomes as a text table, one row per pair.
func Table(outcomes []pipeline.Outcome) string {
	header := []string{"LIGAND", "TARGET", "STATUS", "SCORE", "TIME"}
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		score := "-"
		if o.HasScore {
			score = fmt.Sprintf("%.2f", o.Score)
		}
		rows = append(rows, []string{o.Ligand.Name, o.Target.Name, o.Status.String(), score, o.Duration.Round(time.Second).String()})
	}
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	var b strings.Builder
	b.WriteString(renderRow(header, widths, headerStyle))
	for i, r := range rows {
		st := okStyle
		if !outcomes[i].Complete() {
			st = failStyle
		}
		b.WriteString(renderRow(r, widths, st))
	}
	return b.String()
}

func renderRow(cells []string, widths []int, st lipgloss.Style) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = cellStyle.Width(widths[i] + 2).Render(c)
	}
	return st.Render(lipgloss.JoinHorizontal(lipgloss.Top, out...)) + "\n"
}
