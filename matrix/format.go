// SPDX-License-Identifier: MIT

package matrix

import "strings"

// String renders one bracketed row per line with right-aligned columns:
//
//	[ 1  0]
//	[-2  3]
//
// An empty matrix renders as "[]".
func (m *Matrix[R]) String() string {
	if m.rows == 0 || m.cols == 0 {
		return "[]"
	}
	cells := make([][]string, m.rows)
	width := make([]int, m.cols)
	for i := range cells {
		cells[i] = make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			s := m.at(i, j).String()
			cells[i][j] = s
			width[j] = max(width[j], len([]rune(s)))
		}
	}

	var sb strings.Builder
	for i, row := range cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j, s := range row {
			if j > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(strings.Repeat(" ", width[j]-len([]rune(s))))
			sb.WriteString(s)
		}
		sb.WriteByte(']')
	}

	return sb.String()
}
