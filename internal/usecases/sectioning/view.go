package sectioning

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

type Metric struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle,omitempty"`
}

type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// View é a projeção de uma seção pronta para JSON ou texto
type View struct {
	Section  Section  `json:"section"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Metrics  []Metric `json:"metrics,omitempty"`
	Tables   []Table  `json:"tables,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// WriteText escreve a seção em texto simples para o terminal
func (v View) WriteText(w io.Writer) error {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "# %s\n", v.Title)
	if v.Subtitle != "" {
		fmt.Fprintf(out, "%s\n", v.Subtitle)
	}

	if len(v.Metrics) > 0 {
		fmt.Fprintln(out)
		for _, metric := range v.Metrics {
			if metric.Subtitle != "" {
				fmt.Fprintf(out, "%s: %s (%s)\n", metric.Label, metric.Value, metric.Subtitle)
				continue
			}
			fmt.Fprintf(out, "%s: %s\n", metric.Label, metric.Value)
		}
	}

	for _, table := range v.Tables {
		fmt.Fprintf(out, "\n## %s\n", table.Title)
		fmt.Fprintln(out, strings.Join(table.Columns, " | "))
		if len(table.Rows) == 0 {
			fmt.Fprintln(out, "(empty)")
			continue
		}
		for _, row := range table.Rows {
			fmt.Fprintln(out, strings.Join(row, " | "))
		}
	}

	if len(v.Notes) > 0 {
		fmt.Fprintln(out)
		for _, note := range v.Notes {
			fmt.Fprintf(out, "> %s\n", note)
		}
	}

	return out.Flush()
}

func formatMoney(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	return sign + "₹" + humanize.FormatFloat("#,###.##", amount.Round(2).InexactFloat64())
}

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func formatPercent(p float64) string {
	return humanize.FormatFloat("#.#", p) + "%"
}

func formatScore(score float64) string {
	return humanize.FormatFloat("#.##", score)
}
