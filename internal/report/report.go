// Package report renders the end-of-run summary as a standalone HTML page,
// for runs whose log scrolls past faster than anyone reads it.
package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/a-h/templ"

	"github.com/surj/an-import/internal/core"
	"github.com/surj/an-import/internal/importer"
)

// Render writes the HTML report for s to w.
func Render(ctx context.Context, w io.Writer, s importer.Summary) error {
	return Page(s).Render(ctx, w)
}

// Page is the full report document.
func Page(s importer.Summary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "Action Network import"
		if s.Chapter != "" {
			title += " for " + s.Chapter
		}

		if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>"+
			templ.EscapeString(title)+"</title>"+style+"</head><body>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>", templ.EscapeString(title)); err != nil {
			return err
		}

		for _, c := range []templ.Component{counts(s), skipReasons(s), unknownTags(s)} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

const style = `<style>
body{font-family:sans-serif;margin:2em;color:#222}
table{border-collapse:collapse;margin-bottom:1.5em}
th,td{border:1px solid #ccc;padding:.3em .8em;text-align:left}
th{background:#f4f4f4}
.dry{color:#a60}
</style>`

func counts(s importer.Summary) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		rate := "n/a"
		if r, ok := s.Rate(); ok {
			rate = strconv.FormatFloat(r, 'f', 0, 64)
		}

		rows := [][2]string{
			{"Run", s.RunID},
			{"Started", s.StartedAt.Format("2006-01-02 15:04:05")},
			{"Duration", s.Duration.String()},
			{"Processed", strconv.Itoa(s.Processed)},
			{"Skipped", strconv.Itoa(s.Skipped)},
			{"Last row", strconv.Itoa(s.LastRow)},
			{"Activists per second", rate},
		}

		if s.DryRun {
			if _, err := io.WriteString(w, `<p class="dry">Dry run: nothing was sent.</p>`); err != nil {
				return err
			}
		}
		return table(w, "Summary", []string{"", ""}, rows)
	})
}

func skipReasons(s importer.Summary) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(s.SkipReasons) == 0 {
			return nil
		}

		reasons := make([]core.SkipReason, 0, len(s.SkipReasons))
		for r := range s.SkipReasons {
			reasons = append(reasons, r)
		}
		sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })

		rows := make([][2]string, 0, len(reasons))
		for _, r := range reasons {
			rows = append(rows, [2]string{string(r), strconv.Itoa(s.SkipReasons[r])})
		}
		return table(w, "Skipped rows", []string{"Reason", "Rows"}, rows)
	})
}

func unknownTags(s importer.Summary) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(s.UnknownTags) == 0 {
			return nil
		}

		if _, err := fmt.Fprintf(w, "<h2>Unknown tags (%d)</h2><p>Add these to the mapping file, or map them to IGNORE.</p><ul>",
			len(s.UnknownTags)); err != nil {
			return err
		}
		for _, t := range s.UnknownTags {
			if _, err := fmt.Fprintf(w, "<li><code>%s</code></li>", templ.EscapeString(t)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}

func table(w io.Writer, caption string, head []string, rows [][2]string) error {
	if _, err := fmt.Fprintf(w, "<h2>%s</h2><table>", templ.EscapeString(caption)); err != nil {
		return err
	}
	if head[0] != "" || head[1] != "" {
		if _, err := fmt.Fprintf(w, "<tr><th>%s</th><th>%s</th></tr>",
			templ.EscapeString(head[0]), templ.EscapeString(head[1])); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "<tr><th>%s</th><td>%s</td></tr>",
			templ.EscapeString(r[0]), templ.EscapeString(r[1])); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table>")
	return err
}
