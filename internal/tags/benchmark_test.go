package tags

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func benchTable(b *testing.B, n int) *Table {
	b.Helper()
	var sb strings.Builder
	sb.WriteString("old_tag,new_tags,C\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "old%d,\"New%d,?Shared\",Extra%d\n", i, i, i)
	}
	table, err := Load(strings.NewReader(sb.String()), "C")
	if err != nil {
		b.Fatal(err)
	}
	return table
}

// BenchmarkLoad benchmarks loading a mapping file of curated size.
func BenchmarkLoad(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("old_tag,new_tags,C\n")
	for i := 0; i < 2000; i++ {
		fmt.Fprintf(&sb, "old%d,New%d,\n", i, i)
	}
	data := sb.String()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Load(strings.NewReader(data), "C"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResolve benchmarks resolving a typical tag list, done once per row.
func BenchmarkResolve(b *testing.B) {
	r := NewResolver(benchTable(b, 500), NewWarnedSet(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	list := "old1, old42, unknown, old499, , old7"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Resolve(list)
	}
}
