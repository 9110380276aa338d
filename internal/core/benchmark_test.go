package core

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"testing"
)

// ============================================================================
// Cell Benchmarks
// ============================================================================

// BenchmarkCleanCell benchmarks header cell cleaning.
func BenchmarkCleanCell(b *testing.B) {
	testCases := []string{
		"email",
		`="email"`,
		`"full_name"`,
		"  tag_list  ",
		"'SURJ Bay Area'",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			CleanCell(tc)
		}
	}
}

// BenchmarkSplitList benchmarks tag list splitting, done once per row.
func BenchmarkSplitList(b *testing.B) {
	list := "#maestro_upload, #trump-organize, #phonebank, , volunteer, donor 2016"

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		SplitList(list)
	}
}

// BenchmarkParseBool benchmarks flag cell parsing.
func BenchmarkParseBool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParseBool("true")
		ParseBool("FALSE")
		ParseBool("")
	}
}

// ============================================================================
// Header Benchmarks
// ============================================================================

// BenchmarkMakeHeaderIndex benchmarks header index creation on a full
// NationBuilder export header, which runs to well over 100 columns.
func BenchmarkMakeHeaderIndex(b *testing.B) {
	headers := make([]string, 150)
	for i := range headers {
		headers[i] = fmt.Sprintf("column_%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MakeHeaderIndex(headers)
	}
}

// BenchmarkValidateHeaders benchmarks header validation.
func BenchmarkValidateHeaders(b *testing.B) {
	specs := []FieldSpec{
		{Name: "email", Required: true},
		{Name: "full_name"},
		{Name: "tag_list"},
		{Name: "employer"},
	}
	idx := MakeHeaderIndex([]string{"email", "full_name", "tag_list", "employer", "extra"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ValidateHeaders(idx, specs)
	}
}

// ============================================================================
// Reader Benchmarks
// ============================================================================

// BenchmarkReader benchmarks streaming a people export row by row.
func BenchmarkReader(b *testing.B) {
	data := generateTestCSV(1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r, err := NewReader(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := r.Next(); err == io.EOF {
				break
			}
		}
	}
}

// BenchmarkCSVParsing_Comparison compares ReadAll with the streaming Reader.
func BenchmarkCSVParsing_Comparison(b *testing.B) {
	data := generateTestCSV(500)

	b.Run("ReadAll", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = csv.NewReader(bytes.NewReader(data)).ReadAll()
		}
	})

	b.Run("Reader", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			r, _ := NewReader(bytes.NewReader(data))
			for {
				if _, err := r.Next(); err == io.EOF {
					break
				}
			}
		}
	})
}

// BenchmarkSkipBOM_LargeFile benchmarks BOM removal on a larger export.
func BenchmarkSkipBOM_LargeFile(b *testing.B) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, bytes.Repeat([]byte("data line\n"), 1000)...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = io.Copy(io.Discard, SkipBOM(bytes.NewReader(data)))
	}
}

// BenchmarkCleanCellParallel benchmarks parallel cell cleaning.
func BenchmarkCleanCellParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			CleanCell(`="formula value"`)
		}
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

// generateTestCSV generates a people export with the specified number of rows.
func generateTestCSV(rows int) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"email", "email_opt_in", "full_name", "first_name", "last_name", "tag_list", "primary_city", "primary_state"})
	for i := 0; i < rows; i++ {
		_ = w.Write([]string{
			fmt.Sprintf("person%d@example.org", i),
			"TRUE",
			"Jane Doe",
			"Jane",
			"Doe",
			strings.Join([]string{"#maestro_upload", "#trump-organize", "#phonebank"}, ","),
			"Oakland",
			"CA",
		})
	}
	w.Flush()

	return buf.Bytes()
}
