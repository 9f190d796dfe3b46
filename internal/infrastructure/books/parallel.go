package books

import (
	"sort"

	"github.com/jhoicas/contasunat/pkg/ple"
)

type chunkResult struct {
	start  int
	lines  []string
	issues []ple.Issue
}

// encodeParallel reparte los registros en bloques contiguos, uno por goroutine. Cada línea depende
// solo de su registro y de su posición, así que el resultado es idéntico al secuencial.
func encodeParallel[T any](records []T, period string, fields mapper[T], workers int) ([]string, ple.Report) {
	size := (len(records) + workers - 1) / workers
	results := make(chan chunkResult, workers)

	chunks := 0
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks++
		go func(start int, part []T) {
			res := chunkResult{start: start, lines: make([]string, 0, len(part))}
			for i, r := range part {
				n := start + i + 1
				line, issues := ple.FormatLineReport(fields(r, period, n))
				for _, is := range issues {
					is.Line = n
					res.issues = append(res.issues, is)
				}
				res.lines = append(res.lines, line)
			}
			results <- res
		}(start, records[start:end])
	}

	collected := make([]chunkResult, 0, chunks)
	for i := 0; i < chunks; i++ {
		collected = append(collected, <-results)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].start < collected[j].start })

	lines := make([]string, 0, len(records))
	var report ple.Report
	for _, c := range collected {
		lines = append(lines, c.lines...)
		report.Issues = append(report.Issues, c.issues...)
	}
	return lines, report
}
