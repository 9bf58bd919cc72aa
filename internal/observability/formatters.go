// Package observability provides formatted output utilities for the CLI's text mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for text mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		r := []rune(s)
		return string(r[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-n)
}

// PrintMatchReport outputs a summary of a match report: one line per job in
// listing order, then the top matches with their matched skills.
func (p *Printer) PrintMatchReport(report *types.MatchReport, jobs []types.JobPosting) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Jobs:     %d\n", len(report.Results)))
	if !report.HasProfile {
		sb.WriteString("Profile:  no skills or categories declared, no top matches\n")
	}
	sb.WriteString("\n")

	for i := range jobs {
		r, ok := report.Results[jobs[i].ID]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%3d%%  #%d %s\n", r.MatchingScore, jobs[i].ID, jobs[i].Title))
	}
	p.printBox("MATCH REPORT", sb.String())

	if len(report.Top) == 0 {
		return
	}

	titles := make(map[types.JobID]string, len(jobs))
	for i := range jobs {
		titles[jobs[i].ID] = jobs[i].Title
	}

	sb.Reset()
	for i, top := range report.Top {
		r := report.Results[top.JobID]
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, titles[top.JobID]))
		sb.WriteString(fmt.Sprintf("   match %d%% = skills %d%% × 0.6 + text %d%% × 0.4\n",
			r.MatchingScore, r.SkillScore, r.TextScore))
		sb.WriteString(fmt.Sprintf("   skills %d/%d%s\n",
			r.MatchedSkillCount, r.TotalRequiredSkills, skillList(r.MatchedSkills)))
	}
	p.printBox(fmt.Sprintf("TOP %d MATCHES", len(report.Top)), sb.String())
}

func skillList(skills []types.Skill) string {
	if len(skills) == 0 {
		return ""
	}
	count := min(len(skills), maxItemsToShow)
	names := make([]string, 0, count)
	for _, s := range skills[:count] {
		names = append(names, s.Name)
	}
	list := ": " + strings.Join(names, ", ")
	if len(skills) > maxItemsToShow {
		list += fmt.Sprintf(" ... and %d more", len(skills)-maxItemsToShow)
	}
	return list
}

// PrintKeywords outputs ranked keywords with their weights.
func (p *Printer) PrintKeywords(kws []types.KeywordScore) {
	var sb strings.Builder
	if len(kws) == 0 {
		sb.WriteString("(no keywords)\n")
	}
	for i, kw := range kws {
		sb.WriteString(fmt.Sprintf("%2d. %-30s %.4f\n", i+1, kw.Term, kw.Weight))
	}
	p.printBox("KEYWORDS", sb.String())
}
