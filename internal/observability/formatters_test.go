package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleReport() (*types.MatchReport, []types.JobPosting) {
	jobs := []types.JobPosting{
		{ID: 1, Title: "Tuyển lập trình viên Python"},
		{ID: 2, Title: "Kế toán trưởng"},
	}
	report := &types.MatchReport{
		RunID:      uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		HasProfile: true,
		Results: map[types.JobID]types.MatchResult{
			1: {
				MatchingScore: 55, SkillScore: 66, TextScore: 38,
				MatchedSkills:     []types.Skill{{ID: 1, Name: "Python"}, {ID: 2, Name: "SQL"}},
				MatchedSkillCount: 2, TotalRequiredSkills: 3,
			},
			2: {TotalRequiredSkills: 1},
		},
		Top: []types.JobScore{{JobID: 1, MatchingScore: 55, SkillScore: 66, TextScore: 38, HasProfile: true}},
	}
	return report, jobs
}

func TestPrintMatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report, jobs := sampleReport()
	p.PrintMatchReport(report, jobs)
	output := buf.String()

	assert.Contains(t, output, "MATCH REPORT")
	assert.Contains(t, output, "550e8400-e29b-41d4-a716-446655440000")
	assert.Contains(t, output, " 55%  #1 Tuyển lập trình viên Python")
	assert.Contains(t, output, "  0%  #2 Kế toán trưởng")
	assert.Contains(t, output, "TOP 1 MATCHES")
	assert.Contains(t, output, "skills 2/3: Python, SQL")
	assert.Less(t, strings.Index(output, "#1"), strings.Index(output, "#2"))
}

func TestPrintMatchReport_NoProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report, jobs := sampleReport()
	report.HasProfile = false
	report.Top = nil
	p.PrintMatchReport(report, jobs)

	assert.Contains(t, buf.String(), "no skills or categories declared")
	assert.NotContains(t, buf.String(), "TOP")
}

func TestPrintMatchReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchReport(nil, nil)
	assert.Empty(t, buf.String())
}

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywords([]types.KeywordScore{{Term: "python", Weight: 0.5774}, {Term: "django", Weight: 0.2887}})
	output := buf.String()

	assert.Contains(t, output, "KEYWORDS")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "0.5774")
}

func TestPrintKeywords_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywords(nil)
	assert.Contains(t, buf.String(), "(no keywords)")
}

func TestPad_RuneAware(t *testing.T) {
	assert.Equal(t, "kế  ", pad("kế", 4))
	assert.Equal(t, "lập tr...", pad("lập trình viên", 9))
}

func TestSkillList_Truncates(t *testing.T) {
	var skills []types.Skill
	for i := 0; i < 7; i++ {
		skills = append(skills, types.Skill{ID: types.SkillID(i + 1), Name: string(rune('A' + i))})
	}
	assert.Equal(t, ": A, B, C, D, E ... and 2 more", skillList(skills))
	assert.Empty(t, skillList(nil))
}
