package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"10 days future", now.Add(10 * 24 * time.Hour), "In 10d"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDateFrom(tt.input, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDueLabel(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	done := domain.Milestone{DueDate: "2024-03-15", Status: domain.MilestoneCompleted}
	assert.Equal(t, "Mar 15, 2024 (3mo ago)", stripANSI(DueLabel(done, now)))

	upcoming := domain.Milestone{DueDate: "2024-06-30", Status: domain.MilestoneInProgress}
	assert.Equal(t, "Jun 30, 2024 (In 2w)", stripANSI(DueLabel(upcoming, now)))

	assert.Equal(t, "no due date", stripANSI(DueLabel(domain.Milestone{}, now)))
	assert.Equal(t, "Q3", stripANSI(DueLabel(domain.Milestone{DueDate: "Q3"}, now)))
}

func TestMilestonePill(t *testing.T) {
	tests := []struct {
		status domain.MilestoneStatus
		want   string
	}{
		{domain.MilestoneCompleted, "✔ Completed"},
		{domain.MilestoneInProgress, "● In Progress"},
		{domain.MilestoneAtRisk, "▲ At Risk"},
		{domain.MilestoneNotStarted, "○ Not Started"},
		{domain.MilestoneStatus("Paused"), "? Paused"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(MilestonePill(tt.status)))
		})
	}
}

func TestHorizonCode(t *testing.T) {
	want := map[domain.Horizon]string{
		domain.HorizonIdea:       "Id",
		domain.HorizonEvaluation: "Ev",
		domain.HorizonEmerging:   "Em",
		domain.HorizonInvesting:  "In",
		domain.HorizonExtracting: "Ex",
		domain.HorizonRetiring:   "Re",
	}
	seen := make(map[string]domain.Horizon)
	for _, h := range domain.AllHorizons() {
		code := stripANSI(HorizonCode(h))
		assert.Equal(t, want[h], code, h)
		if prev, dup := seen[code]; dup {
			t.Errorf("%s and %s share code %q", prev, h, code)
		}
		seen[code] = h
	}
	assert.Len(t, seen, len(domain.AllHorizons()))
	assert.Equal(t, "??", stripANSI(HorizonCode("")))
	assert.Equal(t, "??", stripANSI(HorizonCode("Sunset")))
}

func TestRACILetter(t *testing.T) {
	assert.Equal(t, "R", stripANSI(RACILetter(domain.RACIResponsible)))
	assert.Equal(t, "A", stripANSI(RACILetter(domain.RACIAccountable)))
	assert.Equal(t, "-", stripANSI(RACILetter("")))
}

func TestBadges(t *testing.T) {
	assert.Equal(t, "Investing", stripANSI(HorizonBadge(domain.HorizonInvesting)))
	assert.Equal(t, "Critical", stripANSI(SeverityBadge(domain.SeverityCritical)))
	assert.Equal(t, "Medium probability", stripANSI(ProbabilityLabel(domain.ProbabilityMedium)))
	assert.Equal(t, "Consulted", stripANSI(RACIBadge(domain.RACIConsulted)))
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	got = TruncID("short")
	assert.Contains(t, got, "short")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 risk", Plural(1, "risk"))
	assert.Equal(t, "0 risks", Plural(0, "risk"))
	assert.Equal(t, "3 products", Plural(3, "product"))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}
