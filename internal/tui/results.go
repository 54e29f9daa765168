package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/resumescan/internal/catalog"
)

// Result tabs.
const (
	tabSkills = iota
	tabJobs
)

var tabNames = [...]string{"Skills Analysis", "Job Matches"}

// resultsModel is the Results screen: two tabs in a scrollable viewport.
type resultsModel struct {
	report   catalog.Report
	tab      int
	viewport viewport.Model
}

func newResultsModel() resultsModel {
	return resultsModel{viewport: viewport.New(60, 12)}
}

// setReport loads the report and shows the first tab.
func (r *resultsModel) setReport(rep catalog.Report) {
	r.report = rep
	r.tab = tabSkills
	r.refresh()
}

func (r *resultsModel) toggleTab() {
	r.tab = (r.tab + 1) % len(tabNames)
	r.refresh()
}

func (r *resultsModel) setSize(w, h int) {
	r.viewport.Width = max(w, 20)
	r.viewport.Height = max(h, 4)
	r.refresh()
}

func (r *resultsModel) refresh() {
	if r.tab == tabJobs {
		r.viewport.SetContent(renderJobs(r.report))
	} else {
		r.viewport.SetContent(renderSkills(r.report, r.viewport.Width))
	}
	r.viewport.GotoTop()
}

func (r resultsModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Analysis Complete"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Here's what AI discovered about your profile"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Analyzed: ") + r.report.FileName)
	b.WriteString("\n\n")

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == r.tab {
			tabs[i] = tabActiveStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(r.viewport.View())
	return b.String()
}

func renderSkills(r catalog.Report, width int) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("Top Job Categories"))
	b.WriteString("\n")

	nameWidth := 0
	for _, c := range r.Categories {
		nameWidth = max(nameWidth, lipgloss.Width(c.Name))
	}
	bar := newProgressBar()
	bar.Width = max(min(width-nameWidth-20, 30), 10)
	for _, c := range r.Categories {
		b.WriteString(fmt.Sprintf("  %-*s %s %3d%%  %s\n",
			nameWidth, c.Name, bar.ViewAs(float64(c.Match)/100), c.Match,
			dimStyle.Render(fmt.Sprintf("%d jobs", c.Jobs))))
	}

	buckets := []struct {
		label string
		style lipgloss.Style
		names []string
	}{
		{"Strong Skills", successStyle, r.Skills.Matching},
		{"Skills to Enhance", warningStyle, r.Skills.Improving},
		{"Recommended Skills", errorStyle, r.Skills.Missing},
	}
	for _, bk := range buckets {
		b.WriteString("\n")
		b.WriteString(bk.style.Render(bk.label))
		b.WriteString("\n  ")
		b.WriteString(strings.Join(bk.names, " · "))
		b.WriteString("\n")
	}
	return b.String()
}

func renderJobs(r catalog.Report) string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("Jobs in " + r.Location))
	b.WriteString("\n")
	for _, j := range r.Jobs {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(j.Title))
		b.WriteString("  " + successStyle.Render(fmt.Sprintf("%d%% match", j.MatchScore)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s | %s | %s | %s\n", j.Company, j.Location, j.Salary, j.Type))
		b.WriteString("  " + j.Description + "\n")

		reqs := make([]string, len(j.Requirements))
		for i, req := range j.Requirements {
			if req.Matched {
				reqs[i] = chipMatchStyle.Render(req.Name + " ✓")
			} else {
				reqs[i] = chipStyle.Render(req.Name)
			}
		}
		b.WriteString("  Required Skills:" + strings.Join(reqs, ""))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Posted " + j.Posted))
		b.WriteString("\n")
	}
	return b.String()
}
