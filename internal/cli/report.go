package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/resumescan/internal/catalog"
	"github.com/agbru/resumescan/internal/flow"
	"github.com/agbru/resumescan/internal/format"
	"github.com/agbru/resumescan/internal/ui"
)

// DisplayFileSummary prints the accepted file with its size and the
// best-effort document details.
func DisplayFileSummary(file flow.FileRef, summary string, out io.Writer) {
	fmt.Fprintf(out, "File:     %s%s%s (%s, %s)\n",
		ui.ColorBold(), file.Name, ui.ColorReset(), format.FormatBytes(file.Size), summary)
}

// DisplayReport prints both result tabs one after the other.
func DisplayReport(r catalog.Report, out io.Writer) {
	fmt.Fprintf(out, "\n%s%sAnalysis Complete%s\n", ui.ColorBold(), ui.ColorPrimary(), ui.ColorReset())
	fmt.Fprintf(out, "Analyzed: %s\n", r.FileName)

	displaySkills(r, out)
	displayJobs(r, out)
}

func displaySkills(r catalog.Report, out io.Writer) {
	fmt.Fprintf(out, "\n%s── Skills Analysis ──%s\n\n", ui.ColorBold(), ui.ColorReset())

	width := 0
	for _, c := range r.Categories {
		width = max(width, len(c.Name))
	}
	fmt.Fprintln(out, "Job Categories")
	for _, c := range r.Categories {
		fmt.Fprintf(out, "  %-*s %s%s%s %3d%%  %s%d jobs%s\n",
			width, c.Name,
			ui.ColorPrimary(), progressBar(float64(c.Match)/100, CategoryBarWidth), ui.ColorReset(),
			c.Match, ui.ColorSecondary(), c.Jobs, ui.ColorReset())
	}

	fmt.Fprintln(out)
	buckets := []struct {
		label string
		color string
		names []string
	}{
		{"Matching Skills", ui.ColorSuccess(), r.Skills.Matching},
		{"Skills to Improve", ui.ColorWarning(), r.Skills.Improving},
		{"Missing Skills", ui.ColorError(), r.Skills.Missing},
	}
	for _, b := range buckets {
		fmt.Fprintf(out, "  %-18s %s\n", b.label+":", ui.Paint(b.color, strings.Join(b.names, ", ")))
	}
}

func displayJobs(r catalog.Report, out io.Writer) {
	fmt.Fprintf(out, "\n%s── Job Matches ──%s\n\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Jobs in %s\n", r.Location)

	for _, j := range r.Jobs {
		fmt.Fprintf(out, "\n  %s%s%s  %s%d%% match%s\n",
			ui.ColorBold(), j.Title, ui.ColorReset(), ui.ColorSuccess(), j.MatchScore, ui.ColorReset())
		fmt.Fprintf(out, "  %s | %s | %s | %s\n", j.Company, j.Location, j.Salary, j.Type)
		fmt.Fprintf(out, "  %s\n", j.Description)

		reqs := make([]string, 0, len(j.Requirements))
		for _, req := range j.Requirements {
			if req.Matched {
				reqs = append(reqs, ui.Paint(ui.ColorSuccess(), req.Name+" ✓"))
			} else {
				reqs = append(reqs, req.Name)
			}
		}
		fmt.Fprintf(out, "  Skills: %s\n", strings.Join(reqs, ", "))
		fmt.Fprintf(out, "  %sPosted %s%s\n", ui.ColorSecondary(), j.Posted, ui.ColorReset())
	}
}
