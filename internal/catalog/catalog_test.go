package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/resumescan/internal/flow"
)

func TestDefault_EmbeddedCatalog(t *testing.T) {
	t.Parallel()
	c := Default()

	require.Len(t, c.Jobs, 3)
	assert.Equal(t, "TechCorp Inc.", c.Jobs[0].Company)
	assert.Equal(t, 92, c.Jobs[0].MatchScore)
	assert.Equal(t, []string{"React", "TypeScript", "Node.js", "AWS"}, c.Jobs[0].Requirements)
	assert.Equal(t, "San Francisco, CA", c.DefaultLocation)
	assert.Len(t, c.Skills.Matching, 5)
	assert.Len(t, c.Skills.Improving, 3)
	assert.Len(t, c.Skills.Missing, 4)
	require.Len(t, c.Categories, 4)
	assert.Equal(t, Category{Name: "UI/UX Development", Match: 75, Jobs: 43}, c.Categories[3])
}

func TestBuildReport(t *testing.T) {
	t.Parallel()
	s := flow.Session{
		SelectedFile: &flow.FileRef{Name: "resume.pdf"},
		Location:     "Austin, TX",
	}

	r := Default().BuildReport(s)

	assert.Equal(t, "resume.pdf", r.FileName)
	assert.Equal(t, "Austin, TX", r.Location)
	for _, j := range r.Jobs {
		assert.Equal(t, "Austin, TX", j.Location)
	}
	// React is a matching skill, AWS is not.
	assert.Equal(t, Requirement{Name: "React", Matched: true}, r.Jobs[0].Requirements[0])
	assert.Equal(t, Requirement{Name: "AWS", Matched: false}, r.Jobs[0].Requirements[3])
	// The catalog itself is not mutated by building a report.
	assert.Empty(t, Default().Jobs[0].Location)
}

func TestBuildReport_DefaultLocation(t *testing.T) {
	t.Parallel()
	r := Default().BuildReport(flow.Session{})
	assert.Equal(t, "San Francisco, CA", r.Location)
	assert.Empty(t, r.FileName)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("jobs: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("default_location: Nowhere\n"))
	assert.ErrorContains(t, err, "no jobs")
}
