package flow_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/resumescan/internal/flow"
)

// applyOp maps an arbitrary integer to one controller operation so that
// random sequences explore legal and illegal orderings alike.
func applyOp(c *flow.Controller, op int) {
	switch op % 7 {
	case 0:
		_ = c.CompleteIntro()
	case 1:
		_ = c.SubmitFile(flow.FileRef{Name: "resume.pdf", ContentType: "application/pdf"})
	case 2:
		_ = c.SubmitFile(flow.FileRef{Name: "cv.docx"})
	case 3:
		_ = c.AdvanceAfterUpload()
	case 4:
		_ = c.SubmitLocation("Austin, TX")
	case 5:
		_ = c.SubmitLocation("New York, NY")
	case 6:
		_ = c.CompleteAnalysis()
	}
}

// TestStageOrdering_PropertyBased verifies that for any sequence of
// operations the observed stages never decrease, every transition moves
// exactly one step forward, and session fields are written at most once.
func TestStageOrdering_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("stages form a non-decreasing sequence", prop.ForAll(
		func(ops []int) bool {
			c := flow.NewController()
			prev := c.Stage()
			for _, op := range ops {
				applyOp(c, op)
				cur := c.Stage()
				if cur < prev || cur > prev+1 {
					return false
				}
				prev = cur
			}
			for _, tr := range c.History() {
				if tr.To != tr.From+1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.Property("file and location are written once and ordered before their stages", prop.ForAll(
		func(ops []int) bool {
			c := flow.NewController()
			var file, location string
			for _, op := range ops {
				applyOp(c, op)
				s := c.Session()
				if file != "" && s.FileName() != file {
					return false
				}
				if location != "" && s.Location != location {
					return false
				}
				file, location = s.FileName(), s.Location
				if c.Stage() >= flow.StageLocation && file == "" {
					return false
				}
				if c.Stage() >= flow.StageAnalysis && location == "" {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 6)),
	))

	properties.TestingRun(t)
}
