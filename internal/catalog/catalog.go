// Package catalog holds the fixed mock results shown at the end of the flow
// and assembles them into a report for a session.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/agbru/resumescan/internal/flow"
)

//go:embed catalog.yaml
var embedded []byte

// Job is one mock posting.
type Job struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Location     string   `yaml:"location"`
	Salary       string   `yaml:"salary"`
	Type         string   `yaml:"type"`
	Description  string   `yaml:"description"`
	Requirements []string `yaml:"requirements"`
	Posted       string   `yaml:"posted"`
	MatchScore   int      `yaml:"match_score"`
}

// Skills are the three fixed skill buckets.
type Skills struct {
	Matching  []string `yaml:"matching"`
	Improving []string `yaml:"improving"`
	Missing   []string `yaml:"missing"`
}

// Category is a job category with a match percentage and an opening count.
type Category struct {
	Name  string `yaml:"name"`
	Match int    `yaml:"match"`
	Jobs  int    `yaml:"jobs"`
}

// Catalog is the parsed mock data.
type Catalog struct {
	DefaultLocation string     `yaml:"default_location"`
	Jobs            []Job      `yaml:"jobs"`
	Skills          Skills     `yaml:"skills"`
	Categories      []Category `yaml:"categories"`
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Jobs) == 0 {
		return nil, fmt.Errorf("parse catalog: no jobs defined")
	}
	return &c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. The embedded document is part of
// the binary, so a parse failure is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Requirement is a job requirement annotated with whether it is one of the
// matching skills.
type Requirement struct {
	Name    string
	Matched bool
}

// JobMatch is a job as displayed in a report.
type JobMatch struct {
	Job
	Requirements []Requirement
}

// Report is everything the Results stage displays.
type Report struct {
	FileName   string
	Location   string
	Jobs       []JobMatch
	Skills     Skills
	Categories []Category
}

// BuildReport fills the catalog with the session's location (falling back
// to the default location) and file name.
func (c *Catalog) BuildReport(s flow.Session) Report {
	location := s.Location
	if location == "" {
		location = c.DefaultLocation
	}
	r := Report{
		FileName:   s.FileName(),
		Location:   location,
		Skills:     c.Skills,
		Categories: slices.Clone(c.Categories),
	}
	for _, j := range c.Jobs {
		jm := JobMatch{Job: j}
		jm.Location = location
		for _, req := range j.Requirements {
			jm.Requirements = append(jm.Requirements, Requirement{
				Name:    req,
				Matched: slices.Contains(c.Skills.Matching, req),
			})
		}
		r.Jobs = append(r.Jobs, jm)
	}
	return r
}
