package movement

import (
	"github.com/sirupsen/logrus"
)

// Check is one named predicate over a movement request.
type Check struct {
	Name  string
	Allow func(Request) bool
}

// Verdict is the outcome of running a request through a Pipeline.
type Verdict struct {
	Allowed    bool
	RejectedBy string // Name of the first check that refused, empty if allowed
}

// Pipeline runs checks in order and stops at the first rejection.
type Pipeline struct {
	checks []Check
	log    logrus.FieldLogger
}

// NewPipeline creates a pipeline with the given checks.
func NewPipeline(log logrus.FieldLogger, checks ...Check) *Pipeline {
	return &Pipeline{
		checks: checks,
		log:    log.WithField("component", "movement"),
	}
}

// Add appends a check to the end of the pipeline.
func (p *Pipeline) Add(c Check) {
	p.checks = append(p.checks, c)
}

// Len returns the number of checks.
func (p *Pipeline) Len() int {
	return len(p.checks)
}

// Validate runs req through every check until one refuses it.
func (p *Pipeline) Validate(req Request) Verdict {
	for _, c := range p.checks {
		if c.Allow(req) {
			continue
		}
		p.log.WithFields(logrus.Fields{
			"request":   req.ID,
			"entity":    req.Entity,
			"direction": req.Direction,
			"check":     c.Name,
		}).Debug("Movement rejected")
		return Verdict{Allowed: false, RejectedBy: c.Name}
	}
	return Verdict{Allowed: true}
}
