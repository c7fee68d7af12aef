package manifest

import (
	"github.com/thoreinstein/agentdocs/internal/config"
	"github.com/thoreinstein/agentdocs/internal/errors"
)

// Injection is one table placed into the document.
type Injection struct {
	// Label names the table in errors ("skills").
	Label string
	// Region is the marker pair the table ends up inside.
	Region Region
	// Strategies are tried in order.
	Strategies []Strategy
}

// Step pairs an injection with the rendered table it places.
type Step struct {
	Injection Injection
	Table     string
}

// SkillsInjection replaces the skills region, falling back to the
// placeholder left in a fresh manifest.
func SkillsInjection(cfg *config.Config) Injection {
	r := Region{Start: cfg.Skills.StartMarker, End: cfg.Skills.EndMarker}
	return Injection{
		Label:  "skills",
		Region: r,
		Strategies: []Strategy{
			MarkerPair{Region: r},
			Placeholder{Region: r, Literal: cfg.Skills.Placeholder},
		},
	}
}

// AgentsInjection replaces the agents region, falling back to inserting a
// new agents section before the configured heading.
func AgentsInjection(cfg *config.Config) Injection {
	r := Region{Start: cfg.Agents.StartMarker, End: cfg.Agents.EndMarker}
	return Injection{
		Label:  "agents",
		Region: r,
		Strategies: []Strategy{
			MarkerPair{Region: r},
			SectionAnchor{
				Region: r,
				Anchor: cfg.Agents.Anchor,
				Title:  cfg.Agents.Title,
				Intro:  cfg.Agents.Intro,
			},
		},
	}
}

// Apply runs the steps in order against doc. On any failure it returns the
// error and an empty string; callers must not write anything in that case.
func Apply(doc string, steps ...Step) (string, error) {
	out := doc
	for _, st := range steps {
		next, err := Inject(out, st.Table, st.Injection.Strategies...)
		if err != nil {
			return "", errors.Wrapf(err, "placing %s table", st.Injection.Label)
		}
		out = next
	}
	return out, nil
}
