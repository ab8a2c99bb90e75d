package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/contractshard/shardc/internal/digest"
)

// transitionYAML is the plain, marshalable projection of a
// digest.TransitionResult — the shape `shardc diff` compares and `shardc
// analyze --output json` prints, since env.ComponentSummary and
// constraint.Constraint carry unexported map internals not suited to
// direct marshaling.
type transitionYAML struct {
	Name        string           `yaml:"name" json:"name"`
	Operations  []string         `yaml:"operations" json:"operations"`
	Constraints []constraintYAML `yaml:"constraints" json:"constraints"`
}

type constraintYAML struct {
	Kind  string `yaml:"kind" json:"kind"`
	Field string `yaml:"field,omitempty" json:"field,omitempty"`
	PCMID string `yaml:"pcm,omitempty" json:"pcm,omitempty"`
	Param int    `yaml:"param,omitempty" json:"param,omitempty"`
}

// ToYAML renders an analysis run's transitions into the canonical YAML
// shape DiffYAML compares between two runs.
func ToYAML(results []digest.TransitionResult) ([]byte, error) {
	out := projectTransitions(results)
	return yaml.Marshal(out)
}

// ToJSON renders an analysis run's transitions as JSON, for `shardc
// analyze --output json`.
func ToJSON(results []digest.TransitionResult) ([]byte, error) {
	out := projectTransitions(results)
	return json.MarshalIndent(out, "", "  ")
}

func projectTransitions(results []digest.TransitionResult) []transitionYAML {
	sorted := make([]digest.TransitionResult, len(results))
	copy(sorted, results)
	digest.SortTransitions(sorted)

	out := make([]transitionYAML, len(sorted))
	for i, r := range sorted {
		ty := transitionYAML{Name: r.Name}
		for _, op := range r.Summary.Operations() {
			ty.Operations = append(ty.Operations, op.Key())
		}
		for _, c := range r.Constraints {
			ty.Constraints = append(ty.Constraints, constraintYAML{
				Kind:  c.Kind.String(),
				Field: c.Field.String(),
				PCMID: c.PCMID,
				Param: c.ProcParamIdx,
			})
		}
		out[i] = ty
	}
	return out
}
