// Package hostconfig loads the host-supplied implicit parameters and
// field metadata: the fixed list of
// implicit contract/component parameters every component gets prepended,
// and map-key nesting depth for fields not declared locally in the
// module under analysis.
package hostconfig

import (
	"embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/contractshard/shardc/internal/cast"
	oerrors "github.com/contractshard/shardc/internal/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

// HostConfig is the decoded, schema-validated host configuration.
type HostConfig struct {
	ImplicitContractParams  []cast.ContractParam `json:"implicitContractParams"`
	ImplicitComponentParams []cast.ContractParam `json:"implicitComponentParams"`
	FieldMapDepth           map[string]int       `json:"fieldMapDepth"`
}

// Default returns the host configuration this analyzer assumes when no
// CUE document is supplied: a single implicit component parameter,
// "_sender", and no implicit contract parameters
// or overridden field depths.
func Default() *HostConfig {
	return &HostConfig{
		ImplicitComponentParams: []cast.ContractParam{
			{Name: "_sender", Type: cast.Type{Name: "ByStr20"}},
		},
		FieldMapDepth: map[string]int{},
	}
}

// Load reads and schema-validates a host configuration document from the
// CUE package rooted at dir.
func Load(dir string) (*HostConfig, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded host-config schema: %w", err)
	}
	schema := ctx.CompileBytes(schemaData)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling host-config schema: %w", schema.Err())
	}

	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, oerrors.NewNotFoundError("no CUE instances found", dir,
			"ensure a host configuration .cue file exists in this directory")
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, oerrors.NewValidationError(inst.Err.Error(), dir, "", "check the host configuration's CUE syntax")
	}

	value := ctx.BuildInstance(inst)
	if value.Err() != nil {
		return nil, oerrors.NewValidationError(value.Err().Error(), dir, "", "check the host configuration's CUE syntax")
	}

	unified := schema.LookupPath(cue.ParsePath("#HostConfig")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), dir, "", "host configuration does not satisfy #HostConfig")
	}

	var hc HostConfig
	if err := unified.Decode(&hc); err != nil {
		return nil, fmt.Errorf("decoding host configuration: %w", err)
	}
	if hc.FieldMapDepth == nil {
		hc.FieldMapDepth = map[string]int{}
	}
	return &hc, nil
}

// MapKeyDepth resolves a field's map-key nesting depth: the module's own
// declaration if present, otherwise the host-reported depth, otherwise 0.
func (hc *HostConfig) MapKeyDepth(fieldName string, localDepth int, localKnown bool) int {
	if localKnown {
		return localDepth
	}
	if hc == nil {
		return 0
	}
	return hc.FieldMapDepth[fieldName]
}
