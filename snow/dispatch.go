package snow

import (
	"log/slog"

	"github.com/lahkro/snowfall/ui"
)

// Policy is the cost of applying a parameter edit. Ordering matters:
// higher policies subsume lower ones when several params change at once.
type Policy int

const (
	// PolicyImmediate mutates live uniforms or the camera rig in place.
	PolicyImmediate Policy = iota
	// PolicyRebuildFields discards and regenerates both particle fields.
	PolicyRebuildFields
	// PolicyRebuildMaterials rebuilds materials first (size, ratio, alpha
	// test and the attenuation flag are material-bound), then fields.
	PolicyRebuildMaterials
)

// paramPolicies prices every panel edit. The panel reports edits as
// ui.Param values; this table keeps the regeneration contract auditable
// away from the UI.
var paramPolicies = map[ui.Param]Policy{
	ui.ParamBackground: PolicyImmediate,
	ui.ParamFog:        PolicyImmediate,
	ui.ParamFogNear:    PolicyImmediate,
	ui.ParamFogFar:     PolicyImmediate,
	ui.ParamCameraZ:    PolicyImmediate,

	ui.ParamCount:      PolicyRebuildFields,
	ui.ParamRangeX:     PolicyRebuildFields,
	ui.ParamRangeY:     PolicyRebuildFields, // also material-bound via uRangeY, see Plan
	ui.ParamRangeZ:     PolicyRebuildFields,
	ui.ParamVelocityY:  PolicyRebuildFields,
	ui.ParamAmplitudeX: PolicyRebuildFields,
	ui.ParamAngleBias:  PolicyRebuildFields,

	ui.ParamSpriteRatio:     PolicyRebuildMaterials,
	ui.ParamSnowSize:        PolicyRebuildMaterials,
	ui.ParamSpriteSize:      PolicyRebuildMaterials,
	ui.ParamAlphaTest:       PolicyRebuildMaterials,
	ui.ParamSizeAttenuation: PolicyRebuildMaterials,

	ui.ParamRebuild: PolicyRebuildMaterials,
}

// PolicyFor returns the update policy for a parameter.
func PolicyFor(p ui.Param) Policy {
	return paramPolicies[p]
}

// Plan reduces a set of changed parameters to the single strongest policy.
// Returns false when the set is empty.
func Plan(changed []ui.Param) (Policy, bool) {
	if len(changed) == 0 {
		return PolicyImmediate, false
	}
	strongest := PolicyImmediate
	for _, p := range changed {
		if pol := paramPolicies[p]; pol > strongest {
			strongest = pol
		}
	}
	// uRangeY is baked into material uniforms, so a Y-range edit escalates.
	if strongest == PolicyRebuildFields {
		for _, p := range changed {
			if p == ui.ParamRangeY {
				strongest = PolicyRebuildMaterials
				break
			}
		}
	}
	return strongest, true
}

// Apply dispatches a batch of parameter edits from the control panel.
// The panel has already written the new values into the config; this
// decides how much of the scene must react.
func (s *Scene) Apply(changed []ui.Param) {
	policy, ok := Plan(changed)
	if !ok {
		return
	}

	s.cfg.RefreshDerived()

	s.applyImmediate(changed)

	switch policy {
	case PolicyRebuildFields:
		s.rebuildFields()
	case PolicyRebuildMaterials:
		if err := s.rebuildMaterials(); err != nil {
			// Shader sources are fixed, so this only fires if the driver
			// rejects a recompile; keep the old visuals rather than crash.
			slog.Error("material rebuild failed", "error", err)
		}
	}
}

// applyImmediate mutates live scene objects for zero-cost edits.
func (s *Scene) applyImmediate(changed []ui.Param) {
	for _, p := range changed {
		switch p {
		case ui.ParamBackground, ui.ParamFog, ui.ParamFogNear, ui.ParamFogFar:
			fog := s.fog()
			s.snowMat.SetFog(fog)
			s.spriteMat.SetFog(fog)
		case ui.ParamCameraZ:
			s.rig.SetZ(float32(s.cfg.Camera.Z))
		}
	}
}
