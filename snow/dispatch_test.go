package snow

import (
	"testing"

	"github.com/lahkro/snowfall/ui"
)

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		name  string
		param ui.Param
		want  Policy
	}{
		{"background is immediate", ui.ParamBackground, PolicyImmediate},
		{"fog toggle is immediate", ui.ParamFog, PolicyImmediate},
		{"fog near is immediate", ui.ParamFogNear, PolicyImmediate},
		{"camera z is immediate", ui.ParamCameraZ, PolicyImmediate},
		{"count rebuilds fields", ui.ParamCount, PolicyRebuildFields},
		{"range x rebuilds fields", ui.ParamRangeX, PolicyRebuildFields},
		{"velocity rebuilds fields", ui.ParamVelocityY, PolicyRebuildFields},
		{"angle bias rebuilds fields", ui.ParamAngleBias, PolicyRebuildFields},
		{"sprite ratio rebuilds materials", ui.ParamSpriteRatio, PolicyRebuildMaterials},
		{"snow size rebuilds materials", ui.ParamSnowSize, PolicyRebuildMaterials},
		{"alpha test rebuilds materials", ui.ParamAlphaTest, PolicyRebuildMaterials},
		{"attenuation rebuilds materials", ui.ParamSizeAttenuation, PolicyRebuildMaterials},
		{"explicit rebuild recreates everything", ui.ParamRebuild, PolicyRebuildMaterials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolicyFor(tt.param); got != tt.want {
				t.Errorf("PolicyFor(%d) = %d, want %d", tt.param, got, tt.want)
			}
		})
	}
}

func TestPlan_EmptySet(t *testing.T) {
	if _, ok := Plan(nil); ok {
		t.Error("expected Plan(nil) to report no work")
	}
	if _, ok := Plan([]ui.Param{}); ok {
		t.Error("expected Plan of empty slice to report no work")
	}
}

func TestPlan_StrongestWins(t *testing.T) {
	tests := []struct {
		name    string
		changed []ui.Param
		want    Policy
	}{
		{"single immediate", []ui.Param{ui.ParamFogNear}, PolicyImmediate},
		{"single field rebuild", []ui.Param{ui.ParamCount}, PolicyRebuildFields},
		{"immediate plus field rebuild", []ui.Param{ui.ParamBackground, ui.ParamCount}, PolicyRebuildFields},
		{"field plus material rebuild", []ui.Param{ui.ParamCount, ui.ParamSnowSize}, PolicyRebuildMaterials},
		{"everything", []ui.Param{ui.ParamFog, ui.ParamRangeX, ui.ParamAlphaTest}, PolicyRebuildMaterials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Plan(tt.changed)
			if !ok {
				t.Fatal("expected Plan to report work")
			}
			if got != tt.want {
				t.Errorf("Plan(%v) = %d, want %d", tt.changed, got, tt.want)
			}
		})
	}
}

func TestPlan_RangeYEscalatesToMaterials(t *testing.T) {
	// uRangeY lives in the material uniforms, so the field-level policy
	// is not enough for a Y-range edit.
	got, ok := Plan([]ui.Param{ui.ParamRangeY})
	if !ok {
		t.Fatal("expected Plan to report work")
	}
	if got != PolicyRebuildMaterials {
		t.Errorf("Plan(RangeY) = %d, want PolicyRebuildMaterials", got)
	}

	got, _ = Plan([]ui.Param{ui.ParamRangeX, ui.ParamRangeY})
	if got != PolicyRebuildMaterials {
		t.Errorf("Plan(RangeX, RangeY) = %d, want PolicyRebuildMaterials", got)
	}
}
