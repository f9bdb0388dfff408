// Package ui provides the in-scene settings panel. Controls are defined
// through descriptors rather than hard-coded layouts, so the panel stays
// in step with the parameter set it edits.
package ui

// Param identifies one live-tunable scene parameter. The panel reports
// edits as Param values; the scene decides what each edit costs.
type Param int

const (
	ParamBackground Param = iota
	ParamFog
	ParamFogNear
	ParamFogFar
	ParamCameraZ
	ParamCount
	ParamRangeX
	ParamRangeY
	ParamRangeZ
	ParamVelocityY
	ParamAmplitudeX
	ParamAngleBias
	ParamSpriteRatio
	ParamSnowSize
	ParamSpriteSize
	ParamAlphaTest
	ParamSizeAttenuation

	// ParamRebuild is not a config field: it is the explicit rebuild
	// request from the panel button, forcing a full recreate.
	ParamRebuild
)
