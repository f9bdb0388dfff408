// Package camera provides the perspective rig for the snowfall scene.
package camera

import rl "github.com/gen2brain/raylib-go/raylib"

// Rig wraps the raylib perspective camera together with the viewport
// state the particle shaders depend on. The point-scale factor equals the
// viewport height: point sprites attenuated by view depth use it so their
// on-screen size tracks the window.
type Rig struct {
	Camera rl.Camera3D

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32
}

// New creates a rig looking down the -Z axis at the particle volume center.
func New(viewportW, viewportH, z, fovY float32) *Rig {
	return &Rig{
		Camera: rl.Camera3D{
			Position:   rl.Vector3{X: 0, Y: 0, Z: z},
			Target:     rl.Vector3{X: 0, Y: 0, Z: 0},
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       fovY,
			Projection: rl.CameraPerspective,
		},
		ViewportW: viewportW,
		ViewportH: viewportH,
	}
}

// Resize updates viewport dimensions. The projection aspect follows the
// framebuffer automatically on the next BeginMode3D; only the stored
// dimensions (and therefore PointScale) change here.
func (r *Rig) Resize(viewportW, viewportH float32) {
	if viewportW == r.ViewportW && viewportH == r.ViewportH {
		return
	}
	r.ViewportW = viewportW
	r.ViewportH = viewportH
}

// SetZ moves the camera along its viewing axis.
func (r *Rig) SetZ(z float32) {
	r.Camera.Position.Z = z
}

// Aspect returns the current viewport aspect ratio.
func (r *Rig) Aspect() float32 {
	if r.ViewportH == 0 {
		return 1
	}
	return r.ViewportW / r.ViewportH
}

// PointScale returns the shared per-particle scale value for the current
// viewport. Every slot of a batch's scale buffer holds this value.
func (r *Rig) PointScale() float32 {
	return r.ViewportH
}
