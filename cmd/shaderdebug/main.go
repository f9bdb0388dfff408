// Shader debug tool - renders one frame of the snow point shaders to a
// PNG file for inspection, without running the full app.
//
// Usage: go run ./cmd/shaderdebug -out debug.png -attenuation=false
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lahkro/snowfall/camera"
	"github.com/lahkro/snowfall/config"
	"github.com/lahkro/snowfall/particles"
	"github.com/lahkro/snowfall/renderer"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "debug.png", "Output PNG path")
	width := flag.Int("width", 512, "Render width")
	height := flag.Int("height", 512, "Render height")
	count := flag.Int("count", 500, "Particle count")
	timeVal := flag.Float64("time", 0, "Value for the time uniform")
	attenuation := flag.Bool("attenuation", true, "Use the size-attenuated shader variant")
	texture := flag.String("texture", "", "Point texture path (empty = white pixel)")
	dump := flag.Bool("dump", false, "Print generated shader sources and exit")
	flag.Parse()

	if *dump {
		fmt.Println("---- vertex ----")
		fmt.Println(renderer.VertexSource(*attenuation))
		fmt.Println("---- fragment ----")
		fmt.Println(renderer.FragmentSource())
		return
	}

	// Scene parameters come from the same config the app uses.
	config.MustInit(*configPath)
	cfg := config.Cfg()
	rgb := cfg.Derived.BackgroundRGB

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Shader Debug")
	defer rl.CloseWindow()

	mat, err := renderer.NewMaterial(renderer.MaterialParams{
		Size:            float32(cfg.Snow.SnowSize),
		RangeY:          float32(cfg.Snow.RangeY),
		AlphaTest:       float32(cfg.Snow.AlphaTest),
		SizeAttenuation: *attenuation,
		TexturePath:     *texture,
		Fog: renderer.Fog{
			Enabled: cfg.Scene.Fog,
			Color:   rgb,
			Near:    float32(cfg.Scene.FogNear),
			Far:     float32(cfg.Scene.FogFar),
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build material: %v\n", err)
		os.Exit(1)
	}
	defer mat.Unload()
	mat.SetTime(float32(*timeVal))

	rng := rand.New(rand.NewSource(1))
	batch := particles.Generate(*count, particles.Params{
		RangeX:     float32(cfg.Snow.RangeX),
		RangeY:     float32(cfg.Snow.RangeY),
		RangeZ:     float32(cfg.Snow.RangeZ),
		VelocityY:  float32(cfg.Snow.VelocityY),
		AmplitudeX: float32(cfg.Snow.AmplitudeX),
		AngleBias:  float32(cfg.Snow.AngleBias),
	}, rng, float32(*height))

	field := renderer.NewField(batch, mat)
	defer field.Unload()

	rig := camera.New(float32(*width), float32(*height),
		float32(cfg.Camera.Z), float32(cfg.Camera.FovY))

	// Render one frame to a texture
	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.NewColor(rgb[0], rgb[1], rgb[2], 255))
	rl.BeginMode3D(rig.Camera)
	field.Draw()
	rl.EndMode3D()
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Shader rendered to: %s (%dx%d, %d particles)\n", *outPath, *width, *height, field.Count())
	} else {
		fmt.Fprintln(os.Stderr, "Failed to export image")
		os.Exit(1)
	}
}
