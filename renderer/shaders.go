package renderer

import (
	"fmt"
	"sort"
	"strings"
)

// The two shading programs are fixed text consumed by raylib's compiler.
// Per-particle attributes ride the standard vertex channels:
//   vertexPosition  - rest position inside the spatial range
//   vertexTexCoord  - x: shared scale (viewport height), y: phase angle
//   vertexNormal    - x: fall velocity, y: sway amplitude

const snowVertexShader = `
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matView;

uniform float uTime;
uniform float uSize;
uniform float uRangeY;

out float fragFogDepth;

void main()
{
    float scale      = vertexTexCoord.x;
    float angle      = vertexTexCoord.y;
    float velocityY  = vertexNormal.x;
    float amplitudeX = vertexNormal.y;

    vec3 pos = vertexPosition;

    // Recycle the fall over the Y range: particles leaving the bottom
    // reappear at the top without any CPU involvement.
    pos.y = mod(pos.y + uTime*velocityY + uRangeY*0.5, uRangeY) - uRangeY*0.5;

    // Horizontal sway driven by the per-particle phase angle.
    pos.x += sin(uTime*angle) * cos(uTime*angle*0.8) * amplitudeX;

    vec4 mvPos = matView * matModel * vec4(pos, 1.0);
    fragFogDepth = -mvPos.z;

#if defined(USE_SIZEATTENUATION)
    gl_PointSize = uSize * (scale / max(fragFogDepth, 1.0));
#else
    gl_PointSize = uSize;
#endif

    gl_Position = mvp * vec4(pos, 1.0);
}
`

const snowFragmentShader = `
in float fragFogDepth;

uniform sampler2D texture0;
uniform float uAlphaTest;
uniform float uFogEnabled;
uniform vec3 uFogColor;
uniform float uFogNear;
uniform float uFogFar;

out vec4 finalColor;

void main()
{
    vec4 texel = texture(texture0, gl_PointCoord);
    if (texel.a < uAlphaTest) discard;

    vec4 color = texel;
    if (uFogEnabled > 0.5) {
        float f = smoothstep(uFogNear, uFogFar, fragFogDepth);
        color.rgb = mix(color.rgb, uFogColor, f);
    }
    finalColor = color;
}
`

// BuildShaderSource prepends the GLSL version header and the compile-time
// feature defines to a raw program. Defines are emitted in sorted order so
// identical inputs produce identical text.
func BuildShaderSource(source string, combos map[string]int) string {
	var sb strings.Builder
	sb.WriteString("#version 330\n")

	keys := make([]string, 0, len(combos))
	for k := range combos {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("#define %s %d\n", k, combos[k]))
	}

	sb.WriteString(source)
	return sb.String()
}

// snowCombos returns the compile-time flags for the snow programs.
func snowCombos(sizeAttenuation bool) map[string]int {
	combos := map[string]int{}
	if sizeAttenuation {
		combos["USE_SIZEATTENUATION"] = 1
	}
	return combos
}

// VertexSource and FragmentSource return the preprocessed program pair.
// Exposed for the shaderdebug tool.
func VertexSource(sizeAttenuation bool) string {
	return BuildShaderSource(snowVertexShader, snowCombos(sizeAttenuation))
}

// FragmentSource returns the preprocessed fragment program.
func FragmentSource() string {
	return BuildShaderSource(snowFragmentShader, nil)
}
