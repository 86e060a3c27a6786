package fadeline

// OffsetUniform is the line program's horizontal translation uniform.
const OffsetUniform = "uOffset"

// RectangleProgram draws every covered pixel opaque white.
var RectangleProgram = ProgramSource{
	Name: "rectangle",
	Vertex: `#version 310 es
layout(location = 0) in vec4 aPosition;
void main() {
    gl_Position = aPosition;
}
`,
	Fragment: `#version 310 es
precision mediump float;
out vec4 fragColor;
void main() {
    fragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`,
}

// LineProgram translates the line horizontally by uOffset and fades alpha
// from 1 at clip-space x = -1 to 0 at x = +1.
var LineProgram = ProgramSource{
	Name: "line",
	Vertex: `#version 310 es
layout(location = 0) in vec4 aPosition;
uniform float uOffset;
out vec2 vPosition;
void main() {
    gl_Position = aPosition + vec4(uOffset, 0.0, 0.0, 0.0);
    vPosition = gl_Position.xy;
}
`,
	Fragment: `#version 310 es
precision mediump float;
in vec2 vPosition;
out vec4 fragColor;
void main() {
    float alpha = 1.0 - (vPosition.x + 1.0) / 2.0;
    fragColor = vec4(1.0, 1.0, 1.0, alpha);
}
`,
}
