package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shapes"
)

// Byte strides of the two vertex streams.
//
//	position (vec2<f32>) = 8 bytes  (buffer 0, location 0)
//	color    (vec3<f32>) = 12 bytes (buffer 1, location 1)
const (
	positionStride = 8
	colorStride    = 12
)

// defaultClear is the dark grey behind every shape.
var defaultClear = gputypes.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}

// vertexLayouts returns one layout per vertex stream, in slot order.
func vertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: positionStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			},
		},
		{
			ArrayStride: colorStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 1},
			},
		},
	}
}

// topology maps a shape mode onto a primitive topology.
func topology(m shapes.Mode) gputypes.PrimitiveTopology {
	if m == shapes.Lines {
		return gputypes.PrimitiveTopologyLineList
	}
	return gputypes.PrimitiveTopologyTriangleList
}

func primitiveState(m shapes.Mode) gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: topology(m),
		CullMode: gputypes.CullModeNone,
	}
}

func singleSample() gputypes.MultisampleState {
	return gputypes.MultisampleState{
		Count: 1,
		Mask:  0xFFFFFFFF,
	}
}

// float32Bytes packs v as little-endian IEEE 754 words.
func float32Bytes(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

// geometryBytes returns the position and color streams of g.
func geometryBytes(g *shapes.Geometry) (positions, colors []byte) {
	return float32Bytes(g.Positions()), float32Bytes(g.ColorData())
}
