package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ErrVertexCapacity is returned when a single batch carries more vertex data
// than the pool's fixed buffers hold.
var ErrVertexCapacity = errors.New("gpu: vertex count exceeds buffer capacity")

// VertexPool owns the two fixed-capacity dynamic vertex buffers every draw
// streams through: positions for buffer slot 0, texture coordinates for
// slot 1. Each upload overwrites its buffer from offset zero, there are no
// partial updates and no double buffering. The buffers are created once and
// never reallocated.
type VertexPool struct {
	positions hal.Buffer
	texCoords hal.Buffer
	capacity  uint32
	staging   []byte
}

// newVertexPool creates both buffers sized for capacity vertices of two
// float32 components each.
func newVertexPool(device hal.Device, capacity uint32) (*VertexPool, error) {
	if capacity == 0 {
		return nil, errors.New("gpu: vertex pool capacity must be positive")
	}
	size := uint64(capacity) * vertexStride

	positions, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "pool_positions",
		Size:  size,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create position buffer: %w", err)
	}

	texCoords, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "pool_texcoords",
		Size:  size,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		device.DestroyBuffer(positions)
		return nil, fmt.Errorf("create texcoord buffer: %w", err)
	}

	return &VertexPool{
		positions: positions,
		texCoords: texCoords,
		capacity:  capacity,
	}, nil
}

// Capacity returns the maximum vertex count a single batch may carry.
func (p *VertexPool) Capacity() uint32 { return p.capacity }

// UploadPositions overwrites the position buffer from offset zero with the
// given components, two per vertex, and returns the vertex count (len/2 by
// integer division). A trailing odd component is uploaded but never drawn.
// Data exceeding the pool capacity is rejected with ErrVertexCapacity before
// anything is written.
func (p *VertexPool) UploadPositions(queue hal.Queue, data []float32) (uint32, error) {
	return p.upload(queue, p.positions, data)
}

// UploadTexCoords overwrites the texture coordinate buffer from offset zero.
// Semantics match UploadPositions.
func (p *VertexPool) UploadTexCoords(queue hal.Queue, data []float32) (uint32, error) {
	return p.upload(queue, p.texCoords, data)
}

func (p *VertexPool) upload(queue hal.Queue, buf hal.Buffer, data []float32) (uint32, error) {
	if uint32(len(data)) > p.capacity*posComponents { //nolint:gosec // batch length fits uint32
		return 0, fmt.Errorf("%w: %d vertices, capacity %d",
			ErrVertexCapacity, (len(data)+posComponents-1)/posComponents, p.capacity)
	}
	count := uint32(len(data) / posComponents) //nolint:gosec // bounded by capacity
	if len(data) == 0 {
		return 0, nil
	}

	needed := len(data) * 4
	if cap(p.staging) < needed {
		p.staging = make([]byte, needed)
	}
	staging := p.staging[:needed]
	for i, v := range data {
		binary.LittleEndian.PutUint32(staging[i*4:], math.Float32bits(v))
	}
	queue.WriteBuffer(buf, 0, staging)
	return count, nil
}

// destroy releases both buffers. Safe to call multiple times.
func (p *VertexPool) destroy(device hal.Device) {
	if p.texCoords != nil {
		device.DestroyBuffer(p.texCoords)
		p.texCoords = nil
	}
	if p.positions != nil {
		device.DestroyBuffer(p.positions)
		p.positions = nil
	}
}
