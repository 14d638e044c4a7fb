package gpu

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

var allClipModes = []ClipMode{ClipNone, ClipMask, ClipInside, ClipOutside}

var allBlendModes = []BlendMode{BlendNone, BlendAlpha, BlendAdd, BlendMultiply, BlendInvert}

func TestMatrixBuildsEveryEntry(t *testing.T) {
	e, cleanup := newTestEngine(t, nil)
	defer cleanup()

	for _, p := range []*ProgramPipelines{e.Colored(), e.Textured()} {
		for _, clip := range allClipModes {
			for _, blend := range allBlendModes {
				entry, _ := p.Select(Clip{Mode: clip}, blend)
				if entry.Pipeline() == nil {
					t.Errorf("%s: nil pipeline for clip=%s blend=%s", p.name, clip, blend)
				}
				if entry.ClipMode() != clip {
					t.Errorf("%s: entry clip=%s, want %s", p.name, entry.ClipMode(), clip)
				}
				if entry.BlendMode() != blend {
					t.Errorf("%s: entry blend=%s, want %s", p.name, entry.BlendMode(), blend)
				}
			}
		}
	}
}

func TestMatrixColorWriteMask(t *testing.T) {
	e, cleanup := newTestEngine(t, nil)
	defer cleanup()

	for _, clip := range allClipModes {
		entry, _ := e.Colored().Select(Clip{Mode: clip}, BlendAlpha)
		want := gputypes.ColorWriteMaskAll
		if clip == ClipMask {
			// Mask geometry populates the stencil buffer only.
			want = 0
		}
		if entry.mask != want {
			t.Errorf("clip=%s: write mask %v, want %v", clip, entry.mask, want)
		}
	}
}

func TestMatrixStencilState(t *testing.T) {
	e, cleanup := newTestEngine(t, nil)
	defer cleanup()

	tests := []struct {
		clip    ClipMode
		compare gputypes.CompareFunction
		failOp  hal.StencilOperation
	}{
		{ClipNone, gputypes.CompareFunctionAlways, hal.StencilOperationKeep},
		{ClipMask, gputypes.CompareFunctionNever, hal.StencilOperationReplace},
		{ClipInside, gputypes.CompareFunctionEqual, hal.StencilOperationKeep},
		{ClipOutside, gputypes.CompareFunctionNotEqual, hal.StencilOperationKeep},
	}
	for _, tt := range tests {
		entry, _ := e.Colored().Select(Clip{Mode: tt.clip}, BlendNone)
		if entry.stencil.Compare != tt.compare {
			t.Errorf("clip=%s: compare %v, want %v", tt.clip, entry.stencil.Compare, tt.compare)
		}
		if entry.stencil.FailOp != tt.failOp {
			t.Errorf("clip=%s: fail op %v, want %v", tt.clip, entry.stencil.FailOp, tt.failOp)
		}
		if entry.stencil.PassOp != hal.StencilOperationKeep {
			t.Errorf("clip=%s: pass op %v, want Keep", tt.clip, entry.stencil.PassOp)
		}
		if entry.stencil.DepthFailOp != hal.StencilOperationKeep {
			t.Errorf("clip=%s: depth fail op %v, want Keep", tt.clip, entry.stencil.DepthFailOp)
		}
	}
}

func TestMatrixBlendState(t *testing.T) {
	e, cleanup := newTestEngine(t, nil)
	defer cleanup()

	tests := []struct {
		blend BlendMode
		color gputypes.BlendComponent
		alpha gputypes.BlendComponent
	}{
		{
			BlendNone,
			gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorZero, Operation: gputypes.BlendOperationAdd},
			gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorZero, Operation: gputypes.BlendOperationAdd},
		},
		{
			BlendAlpha,
			gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorSrcAlpha, DstFactor: gputypes.BlendFactorOneMinusSrcAlpha, Operation: gputypes.BlendOperationAdd},
			gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOne, Operation: gputypes.BlendOperationAdd},
		},
		{
			BlendAdd,
			gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOne, Operation: gputypes.BlendOperationAdd},
			gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOne, Operation: gputypes.BlendOperationAdd},
		},
		{
			BlendMultiply,
			gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorDst, DstFactor: gputypes.BlendFactorZero, Operation: gputypes.BlendOperationAdd},
			gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorDstAlpha, DstFactor: gputypes.BlendFactorZero, Operation: gputypes.BlendOperationAdd},
		},
		{
			BlendInvert,
			gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorConstant, DstFactor: gputypes.BlendFactorSrc, Operation: gputypes.BlendOperationSubtract},
			gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorZero, DstFactor: gputypes.BlendFactorOne, Operation: gputypes.BlendOperationAdd},
		},
	}
	for _, tt := range tests {
		entry, _ := e.Colored().Select(Clip{}, tt.blend)
		if entry.blendSt.Color != tt.color {
			t.Errorf("blend=%s: color component %+v, want %+v", tt.blend, entry.blendSt.Color, tt.color)
		}
		if entry.blendSt.Alpha != tt.alpha {
			t.Errorf("blend=%s: alpha component %+v, want %+v", tt.blend, entry.blendSt.Alpha, tt.alpha)
		}
	}
}

func TestSelectStencilReference(t *testing.T) {
	e, cleanup := newTestEngine(t, nil)
	defer cleanup()

	// No clip ignores the reference entirely.
	_, ref := e.Colored().Select(Clip{Mode: ClipNone, Ref: 200}, BlendAlpha)
	if ref != 0 {
		t.Errorf("ClipNone: stencil ref %d, want 0", ref)
	}

	for _, clip := range []ClipMode{ClipMask, ClipInside, ClipOutside} {
		_, ref := e.Colored().Select(Clip{Mode: clip, Ref: 200}, BlendAlpha)
		if ref != 200 {
			t.Errorf("%s: stencil ref %d, want 200", clip, ref)
		}
	}
}

func TestSelectStable(t *testing.T) {
	e, cleanup := newTestEngine(t, nil)
	defer cleanup()

	a, _ := e.Colored().Select(Clip{Mode: ClipInside, Ref: 1}, BlendAlpha)
	b, _ := e.Colored().Select(Clip{Mode: ClipInside, Ref: 1}, BlendAlpha)
	if a != b {
		t.Error("repeated Select returned different entries")
	}
	if a.Pipeline() != b.Pipeline() {
		t.Error("repeated Select returned different pipelines")
	}
}

func TestSelectOutOfRange(t *testing.T) {
	e, cleanup := newTestEngine(t, nil)
	defer cleanup()

	entry, _ := e.Colored().Select(Clip{Mode: ClipMode(9)}, BlendMode(11))
	if entry.ClipMode() != ClipNone {
		t.Errorf("out-of-range clip selected %s, want %s", entry.ClipMode(), ClipNone)
	}
	if entry.BlendMode() != BlendNone {
		t.Errorf("out-of-range blend selected %s, want %s", entry.BlendMode(), BlendNone)
	}
	if entry.Pipeline() == nil {
		t.Error("expected usable fallback pipeline")
	}
}

func TestPipelineLabel(t *testing.T) {
	got := pipelineLabel("colored", ClipInside, BlendAlpha)
	if got != "colored_pipeline_inside_alpha" {
		t.Errorf("label %q, want %q", got, "colored_pipeline_inside_alpha")
	}
	got = pipelineLabel("textured", ClipNone, BlendNone)
	if got != "textured_pipeline_none_none" {
		t.Errorf("label %q, want %q", got, "textured_pipeline_none_none")
	}
}

func TestMatrixDestroyIdempotent(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	e, err := NewEngine(device, queue, nil)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	colored := e.Colored()
	e.Destroy()

	for ci := range colored.entries {
		for bi := range colored.entries[ci] {
			if colored.entries[ci][bi].pipeline != nil {
				t.Fatalf("pipeline [%d][%d] not released", ci, bi)
			}
		}
	}
	// Destroy again directly; nil entries must be skipped.
	colored.destroy(device)
}
