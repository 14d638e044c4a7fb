package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/colored.wgsl
var coloredShaderSource string

//go:embed shaders/textured.wgsl
var texturedShaderSource string

// ColoredShaderSource returns the built-in WGSL source for the flat-color
// program. Callers may supply their own source via the engine config as long
// as it keeps the vs_main/fs_main entry points and the group(0) uniform.
func ColoredShaderSource() string { return coloredShaderSource }

// TexturedShaderSource returns the built-in WGSL source for the textured
// program. The texture and sampler bind at group(1) bindings 0 and 1.
func TexturedShaderSource() string { return texturedShaderSource }

// compileToSPIRV compiles WGSL source to SPIR-V words through naga.
// SPIR-V is little-endian 32-bit words.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, err
	}
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// createShaderModule builds a HAL shader module from WGSL source in the
// requested dialect. With DialectSPIRV the source is translated up front, so
// a malformed shader surfaces here, during construction, rather than at the
// first draw.
func createShaderModule(device hal.Device, label, wgslSource string, dialect ShaderDialect) (hal.ShaderModule, error) {
	if wgslSource == "" {
		return nil, fmt.Errorf("%s shader source is empty", label)
	}

	source := hal.ShaderSource{WGSL: wgslSource}
	if dialect == DialectSPIRV {
		spirvCode, err := compileToSPIRV(wgslSource)
		if err != nil {
			return nil, fmt.Errorf("compile %s shader: %w", label, err)
		}
		source = hal.ShaderSource{SPIRV: spirvCode}
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label + "_shader",
		Source: source,
	})
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", label, err)
	}
	return module, nil
}
