// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import (
	"github.com/gogpu/g2d/internal/gpu"
)

// ShaderDialect selects the form shader sources take on their way to the
// device. Sources are always authored in WGSL; the dialect decides whether
// they are handed to the HAL as-is or pre-compiled to SPIR-V.
type ShaderDialect = gpu.ShaderDialect

// Shader dialects.
const (
	// DialectWGSL passes WGSL source to the HAL untranslated. This is the
	// default and works on every backend that consumes WGSL directly.
	DialectWGSL = gpu.DialectWGSL

	// DialectSPIRV compiles WGSL to SPIR-V through naga at renderer
	// construction. Malformed source fails construction instead of
	// surfacing later from the driver.
	DialectSPIRV = gpu.DialectSPIRV
)

// ColoredShaderSource returns the embedded WGSL source of the flat-color
// program, the default when WithColoredShader is not given.
func ColoredShaderSource() string { return gpu.ColoredShaderSource() }

// TexturedShaderSource returns the embedded WGSL source of the textured
// program, the default when WithTexturedShader is not given.
func TexturedShaderSource() string { return gpu.TexturedShaderSource() }
