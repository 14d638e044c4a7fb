// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package g2d

import "fmt"

// SurfaceFormat identifies the pixel layout of a texture surface. It is
// carried as Texture metadata and drives the alpha-channel classification
// used by blend-mode selection in callers.
type SurfaceFormat uint8

// Surface formats, color first, depth/stencil last.
const (
	SurfaceR3G3B2 SurfaceFormat = iota
	SurfaceR4G4
	SurfaceR4G4B4A4
	SurfaceR5G5B5A1
	SurfaceR5G6B5
	SurfaceR8
	SurfaceR8G8
	SurfaceR8G8B8
	SurfaceR8G8B8A8
	SurfaceR10G10B10A2
	SurfaceR11G11B10
	SurfaceR16
	SurfaceR16G16
	SurfaceR16G16B16
	SurfaceR16G16B16A16
	SurfaceR32
	SurfaceR32G32
	SurfaceR32G32B32
	SurfaceR32G32B32A32
	SurfaceD16
	SurfaceD24
	SurfaceD24S8
	SurfaceD32
)

// HasAlphaChannel reports whether the format carries an alpha channel.
// Depth and stencil formats never do. An unlisted value is a programming
// error and panics; the format set is closed.
func (f SurfaceFormat) HasAlphaChannel() bool {
	switch f {
	case SurfaceR4G4B4A4,
		SurfaceR5G5B5A1,
		SurfaceR8G8B8A8,
		SurfaceR10G10B10A2,
		SurfaceR16G16B16A16,
		SurfaceR32G32B32A32:
		return true
	case SurfaceR3G3B2,
		SurfaceR4G4,
		SurfaceR5G6B5,
		SurfaceR8,
		SurfaceR8G8,
		SurfaceR8G8B8,
		SurfaceR11G11B10,
		SurfaceR16,
		SurfaceR16G16,
		SurfaceR16G16B16,
		SurfaceR32,
		SurfaceR32G32,
		SurfaceR32G32B32,
		SurfaceD16,
		SurfaceD24,
		SurfaceD24S8,
		SurfaceD32:
		return false
	default:
		panic(fmt.Sprintf("g2d: unknown surface format %d", f))
	}
}

// String returns the format name, e.g. "R8G8B8A8".
func (f SurfaceFormat) String() string {
	switch f {
	case SurfaceR3G3B2:
		return "R3G3B2"
	case SurfaceR4G4:
		return "R4G4"
	case SurfaceR4G4B4A4:
		return "R4G4B4A4"
	case SurfaceR5G5B5A1:
		return "R5G5B5A1"
	case SurfaceR5G6B5:
		return "R5G6B5"
	case SurfaceR8:
		return "R8"
	case SurfaceR8G8:
		return "R8G8"
	case SurfaceR8G8B8:
		return "R8G8B8"
	case SurfaceR8G8B8A8:
		return "R8G8B8A8"
	case SurfaceR10G10B10A2:
		return "R10G10B10A2"
	case SurfaceR11G11B10:
		return "R11G11B10"
	case SurfaceR16:
		return "R16"
	case SurfaceR16G16:
		return "R16G16"
	case SurfaceR16G16B16:
		return "R16G16B16"
	case SurfaceR16G16B16A16:
		return "R16G16B16A16"
	case SurfaceR32:
		return "R32"
	case SurfaceR32G32:
		return "R32G32"
	case SurfaceR32G32B32:
		return "R32G32B32"
	case SurfaceR32G32B32A32:
		return "R32G32B32A32"
	case SurfaceD16:
		return "D16"
	case SurfaceD24:
		return "D24"
	case SurfaceD24S8:
		return "D24S8"
	case SurfaceD32:
		return "D32"
	default:
		return "Unknown"
	}
}
