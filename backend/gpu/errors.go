package gpu

import "errors"

// Package errors for the GPU backend.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpu: nil DeviceProvider")

	// ErrNotWGPUDevice is returned when the provider's device is not a
	// *wgpu.Device.
	ErrNotWGPUDevice = errors.New("gpu: provider device is not *wgpu.Device")

	// ErrNilProgram is returned when no compiled shader program is given.
	ErrNilProgram = errors.New("gpu: nil shader program")

	// ErrNoTarget is returned by Draw before SetTarget was given a view.
	ErrNoTarget = errors.New("gpu: no render target")

	// ErrEmptyGeometry is returned when uploading geometry without vertices.
	ErrEmptyGeometry = errors.New("gpu: empty geometry")
)
