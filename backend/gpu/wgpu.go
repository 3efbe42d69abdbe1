package gpu

import (
	"fmt"

	"github.com/gogpu/wgpu/core"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/uikit"
)

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType types.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend types.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// QueryGPUInfo retrieves information about a GPU adapter.
func QueryGPUInfo(adapterID core.AdapterID) (*GPUInfo, error) {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return nil, fmt.Errorf("gpu: get adapter info: %w", err)
	}

	return &GPUInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
		Driver:     info.Driver,
	}, nil
}

// LogGPUInfo logs information about the selected GPU through the uikit
// logger.
func LogGPUInfo(adapterID core.AdapterID) {
	info, err := QueryGPUInfo(adapterID)
	if err != nil {
		uikit.Logger().Warn("gpu: failed to get GPU info", "error", err)
		return
	}

	uikit.Logger().Info("gpu: adapter selected", "gpu", info.String(), "driver", info.Driver)
}

// CreateDevice creates a logical device from an adapter using default
// limits and no special features. Hosts that embed uikit without a full
// gogpu application can use this to stand up a device themselves.
func CreateDevice(adapterID core.AdapterID, label string) (core.DeviceID, error) {
	desc := &types.DeviceDescriptor{
		Label:            label,
		RequiredFeatures: nil,
		RequiredLimits:   types.DefaultLimits(),
	}

	deviceID, err := core.RequestDevice(adapterID, desc)
	if err != nil {
		return core.DeviceID{}, fmt.Errorf("gpu: create device: %w", err)
	}

	return deviceID, nil
}

// DeviceQueue retrieves the queue associated with a device.
func DeviceQueue(deviceID core.DeviceID) (core.QueueID, error) {
	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		return core.QueueID{}, fmt.Errorf("gpu: get device queue: %w", err)
	}
	return queueID, nil
}

// ReleaseDevice releases a device and its associated resources.
// Releasing a zero device is a no-op.
func ReleaseDevice(deviceID core.DeviceID) error {
	if deviceID.IsZero() {
		return nil
	}

	if err := core.DeviceDrop(deviceID); err != nil {
		return fmt.Errorf("gpu: release device: %w", err)
	}
	return nil
}

// ReleaseAdapter releases an adapter. Releasing a zero adapter is a no-op.
func ReleaseAdapter(adapterID core.AdapterID) error {
	if adapterID.IsZero() {
		return nil
	}

	if err := core.AdapterDrop(adapterID); err != nil {
		return fmt.Errorf("gpu: release adapter: %w", err)
	}
	return nil
}

// CheckDeviceLimits verifies that the device meets the minimum texture
// size requirement for a frame of the given dimensions.
func CheckDeviceLimits(deviceID core.DeviceID, width, height uint32) error {
	limits, err := core.GetDeviceLimits(deviceID)
	if err != nil {
		return fmt.Errorf("gpu: get device limits: %w", err)
	}

	uikit.Logger().Debug("gpu: device limits",
		"maxTextureDimension2D", limits.MaxTextureDimension2D,
		"maxBufferSize", limits.MaxBufferSize)

	if width > limits.MaxTextureDimension2D || height > limits.MaxTextureDimension2D {
		return fmt.Errorf("gpu: frame %dx%d exceeds max texture dimension %d",
			width, height, limits.MaxTextureDimension2D)
	}
	return nil
}
