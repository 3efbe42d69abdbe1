// Package gpu provides a GPU-backed platform backend. Rasterization runs
// on the CPU through the software backend; finished frames are uploaded
// to a GPU texture supplied by the host application's device provider.
//
// The backend registers itself as "gpu" with priority 100 and reports
// itself available only after SetDeviceProvider has been called with a
// non-nil provider, so it never shadows the software backend on systems
// without a GPU.
package gpu
