package adb

import (
	"strings"
)

// DeviceEntry is one row of `adb devices` output.
type DeviceEntry struct {
	Serial string
	State  string // device, offline, unauthorized
}

// DeviceInfo contains basic device information.
type DeviceInfo struct {
	Serial     string
	Model      string
	SDK        string
	Brand      string
	IsEmulator bool
}

// ListDevices returns all devices known to the local adb server.
func ListDevices() ([]DeviceEntry, error) {
	adbPath, err := findADB("")
	if err != nil {
		return nil, err
	}
	d := &Device{adbPath: adbPath, run: execRun}
	out, err := d.adb("devices")
	if err != nil {
		return nil, err
	}
	return parseDevices(out), nil
}

// FirstAvailable returns a Device for the first serial in "device" state.
func FirstAvailable() (*Device, error) {
	return New("")
}

// parseDevices parses `adb devices` output (one "<serial>\t<state>" per line).
func parseDevices(out string) []DeviceEntry {
	var entries []DeviceEntry
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		entries = append(entries, DeviceEntry{Serial: parts[0], State: parts[1]})
	}
	return entries
}

// Info returns device information.
func (d *Device) Info() (DeviceInfo, error) {
	info := DeviceInfo{Serial: d.serial}

	if model, err := d.Shell("getprop ro.product.model"); err == nil {
		info.Model = strings.TrimSpace(model)
	}
	if sdk, err := d.Shell("getprop ro.build.version.sdk"); err == nil {
		info.SDK = strings.TrimSpace(sdk)
	}
	if brand, err := d.Shell("getprop ro.product.brand"); err == nil {
		info.Brand = strings.TrimSpace(brand)
	}

	// Check if emulator
	chars, _ := d.Shell("getprop ro.kernel.qemu")
	info.IsEmulator = strings.TrimSpace(chars) == "1"

	return info, nil
}
