// Package adb provides Android device access via the adb command-line tool.
package adb

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/devicelab-dev/droidctl/pkg/core"
	"github.com/devicelab-dev/droidctl/pkg/logger"
	"github.com/devicelab-dev/droidctl/pkg/screen"
)

// runFunc executes a binary and returns stdout, stderr.
// Replaceable in tests so command templating can be verified offline.
type runFunc func(name string, args ...string) (string, string, error)

func execRun(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Device manages an Android device connection via ADB.
type Device struct {
	serial  string
	adbPath string
	run     runFunc

	screenOnce sync.Once
	screen     *screen.Screen
}

// New creates a Device for the given serial.
// If serial is empty, it auto-detects the first connected device.
func New(serial string) (*Device, error) {
	adbPath, err := findADB("")
	if err != nil {
		return nil, err
	}
	return NewWithPath(adbPath, serial)
}

// NewWithPath creates a Device using an explicit adb binary location.
// An empty adbPath falls back to PATH lookup.
func NewWithPath(adbPath, serial string) (*Device, error) {
	path, err := findADB(adbPath)
	if err != nil {
		return nil, err
	}

	d := &Device{
		adbPath: path,
		run:     execRun,
	}

	// Auto-detect serial if not provided
	if serial == "" {
		serial, err = d.detectSerial()
		if err != nil {
			return nil, fmt.Errorf("no device specified and auto-detect failed: %w", err)
		}
	}
	d.serial = serial

	// Verify device is connected
	if err := d.waitForDevice(5 * time.Second); err != nil {
		return nil, core.ErrDeviceNotFound.WithMessage(fmt.Sprintf("device %s not found", serial)).WithCause(err)
	}

	return d, nil
}

// Serial returns the device serial number.
func (d *Device) Serial() string {
	return d.serial
}

// Screen returns the screen facade for this device, creating it on first use.
// Each Device owns exactly one facade; its caches are never shared across
// devices.
func (d *Device) Screen() *screen.Screen {
	d.screenOnce.Do(func() {
		d.screen = screen.New(d)
	})
	return d.screen
}

// Shell executes a shell command on the device.
func (d *Device) Shell(cmd string) (string, error) {
	return d.adb("shell", cmd)
}

// adb executes an ADB command against this device.
func (d *Device) adb(args ...string) (string, error) {
	cmdArgs := make([]string, 0, len(args)+2)
	if d.serial != "" {
		cmdArgs = append(cmdArgs, "-s", d.serial)
	}
	cmdArgs = append(cmdArgs, args...)

	logger.Debug("adb %s", strings.Join(args, " "))
	stdout, stderr, err := d.run(d.adbPath, cmdArgs...)
	if err != nil {
		errMsg := strings.TrimSpace(stderr)
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout)
		}
		if errMsg != "" {
			err = fmt.Errorf("%w: %s", err, errMsg)
		}
		return "", core.ErrTransport.WithMessage(fmt.Sprintf("adb %s", strings.Join(args, " "))).WithCause(err)
	}

	return stdout, nil
}

// detectSerial finds the first connected device serial.
func (d *Device) detectSerial() (string, error) {
	out, err := d.adb("devices")
	if err != nil {
		return "", err
	}

	devices := parseDevices(out)
	for _, entry := range devices {
		if entry.State == "device" {
			return entry.Serial, nil
		}
	}
	return "", core.ErrDeviceNotFound
}

// waitForDevice waits for the device to be available.
func (d *Device) waitForDevice(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if d.isConnected() {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("timeout waiting for device %s", d.serial)
}

// isConnected checks if the device is connected.
func (d *Device) isConnected() bool {
	out, err := d.adb("get-state")
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) == "device"
}

// findADB locates the ADB binary.
func findADB(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if path, err := exec.LookPath("adb"); err == nil {
		return path, nil
	}
	return "", core.ErrADBNotFound
}
