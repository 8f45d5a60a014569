package adb

import (
	"fmt"
	"strings"
)

// Install installs an APK on the device.
func (d *Device) Install(apkPath string) error {
	_, err := d.adb("install", "-r", "-g", apkPath)
	return err
}

// Uninstall removes a package from the device.
func (d *Device) Uninstall(pkg string) error {
	_, err := d.adb("uninstall", pkg)
	return err
}

// IsInstalled checks if a package is installed.
func (d *Device) IsInstalled(pkg string) bool {
	out, err := d.Shell("pm list packages " + pkg)
	if err != nil {
		return false
	}
	return strings.Contains(out, "package:"+pkg)
}

// Launch starts the package's launcher activity.
func (d *Device) Launch(pkg string) error {
	_, err := d.Shell(fmt.Sprintf("monkey -p %s -c android.intent.category.LAUNCHER 1", pkg))
	return err
}

// Stop force-stops the package.
func (d *Device) Stop(pkg string) error {
	_, err := d.Shell("am force-stop " + pkg)
	return err
}

// ClearState clears the package's data and cache.
func (d *Device) ClearState(pkg string) error {
	_, err := d.Shell("pm clear " + pkg)
	return err
}

// OpenURL opens a link in the default handler.
func (d *Device) OpenURL(url string) error {
	_, err := d.Shell(fmt.Sprintf("am start -a android.intent.action.VIEW -d '%s'", url))
	return err
}
