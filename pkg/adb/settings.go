package adb

import (
	"fmt"
	"strings"
)

// Volume stream identifiers (AudioManager stream types).
const (
	StreamRing  = 2
	StreamMedia = 3
	StreamAlarm = 4
)

// SetAirplaneMode toggles airplane mode.
func (d *Device) SetAirplaneMode(on bool) error {
	state := "disable"
	if on {
		state = "enable"
	}
	_, err := d.Shell("cmd connectivity airplane-mode " + state)
	return err
}

// SetWifi toggles wifi.
func (d *Device) SetWifi(on bool) error {
	_, err := d.Shell("svc wifi " + enableWord(on))
	return err
}

// SetMobileData toggles mobile data.
func (d *Device) SetMobileData(on bool) error {
	_, err := d.Shell("svc data " + enableWord(on))
	return err
}

// SetVolume sets the volume for the given stream (0 mutes it).
func (d *Device) SetVolume(stream, level int) error {
	_, err := d.Shell(fmt.Sprintf("media volume --show --stream %d --set %d", stream, level))
	return err
}

// SetAnimations sets the three system animation scales.
// Scale 0 disables animations, the usual setting for UI automation.
func (d *Device) SetAnimations(scale float64) error {
	keys := []string{
		"window_animation_scale",
		"transition_animation_scale",
		"animator_duration_scale",
	}
	for _, key := range keys {
		if _, err := d.Shell(fmt.Sprintf("settings put global %s %g", key, scale)); err != nil {
			return err
		}
	}
	return nil
}

// SetLocale changes the device locale, e.g. "de_DE".
// Requires the io.appium.settings helper app on the device.
func (d *Device) SetLocale(locale string) error {
	lang, country, ok := strings.Cut(locale, "_")
	if !ok {
		return fmt.Errorf("locale must be of the form ll_CC, got %q", locale)
	}
	cmd := fmt.Sprintf(
		"am broadcast -a io.appium.settings.locale --es lang %s --es country %s -n io.appium.settings/.receivers.LocaleSettingReceiver",
		strings.ToLower(lang), strings.ToUpper(country),
	)
	_, err := d.Shell(cmd)
	return err
}

// GrantPermission grants a runtime permission to a package.
func (d *Device) GrantPermission(pkg, permission string) error {
	_, err := d.Shell(fmt.Sprintf("pm grant %s %s", pkg, permission))
	return err
}

// RevokePermission revokes a runtime permission from a package.
func (d *Device) RevokePermission(pkg, permission string) error {
	_, err := d.Shell(fmt.Sprintf("pm revoke %s %s", pkg, permission))
	return err
}

func enableWord(on bool) string {
	if on {
		return "enable"
	}
	return "disable"
}
