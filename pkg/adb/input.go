package adb

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Common keyevent codes.
const (
	KeyHome   = 3
	KeyBack   = 4
	KeyEnter  = 66
	KeyDelete = 67
	KeyPower  = 26
)

// Tap sends a tap at the given screen coordinates.
func (d *Device) Tap(x, y int) error {
	_, err := d.Shell(fmt.Sprintf("input tap %d %d", x, y))
	return err
}

// DoubleTap sends two taps in quick succession.
func (d *Device) DoubleTap(x, y int) error {
	if err := d.Tap(x, y); err != nil {
		return err
	}
	return d.Tap(x, y)
}

// LongPress holds a touch at the given coordinates for durationMs.
// Implemented as a zero-distance swipe, the standard adb trick.
func (d *Device) LongPress(x, y, durationMs int) error {
	_, err := d.Shell(fmt.Sprintf("input swipe %d %d %d %d %d", x, y, x, y, durationMs))
	return err
}

// Swipe drags from (x1,y1) to (x2,y2) over durationMs.
func (d *Device) Swipe(x1, y1, x2, y2, durationMs int) error {
	_, err := d.Shell(fmt.Sprintf("input swipe %d %d %d %d %d", x1, y1, x2, y2, durationMs))
	return err
}

// InputText types text into the focused field.
func (d *Device) InputText(text string) error {
	_, err := d.Shell("input text " + escapeInputText(text))
	return err
}

// KeyEvent sends a raw Android keycode.
func (d *Device) KeyEvent(code int) error {
	_, err := d.Shell(fmt.Sprintf("input keyevent %d", code))
	return err
}

// Back presses the hardware back button.
func (d *Device) Back() error {
	return d.KeyEvent(KeyBack)
}

// Screenshot captures the screen as PNG bytes.
// Goes through base64 so adb shell newline mangling can't corrupt the image.
func (d *Device) Screenshot() ([]byte, error) {
	out, err := d.Shell("screencap -p | base64")
	if err != nil {
		return nil, err
	}
	cleaned := strings.NewReplacer("\r", "", "\n", "").Replace(out)
	return base64.StdEncoding.DecodeString(cleaned)
}

// escapeInputText escapes text for `input text`.
// Spaces become %s; shell metacharacters get backslash-escaped.
func escapeInputText(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, c := range s {
		switch c {
		case ' ':
			b.WriteString("%s")
		case '\'', '"', '`', '\\', '&', '|', ';', '(', ')', '<', '>', '*', '~', '$':
			b.WriteRune('\\')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
