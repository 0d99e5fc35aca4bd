//go:build linux

package platform

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest    = "org.freedesktop.Notifications"
	notifyPath    = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod  = notifyDest + ".Notify"
	notifyTimeout = int32(5000)
)

var (
	lastMu sync.Mutex
	lastID uint32
)

// Notify sends a desktop notification over the session bus. Each call
// replaces the previous notification so repeated saves do not stack.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	lastMu.Lock()
	defer lastMu.Unlock()
	hints := map[string]dbus.Variant{
		"desktop-entry": dbus.MakeVariant("pixelart"),
	}
	var id uint32
	err = conn.Object(notifyDest, notifyPath).
		Call(notifyMethod, 0, appName, lastID, opts.IconPath, title, body, []string{}, hints, notifyTimeout).
		Store(&id)
	if err != nil {
		return err
	}
	lastID = id
	return nil
}
