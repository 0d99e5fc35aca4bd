// Package platform delivers desktop notifications through the host's
// notification service.
package platform

const appName = "Pixel Art Maker"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file shown with the
	// notification where the platform supports it.
	IconPath string
}
