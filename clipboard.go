package dring

// Clipboard delivers exported text to the user's clipboard.
type Clipboard interface {
	// Copy writes text to the clipboard. Delivery is best effort; a nil
	// error means the text was handed to the transport, not that the
	// terminal accepted it.
	Copy(text string) error
}
