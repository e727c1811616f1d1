package driven

// URLOpener opens a URL with the system's default handler.
type URLOpener interface {
	// Open starts the handler and returns without waiting for it.
	Open(url string) error
}
