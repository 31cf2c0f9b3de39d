package server

// Server is the lifecycle contract of the API server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal has been
	// handled and in-flight requests have drained.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests,
	// bounded by shutdownTimeout.
	Shutdown()
}
