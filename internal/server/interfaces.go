package server

// Server is the lifecycle contract of the stub server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
