package server

// Server is the lifecycle contract of the blog API server.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or the listener
// fails. Shutdown stops accepting connections and waits for in-flight
// requests for a bounded period.
type Server interface {
	RunServer()
	Shutdown()
}
