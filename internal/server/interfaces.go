package server

// Server is a single transport listener. RunServer blocks until the
// listener stops; Shutdown drains in-flight requests and releases it.
type Server interface {
	RunServer()
	Shutdown()
}
