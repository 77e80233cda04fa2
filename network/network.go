package network

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}
