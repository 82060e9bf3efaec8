package model

// Network names the daemon network a probe runs against.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)
