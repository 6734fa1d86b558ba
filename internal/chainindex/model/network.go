package model

// Network names the chain the index follows. It labels metrics and logs.
type Network string

var (
	Mainnet Network = "mainnet"
	Preprod Network = "preprod"
	Preview Network = "preview"
)
