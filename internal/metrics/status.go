// Package metrics exposes prometheus collectors for the chain index components.
package metrics

import "github.com/goodnatureofminers/blockinsight7000-chainindex/internal/chainindex/model"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
