package config

import (
	_ "embed"
)

//go:embed defaults/flow.yaml
var defaultFlowYAML []byte

// DefaultFlowConfig returns the hardcoded default configuration.
func DefaultFlowConfig() FlowConfig {
	return FlowConfig{
		Storage: StorageConfig{
			DBPath: "~/.flow/progress.db",
			Player: "local",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.flow/flow.log",
		},
		Theme: "default",
		SSH: SSHConfig{
			Address:            ":23235",
			HostKey:            "~/.flow/ssh_host_ed25519",
			IdleTimeoutMinutes: 30,
		},
	}
}
