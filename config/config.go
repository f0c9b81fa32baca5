package config

import (
	"fmt"
)

// TopologyConfig defines the configuration for the topology layers.
type TopologyConfig struct {
	// Maximum number of peers retained in the vicinity view.
	MaxViewSize int `mapstructure:"max_view_size"`

	// Maximum number of peers recommended per outgoing gossip.
	MaxGossipLength int `mapstructure:"max_gossip_length"`
}

// DefaultTopologyConfig returns a default configuration for the
// topology layers. The bounds trade per-epoch memory and message size
// against enough fan-out for epidemic dissemination.
func DefaultTopologyConfig() *TopologyConfig {
	return &TopologyConfig{
		MaxViewSize:     20,
		MaxGossipLength: 10,
	}
}

// TestTopologyConfig returns a configuration for testing the topology
// layers.
func TestTopologyConfig() *TopologyConfig {
	return &TopologyConfig{
		MaxViewSize:     4,
		MaxGossipLength: 2,
	}
}

// ValidateBasic performs basic validation (checking param bounds, etc.)
// and returns an error if any check fails.
func (cfg *TopologyConfig) ValidateBasic() error {
	if cfg.MaxViewSize < 0 {
		return fmt.Errorf("max_view_size can't be negative")
	}
	if cfg.MaxGossipLength < 0 {
		return fmt.Errorf("max_gossip_length can't be negative")
	}
	return nil
}
