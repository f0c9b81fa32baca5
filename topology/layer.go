// Package topology maintains the local node's partial views of the
// overlay. Each view is owned by a layer; layers implement one shared
// contract and are driven through the same epoch cycle by an outer
// topology manager: Reset, then Populate, then any number of Gossips
// and View calls until the next epoch's Reset.
//
// Layers hold no locks of their own. A single epoch driver is assumed
// to serialize all calls; concurrent invocation requires external
// synchronization.
package topology

import (
	"github.com/overlaynet/poldercast/types"
)

// Layer is the contract every topology layer implements.
type Layer interface {
	// Alias returns the layer's stable identifier.
	Alias() string

	// Reset clears the layer's view. It is idempotent.
	Reset()

	// Populate rebuilds the layer's view from the registry. identity is
	// the local node's own profile; the view never contains the local
	// node's address.
	Populate(identity types.Profile, nodes types.Registry)

	// Gossips appends peer recommendations for the builder's recipient.
	// An unknown recipient makes the call a no-op.
	Gossips(identity types.Profile, builder *types.GossipsBuilder, nodes types.Registry)

	// View forwards the layer's current view into builder. Addresses
	// the registry can no longer resolve are skipped.
	View(builder *types.ViewBuilder, nodes types.Registry)
}
