package types

import "time"

// Node pairs a peer profile with local bookkeeping about the peer. The
// registry owns Node values and hands out *Node, which doubles as the
// mutable handle forwarded during view export.
type Node struct {
	profile Profile

	// last time this peer appeared in a gossip exchange; zero until
	// MarkGossiped is called.
	lastGossip time.Time
}

func NewNode(profile Profile) *Node {
	return &Node{profile: profile}
}

func (n *Node) Address() Address { return n.profile.Address() }

func (n *Node) Profile() Profile { return n.profile }

// LastGossip returns when the peer last took part in a gossip
// exchange, or the zero time if it never has.
func (n *Node) LastGossip() time.Time { return n.lastGossip }

// MarkGossiped records that the peer took part in a gossip exchange.
func (n *Node) MarkGossiped(at time.Time) {
	n.lastGossip = at
}
