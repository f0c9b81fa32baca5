package types

// Topic names a subscription interest shared between peers.
type Topic string

// Proximity is an application-defined distance between two profiles.
// Lower means nearer. Only its total order matters; no further numeric
// contract is assumed.
type Proximity int64

// Profile describes a peer's interests. Implementations must make
// Proximity a pure function: evaluating it has no side effects and may
// be called concurrently for different operands.
type Profile interface {
	// Address returns the stable identity of the described peer.
	Address() Address

	// Proximity scores the distance from this profile to other.
	Proximity(other Profile) Proximity
}

// SubscriberProfile is a Profile whose proximity is induced by topic
// subscriptions: the more topics two profiles share, the nearer they
// are. It is the profile used when interest is keyed by topic;
// embedders with a different notion of distance supply their own
// Profile implementation.
type SubscriberProfile struct {
	addr   Address
	topics map[Topic]struct{}
}

func NewSubscriberProfile(addr Address, topics ...Topic) *SubscriberProfile {
	set := make(map[Topic]struct{}, len(topics))
	for _, t := range topics {
		set[t] = struct{}{}
	}
	return &SubscriberProfile{addr: addr, topics: set}
}

func (p *SubscriberProfile) Address() Address { return p.addr }

// Subscribed reports whether the profile subscribes to topic.
func (p *SubscriberProfile) Subscribed(topic Topic) bool {
	_, ok := p.topics[topic]
	return ok
}

// Topics returns the subscribed topics in unspecified order.
func (p *SubscriberProfile) Topics() []Topic {
	topics := make([]Topic, 0, len(p.topics))
	for t := range p.topics {
		topics = append(topics, t)
	}
	return topics
}

// Proximity counts shared subscriptions, negated so that sharing more
// topics yields a smaller (nearer) distance. A profile that is not a
// *SubscriberProfile shares nothing and is maximally far.
func (p *SubscriberProfile) Proximity(other Profile) Proximity {
	o, ok := other.(*SubscriberProfile)
	if !ok {
		return 0
	}
	shared := 0
	small, large := p.topics, o.topics
	if len(large) < len(small) {
		small, large = large, small
	}
	for t := range small {
		if _, ok := large[t]; ok {
			shared++
		}
	}
	return Proximity(-shared)
}
