// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// nodeKey is the triple a Store hash-conses on. Go maps hash struct keys
// structurally for free, so unlike the teacher's hand-rolled byte-buffer
// hashing (needed there to fit a fixed-size hashed array), a Store here just
// uses nodeKey directly as a map key. Hashing is by the identity of low and
// high (they are Handles, plain integers) rather than by recursing into the
// subgraphs they name, which is what keeps make amortized O(1) and is the
// foundation of canonicity (§4.2).
type nodeKey struct {
	level     int32
	low, high Handle
}

// Store is an arena of BDD nodes plus the unique table that hash-conses
// (variable, low, high) triples. Store guarantees invariants (1) terminals
// unique, (3) non-redundant, and (4) uniqueness by construction, as long as
// callers only ever build nodes through make. Invariant (2), ordering, is
// the caller's responsibility (see Builder and Reducer).
//
// A Store is not safe for concurrent use: per §5, all mutation happens
// inside make, and a Store must not be used from more than one execution
// context simultaneously.
type Store struct {
	order *Order
	nodes []node

	unique map[nodeKey]Handle

	log *logrus.Logger

	retainCache   bool
	applyCache    map[applyKey]Handle
	cacheCapacity int

	uniqueAccess, uniqueHit, uniqueMiss int
}

// NewStore allocates a Store for building and combining BDDs over order.
func NewStore(order *Order, opts ...Option) *Store {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	s := &Store{
		order:         order,
		nodes:         make([]node, 2, max(cfg.nodeCapacity, 2)),
		unique:        make(map[nodeKey]Handle, cfg.nodeCapacity),
		log:           cfg.logger,
		cacheCapacity: cfg.cacheCapacity,
	}
	// The two terminals live at fixed handles 0 and 1 and are never entered
	// in the unique table: they are singletons by construction, not by
	// hash-consing.
	s.nodes[False] = node{level: terminalLevel, low: False, high: False}
	s.nodes[True] = node{level: terminalLevel, low: True, high: True}
	if cfg.retainCache {
		s.RetainCache(true)
	}
	return s
}

// Order returns the variable order this Store was built against.
func (s *Store) Order() *Order {
	return s.order
}

// Terminal returns the interned handle for the constant b.
func (s *Store) Terminal(b bool) Handle {
	if b {
		return True
	}
	return False
}

// Make returns the handle for the node (level, low, high), applying the
// reduction rule (if low == high, no node is allocated) and hash-consing
// against the unique table.
func (s *Store) Make(level int32, low, high Handle) Handle {
	if low == high {
		return low
	}
	s.uniqueAccess++
	key := nodeKey{level: level, low: low, high: high}
	if h, ok := s.unique[key]; ok {
		s.uniqueHit++
		if s.log.IsLevelEnabled(logrus.TraceLevel) {
			s.log.WithFields(logrus.Fields{"level": level, "low": low, "high": high, "handle": h}).
				Trace("unique table hit")
		}
		return h
	}
	s.uniqueMiss++
	h := Handle(len(s.nodes))
	s.nodes = append(s.nodes, node{level: level, low: low, high: high})
	s.unique[key] = h
	if s.log.IsLevelEnabled(logrus.TraceLevel) {
		s.log.WithFields(logrus.Fields{"level": level, "low": low, "high": high, "handle": h}).
			Trace("unique table miss, allocated node")
	}
	return h
}

// Node returns an inspection View of the node at h. It panics if h is out of
// range, which indicates a programming error (a Handle from a different
// Store, or a stale value), not a user error recoverable by the caller.
func (s *Store) Node(h Handle) View {
	n := s.nodes[h]
	if n.isTerminal() {
		return View{Terminal: true, Value: h == True}
	}
	return View{Level: n.level, Low: n.low, High: n.high}
}

func (s *Store) isTerminal(h Handle) bool {
	return s.nodes[h].isTerminal()
}

func (s *Store) level(h Handle) int32 {
	return s.nodes[h].level
}

func (s *Store) low(h Handle) Handle {
	return s.nodes[h].low
}

func (s *Store) high(h Handle) Handle {
	return s.nodes[h].high
}

// Size returns the number of nodes ever allocated in the Store, terminals
// included. It is a diagnostic, not a bound on any traversal.
func (s *Store) Size() int {
	return len(s.nodes)
}

// RetainCache controls whether Apply's memoization cache is kept across
// top-level calls (the teacher's "promote to a per-store cache" strategy,
// documented but left as a quality-of-implementation choice by the spec).
// Retention is always correct: Handles never change meaning within a Store
// (§4.9).
func (s *Store) RetainCache(retain bool) {
	s.retainCache = retain
	if retain && s.applyCache == nil {
		s.applyCache = make(map[applyKey]Handle, s.cacheCapacity)
	}
	if !retain {
		s.applyCache = nil
	}
}

// Stats reports unique-table access counters, the generalization of the
// teacher's uniqueAccess/uniqueHit/uniqueMiss fields in cache.go.
func (s *Store) Stats() string {
	return fmt.Sprintf("nodes: %d  uniqueAccess: %d  uniqueHit: %d  uniqueMiss: %d",
		len(s.nodes), s.uniqueAccess, s.uniqueHit, s.uniqueMiss)
}
