// Package store provides the graph storage backing the automaton drawer.
package store

import (
	"sync"

	"github.com/dominikbraun/graph"
)

// UpdatableStore is a graph store whose vertex properties can be changed
// after insertion. The drawer uses this to restyle states once the whole
// automaton is known, for instance to double-circle the accepting state.
type UpdatableStore[K comparable, T any] interface {
	graph.Store[K, T]
	UpdateVertex(k K, options ...func(*graph.VertexProperties))
}

// StateStore keeps automaton states and transitions in memory.
type StateStore[K comparable, T any] struct {
	lock            sync.RWMutex
	states          map[K]T
	stateProperties map[K]*graph.VertexProperties

	// outEdges and inEdges hold all transitions per state. For O(1) access,
	// the transitions are stored in maps keyed by the hash of the far state.
	outEdges map[K]map[K]graph.Edge[K] // source -> target
	inEdges  map[K]map[K]graph.Edge[K] // target -> source
}

// New creates an empty state store.
func New[K comparable, T any]() UpdatableStore[K, T] {
	return &StateStore[K, T]{
		states:          make(map[K]T),
		stateProperties: make(map[K]*graph.VertexProperties),
		outEdges:        make(map[K]map[K]graph.Edge[K]),
		inEdges:         make(map[K]map[K]graph.Edge[K]),
	}
}

func (s *StateStore[K, T]) AddVertex(k K, t T, p graph.VertexProperties) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.states[k]; ok {
		return graph.ErrVertexAlreadyExists
	}

	s.states[k] = t
	s.stateProperties[k] = &p

	return nil
}

func (s *StateStore[K, T]) ListVertices() ([]K, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	hashes := make([]K, 0, len(s.states))
	for k := range s.states {
		hashes = append(hashes, k)
	}

	return hashes, nil
}

func (s *StateStore[K, T]) VertexCount() (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.states), nil
}

func (s *StateStore[K, T]) Vertex(k K) (T, graph.VertexProperties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	v, ok := s.states[k]
	if !ok {
		return v, graph.VertexProperties{}, graph.ErrVertexNotFound
	}

	p := s.stateProperties[k]

	return v, *p, nil
}

func (s *StateStore[K, T]) RemoveVertex(k K) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.states[k]; !ok {
		return graph.ErrVertexNotFound
	}

	if edges, ok := s.inEdges[k]; ok {
		if len(edges) > 0 {
			return graph.ErrVertexHasEdges
		}
		delete(s.inEdges, k)
	}

	if edges, ok := s.outEdges[k]; ok {
		if len(edges) > 0 {
			return graph.ErrVertexHasEdges
		}
		delete(s.outEdges, k)
	}

	delete(s.states, k)
	delete(s.stateProperties, k)

	return nil
}

// UpdateVertex applies the options to the stored properties of state k.
// Unknown states are ignored.
func (s *StateStore[K, T]) UpdateVertex(k K, options ...func(*graph.VertexProperties)) {
	s.lock.Lock()
	defer s.lock.Unlock()

	p, ok := s.stateProperties[k]
	if !ok {
		return
	}
	for _, opt := range options {
		opt(p)
	}
}

func (s *StateStore[K, T]) AddEdge(sourceHash, targetHash K, edge graph.Edge[K]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.outEdges[sourceHash]; !ok {
		s.outEdges[sourceHash] = make(map[K]graph.Edge[K])
	}

	s.outEdges[sourceHash][targetHash] = edge

	if _, ok := s.inEdges[targetHash]; !ok {
		s.inEdges[targetHash] = make(map[K]graph.Edge[K])
	}

	s.inEdges[targetHash][sourceHash] = edge

	return nil
}

func (s *StateStore[K, T]) UpdateEdge(sourceHash, targetHash K, edge graph.Edge[K]) error {
	if _, err := s.Edge(sourceHash, targetHash); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.outEdges[sourceHash][targetHash] = edge
	s.inEdges[targetHash][sourceHash] = edge

	return nil
}

func (s *StateStore[K, T]) RemoveEdge(sourceHash, targetHash K) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.inEdges[targetHash], sourceHash)
	delete(s.outEdges[sourceHash], targetHash)
	return nil
}

func (s *StateStore[K, T]) Edge(sourceHash, targetHash K) (graph.Edge[K], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	sourceEdges, ok := s.outEdges[sourceHash]
	if !ok {
		return graph.Edge[K]{}, graph.ErrEdgeNotFound
	}

	edge, ok := sourceEdges[targetHash]
	if !ok {
		return graph.Edge[K]{}, graph.ErrEdgeNotFound
	}

	return edge, nil
}

func (s *StateStore[K, T]) ListEdges() ([]graph.Edge[K], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res := make([]graph.Edge[K], 0)
	for _, edges := range s.outEdges {
		for _, edge := range edges {
			res = append(res, edge)
		}
	}
	return res, nil
}
