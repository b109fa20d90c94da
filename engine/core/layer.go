package core

import "iter"

// Layer is a slice of the application that receives updates, renders and
// events. Layers render bottom to top and see events top to bottom.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // true stops propagation
}

// LayerStack orders layers; the last pushed is the top.
type LayerStack struct{ layers []Layer }

func (ls *LayerStack) Push(l Layer) { ls.layers = append(ls.layers, l) }
func (ls *LayerStack) Len() int     { return len(ls.layers) }

// Pop removes the top layer.
func (ls *LayerStack) Pop() (Layer, bool) {
	n := len(ls.layers)
	if n == 0 {
		return nil, false
	}
	top := ls.layers[n-1]
	ls.layers[n-1] = nil
	ls.layers = ls.layers[:n-1]
	return top, true
}

// All yields layers bottom to top.
func (ls *LayerStack) All() iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		for _, l := range ls.layers {
			if !yield(l) {
				return
			}
		}
	}
}

// Backward yields layers top to bottom.
func (ls *LayerStack) Backward() iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		for i := len(ls.layers) - 1; i >= 0; i-- {
			if !yield(ls.layers[i]) {
				return
			}
		}
	}
}
