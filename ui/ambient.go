// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"sync"

	"github.com/outrigdev/goid"
)

// Trees being built, by the goroutine that called Start.
var (
	ambientMu sync.Mutex
	ambient   = make(map[uint64]*Dom)
)

func bind(d *Dom) {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	ambient[goid.Get()] = d
}

func unbind(d *Dom) {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	gid := goid.Get()
	if ambient[gid] == d {
		delete(ambient, gid)
	}
}

// Current returns the tree being built by the calling goroutine. It
// panics with a *ContractError outside of Start and Finish.
func Current() *Dom {
	ambientMu.Lock()
	d := ambient[goid.Get()]
	ambientMu.Unlock()
	if d == nil {
		contractf("Current", "no widget tree is being built on this goroutine")
	}
	return d
}
