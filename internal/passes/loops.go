/*
 * Copyright 2025 Cirrus-IR Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package passes

import (
    `errors`
    `sync`

    `github.com/cirrus-ir/cirrus/internal/rir`
)

// ErrNoParent is reported when operations cannot be relocated because the
// loop operation is not enclosed in a block.
var ErrNoParent = errors.New("loop operation has no enclosing block")

// LoopLike is the capability set a loop construct must provide for generic
// loop transformations. Transformations are written only against this
// interface; concrete loop operations plug in through RegisterLoop.
type LoopLike interface {
    // LoopBody returns the region executed once per iteration.
    LoopBody() *rir.Region

    // IsDefinedOutsideOfLoop reports whether v is defined outside of the
    // loop body.
    IsDefinedOutsideOfLoop(v *rir.Value) bool

    // MoveOutOfLoop relocates ops, in order, to just before the loop.
    MoveOutOfLoop(ops []*rir.Operation) error
}

// LoopAdapter wraps a concrete loop operation in a LoopLike view.
type LoopAdapter func(p *rir.Operation) LoopLike

var (
    _loopmu sync.RWMutex
    _loops  = make(map[string]LoopAdapter, 4)
)

// RegisterLoop makes the named operation visible to loop transformations.
func RegisterLoop(name string, fn LoopAdapter) {
    _loopmu.Lock()
    defer _loopmu.Unlock()
    _loops[name] = fn
}

// LookupLoop returns the LoopLike view of p, if p is a registered loop
// operation.
func LookupLoop(p *rir.Operation) (LoopLike, bool) {
    _loopmu.RLock()
    fn, ok := _loops[p.Name]
    _loopmu.RUnlock()
    if !ok {
        return nil, false
    }
    return fn(p), true
}

// regionLoop is the shared LoopLike implementation for loop operations whose
// body is a single owned region, such as cir.for and cir.while.
type regionLoop struct {
    p *rir.Operation
}

func (self regionLoop) LoopBody() *rir.Region {
    return self.p.Regions[0]
}

func (self regionLoop) IsDefinedOutsideOfLoop(v *rir.Value) bool {
    for _, rr := range self.p.Regions {
        if rr.Encloses(v) {
            return false
        }
    }
    return true
}

func (self regionLoop) MoveOutOfLoop(ops []*rir.Operation) error {
    bb := self.p.Block()
    if bb == nil {
        return ErrNoParent
    }
    for _, p := range ops {
        p.Block().Remove(p)
    }
    bb.InsertBefore(self.p, ops)
    return nil
}

func init() {
    RegisterLoop(rir.OpFor   , func(p *rir.Operation) LoopLike { return regionLoop{p} })
    RegisterLoop(rir.OpWhile , func(p *rir.Operation) LoopLike { return regionLoop{p} })
}
