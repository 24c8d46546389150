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

package rir

// Builder appends operations to a block, generating fresh result values.
// It is a construction convenience only; it adds no semantics of its own.
type Builder struct {
    bb *Block
}

// NewFunc creates a cir.func with nargs entry arguments and returns it along
// with its entry block.
func NewFunc(sym string, nargs int) (*Operation, *Block) {
    fn := NewOperation(OpFunc, nil, 0)
    fn.SymAttr = sym
    bb := fn.AddRegion().AddBlock()
    for i := 0; i < nargs; i++ {
        bb.AddArg("")
    }
    return fn, bb
}

// Build returns a Builder appending to bb.
func Build(bb *Block) *Builder {
    return &Builder{bb: bb}
}

// Block returns the block under construction.
func (self *Builder) Block() *Block {
    return self.bb
}

// Emit appends a fresh operation with nresults results.
func (self *Builder) Emit(name string, nresults int, args ...*Value) *Operation {
    return self.bb.Append(NewOperation(name, args, nresults))
}

// Op appends a single-result operation and returns its result.
func (self *Builder) Op(name string, args ...*Value) *Value {
    return self.Emit(name, 1, args...).Results[0]
}

// Const appends a cir.const producing v.
func (self *Builder) Const(v int64) *Value {
    p := self.Emit(OpConst, 1)
    p.IntAttr = v
    return p.Results[0]
}

// Loop appends a loop-like operation with a single-region body carrying
// nargs block arguments, and returns the operation plus a Builder for the
// body block.
func (self *Builder) Loop(name string, nargs int, args ...*Value) (*Operation, *Builder) {
    p := self.Emit(name, 1, args...)
    bb := p.AddRegion().AddBlock()
    for i := 0; i < nargs; i++ {
        bb.AddArg("")
    }
    return p, Build(bb)
}
