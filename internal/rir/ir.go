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

// Effect classifies the observable side effects of an Operation.
//
// The zero value is EffectUnknown: an operation whose spec does not state
// anything about its effects must be treated as effectful.
type Effect uint8

const (
    EffectUnknown   Effect = iota // unclassified, assumed effectful
    EffectNone                    // declared side-effect free
    EffectRecursive               // effects are those of the nested regions
)

func (self Effect) String() string {
    switch self {
        case EffectNone      : return "none"
        case EffectRecursive : return "recursive"
        default              : return "unknown"
    }
}

// Value is an SSA value, produced either by exactly one defining Operation
// or by a Block as one of its arguments. Values are referenced by identity;
// they are owned by their producer and never copied.
type Value struct {
    Name string
    Def  *Operation // defining operation, nil for block arguments
    Blk  *Block     // owning block, nil for operation results
    Idx  int        // result index or block argument index
}

// DefiningBlock returns the block this value becomes available in.
func (self *Value) DefiningBlock() *Block {
    if self.Def != nil {
        return self.Def.block
    } else {
        return self.Blk
    }
}

func (self *Value) String() string {
    return "%" + self.Name
}

// Operation is a single IR operation: an ordered operand list, zero or more
// produced results, and zero or more owned nested regions. Everything about
// an operation other than its connectivity comes from its registered OpSpec.
type Operation struct {
    Name     string
    Operands []*Value
    Results  []*Value
    Regions  []*Region
    IntAttr  int64  // payload for constant-like operations
    SymAttr  string // payload for symbol-like operations
    block    *Block
}

// NewOperation creates a detached operation with nresults fresh results.
// The operation does not belong to any block until it is appended to one.
func NewOperation(name string, args []*Value, nresults int) *Operation {
    p := &Operation{Name: name, Operands: args}
    for i := 0; i < nresults; i++ {
        p.Results = append(p.Results, &Value{Def: p, Idx: i})
    }
    return p
}

// Spec returns the registered OpSpec for this operation name. Unregistered
// operations get the zero spec, which is maximally conservative.
func (self *Operation) Spec() OpSpec {
    return LookupOp(self.Name)
}

// Effect queries the side-effect classification of this operation.
func (self *Operation) Effect() Effect {
    return self.Spec().Effect
}

// IsTerminator reports whether this operation terminates a block.
func (self *Operation) IsTerminator() bool {
    return self.Spec().Terminator
}

// Block returns the block that currently owns this operation, or nil if the
// operation is detached.
func (self *Operation) Block() *Block {
    return self.block
}

// ParentOp returns the operation owning the region that contains this
// operation, or nil at the top of the tree.
func (self *Operation) ParentOp() *Operation {
    if self.block == nil || self.block.region == nil {
        return nil
    } else {
        return self.block.region.owner
    }
}

// IsProperAncestor reports whether self strictly encloses p through the
// region tree.
func (self *Operation) IsProperAncestor(p *Operation) bool {
    for p != nil {
        if p = p.ParentOp(); p == self {
            return true
        }
    }
    return false
}

// AddRegion appends a fresh empty region owned by this operation.
func (self *Operation) AddRegion() *Region {
    rr := &Region{owner: self}
    self.Regions = append(self.Regions, rr)
    return rr
}

// Block is an ordered operation sequence, ending in exactly one terminator
// once construction is complete. It may carry block arguments.
type Block struct {
    Args   []*Value
    Ops    []*Operation
    region *Region
}

// Region returns the region that owns this block.
func (self *Block) Region() *Region {
    return self.region
}

// AddArg appends a new block argument value.
func (self *Block) AddArg(name string) *Value {
    v := &Value{Name: name, Blk: self, Idx: len(self.Args)}
    self.Args = append(self.Args, v)
    return v
}

// Append adds p at the end of the block and claims ownership.
func (self *Block) Append(p *Operation) *Operation {
    p.block = self
    self.Ops = append(self.Ops, p)
    return p
}

// Terminator returns the trailing terminator operation, or nil if the block
// is still under construction or ends in a non-terminator.
func (self *Block) Terminator() *Operation {
    if n := len(self.Ops); n != 0 && self.Ops[n-1].IsTerminator() {
        return self.Ops[n-1]
    } else {
        return nil
    }
}

// BodyOps returns the block's operations excluding the trailing terminator.
func (self *Block) BodyOps() []*Operation {
    if n := len(self.Ops); n != 0 && self.Ops[n-1].IsTerminator() {
        return self.Ops[:n-1]
    } else {
        return self.Ops
    }
}

// Remove detaches p from the block, preserving the order of the rest.
// It reports whether p was actually found in this block.
func (self *Block) Remove(p *Operation) bool {
    for i, q := range self.Ops {
        if q == p {
            self.Ops = append(self.Ops[:i:i], self.Ops[i+1:]...)
            p.block = nil
            return true
        }
    }
    return false
}

// InsertBefore places ops immediately before mark, in the given order.
// It reports whether mark was found in this block.
func (self *Block) InsertBefore(mark *Operation, ops []*Operation) bool {
    for i, q := range self.Ops {
        if q != mark {
            continue
        }
        for _, p := range ops {
            p.block = self
        }
        buf := make([]*Operation, 0, len(self.Ops)+len(ops))
        buf = append(buf, self.Ops[:i]...)
        buf = append(buf, ops...)
        buf = append(buf, self.Ops[i:]...)
        self.Ops = buf
        return true
    }
    return false
}

// Region is an ordered block sequence owned by an enclosing operation.
type Region struct {
    Blocks []*Block
    owner  *Operation
}

// Owner returns the operation this region belongs to.
func (self *Region) Owner() *Operation {
    return self.owner
}

// AddBlock appends a fresh empty block to the region.
func (self *Region) AddBlock() *Block {
    bb := &Block{region: self}
    self.Blocks = append(self.Blocks, bb)
    return bb
}

// Entry returns the first block of the region, or nil when empty.
func (self *Region) Entry() *Block {
    if len(self.Blocks) == 0 {
        return nil
    } else {
        return self.Blocks[0]
    }
}

// Encloses reports whether v is defined somewhere inside this region,
// including transitively inside nested regions.
func (self *Region) Encloses(v *Value) bool {
    for bb := v.DefiningBlock(); bb != nil; {
        if bb.region == self {
            return true
        }
        if p := bb.region.owner; p != nil {
            bb = p.block
        } else {
            bb = nil
        }
    }
    return false
}
