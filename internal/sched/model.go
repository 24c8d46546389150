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

package sched

import (
    `fmt`
)

// Variant selects one of the SX machine-model tiers. The choice is a
// build-time target decision: one model serves a whole compilation.
type Variant uint8

const (
    FullRate    Variant = iota // full-speed parts
    QuarterRate                // quarter-speed double-precision parts
    SX3                        // third generation, with the result cache
)

var _VariantNames = [...]string {
    FullRate    : "sx-full",
    QuarterRate : "sx-quarter",
    SX3         : "sx3",
}

func (self Variant) String() string {
    if int(self) < len(_VariantNames) {
        return _VariantNames[self]
    } else {
        return "sx?"
    }
}

// Model is the complete scheduling model of one machine variant. It is
// built once, validated for completeness, and never mutated afterwards, so
// concurrent compilations may share it read-only.
type Model struct {
    variant  Variant
    writes   [numWriteKinds]Binding
    advances [numReadKinds]int
}

// NewModel builds and validates the scheduling model for v. All three SX
// models are complete: an opcode that fails to resolve is a defect in the
// model tables, reported by panic at construction time rather than deferred
// to compilation.
func NewModel(v Variant) *Model {
    m := &Model{variant: v}
    switch v {
        case FullRate    : m.writes, m.advances = _FullRateWrites, _FullRateAdvances
        case QuarterRate : m.writes, m.advances = _QuarterRateWrites, _QuarterRateAdvances
        case SX3         : m.writes, m.advances = _SX3Writes, _SX3Advances
        default          : panic("sched: unknown machine variant")
    }
    m.validate()
    return m
}

// validate checks model completeness: every opcode must resolve, through
// its variant list if it has one, to exactly one bound category.
func (self *Model) validate() {
    for op := Opcode(0); op < numOpcodes; op++ {
        cls := classOf(op)
        if cls.Variant != nil {
            if !cls.Variant.wellFormed() {
                panic(fmt.Sprintf("sched: %s: variant list lacks an unconditional fallback", op))
            }
            for _, c := range cls.Variant.Cases {
                self.checkBound(op, c.Kind)
            }
        } else {
            self.checkBound(op, cls.Kind)
        }
    }
}

func (self *Model) checkBound(op Opcode, kind WriteKind) {
    if kind == WriteInvalid || kind >= numWriteKinds {
        panic(fmt.Sprintf("sched: %s: unclassified opcode in a complete model", op))
    }
    if b := self.writes[kind]; len(b.Units) == 0 || b.Latency <= 0 {
        panic(fmt.Sprintf("sched: %s: category %s is unbound under %s", op, kind, self.variant))
    }
}

// Variant returns the machine tier this model describes.
func (self *Model) Variant() Variant {
    return self.variant
}

// IssueWidth is the number of instructions issued per cycle.
func (self *Model) IssueWidth() int {
    return 1
}

// MicroOpBufferSize is 1 on every SX part: an issued operation becomes
// scheduler-ready immediately, which exposes it to register-pressure-aware
// reordering by the list scheduler.
func (self *Model) MicroOpBufferSize() int {
    return 1
}

// MispredictPenalty is the fixed mis-speculation cost in cycles.
func (self *Model) MispredictPenalty() int {
    return 20
}

// Resources lists the functional units present on this variant.
func (self *Model) Resources() []Resource {
    ret := []Resource{ResBranch, ResExport, ResLGKM, ResSALU, ResVMEM, ResVALU}
    if self.variant == SX3 {
        ret = append(ret, ResRC)
    }
    return ret
}

// Classify resolves the category of p: explicit override, then intrinsic
// class, then the first matching predicate of a variant list.
func (self *Model) Classify(p Instr) WriteKind {
    cls := classOf(p.Op)
    if cls.Variant != nil {
        return cls.Variant.resolve(p)
    }
    return cls.Kind
}

// Resolve returns the resources consumed by p and the cycle count until its
// result is available.
func (self *Model) Resolve(p Instr) Binding {
    return self.writes[self.Classify(p)]
}

// Binding returns the resource/latency binding of a category directly.
func (self *Model) Binding(kind WriteKind) Binding {
    return self.writes[kind]
}

// ReadAdvance returns the cycle advance for source operand i of p: the
// operand may be required that many cycles later than the producer's full
// latency would imply. It never changes result availability, and it is 0
// for operands with no registered read category.
func (self *Model) ReadAdvance(p Instr, i int) int {
    return self.advances[readKindOf(p.Op, i)]
}

// Opcodes returns every opcode known to the model, for table dumps and
// completeness sweeps.
func Opcodes() []Opcode {
    ret := make([]Opcode, 0, numOpcodes)
    for op := Opcode(0); op < numOpcodes; op++ {
        ret = append(ret, op)
    }
    return ret
}
