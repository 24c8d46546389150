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

// WriteKind is a cost-modeling category: a named class of instruction
// behavior that many concrete instructions map onto. The zero value means
// "unclassified" and must never survive model validation.
type WriteKind uint8

const (
    WriteInvalid       WriteKind = iota
    Write32Bit                   // full-rate 32-bit vector ALU op
    Write64Bit                   // half-rate 64-bit vector ALU op
    WriteQuarterRate32           // quarter-rate 32-bit vector op
    WriteSALU                    // scalar ALU op
    WriteBranch                  // branch or jump
    WriteExport                  // export
    WriteSMEM                    // scalar memory op
    WriteLDS                     // local data share op
    WriteVMEM                    // vector memory op
    WriteBarrier                 // whole-group barrier
    WriteDoubleAdd               // double-precision add/min/max
    WriteDouble                  // other double-precision op
    WriteDoubleCvt               // double-precision conversion
    numWriteKinds
)

var _WriteNames = [numWriteKinds]string {
    WriteInvalid       : "WriteInvalid",
    Write32Bit         : "Write32Bit",
    Write64Bit         : "Write64Bit",
    WriteQuarterRate32 : "WriteQuarterRate32",
    WriteSALU          : "WriteSALU",
    WriteBranch        : "WriteBranch",
    WriteExport        : "WriteExport",
    WriteSMEM          : "WriteSMEM",
    WriteLDS           : "WriteLDS",
    WriteVMEM          : "WriteVMEM",
    WriteBarrier       : "WriteBarrier",
    WriteDoubleAdd     : "WriteDoubleAdd",
    WriteDouble        : "WriteDouble",
    WriteDoubleCvt     : "WriteDoubleCvt",
}

func (self WriteKind) String() string {
    if self < numWriteKinds {
        return _WriteNames[self]
    } else {
        return "Write?"
    }
}

// ReadKind names an operand-read category subject to a read advance: a
// signed cycle adjustment to when the operand value must be available,
// never to when a result is produced.
type ReadKind uint8

const (
    ReadDefault  ReadKind = iota
    ReadMACAccum          // accumulator source of multiply-accumulate ops
    ReadExportSrc         // register source of export ops
    numReadKinds
)

// Binding is the cost of one category under one machine model: the ordered
// resource list the operation occupies and the cycle count until its result
// is available.
type Binding struct {
    Units   []Resource
    Latency int
}

// WriteCase is one predicate entry of a WriteVariant. A nil predicate always
// matches; exactly one such entry terminates every variant list.
type WriteCase struct {
    Pred func(Instr) bool
    Kind WriteKind
}

// WriteVariant selects among categories at resolution time, first match
// wins. Predicates are pure functions over statically inspectable operand
// properties; evaluation order is declaration order.
type WriteVariant struct {
    Cases []WriteCase
}

func (self *WriteVariant) resolve(p Instr) WriteKind {
    for _, c := range self.Cases {
        if c.Pred == nil || c.Pred(p) {
            return c.Kind
        }
    }
    return WriteInvalid
}

// wellFormed reports whether the variant ends in an unconditional fallback,
// making the list total.
func (self *WriteVariant) wellFormed() bool {
    n := len(self.Cases)
    return n != 0 && self.Cases[n-1].Pred == nil
}
