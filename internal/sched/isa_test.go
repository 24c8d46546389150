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
    `testing`

    `github.com/stretchr/testify/require`
)

func TestCopyVariantResolution(t *testing.T) {
    m := NewModel(FullRate)

    /* narrow copies issue at full rate, wide ones at half rate */
    narrow := Instr{Op: PCOPY, Srcs: []Operand{{File: FileVGPR, Width: 32}}}
    wide := Instr{Op: PCOPY, Srcs: []Operand{{File: FileVGPR, Width: 64}}}
    require.Equal(t, Write32Bit, m.Classify(narrow))
    require.Equal(t, Write64Bit, m.Classify(wide))
    require.Equal(t, 1, m.Resolve(narrow).Latency)
    require.Equal(t, 2, m.Resolve(wide).Latency)

    /* the fallback covers instructions with no inspectable source */
    require.Equal(t, Write64Bit, m.Classify(Instr{Op: PCOPY}))
}

func TestSplatVariantResolution(t *testing.T) {
    m := NewModel(QuarterRate)
    require.Equal(t, WriteSALU, m.Classify(Instr{Op: PSPLAT, Srcs: []Operand{{File: FileSGPR, Width: 32}}}))
    require.Equal(t, Write32Bit, m.Classify(Instr{Op: PSPLAT, Srcs: []Operand{{File: FileVGPR, Width: 32}}}))
}

func TestVariantFirstMatchWins(t *testing.T) {
    /* two cases that both match: declaration order decides */
    v := &WriteVariant {
        Cases: []WriteCase {
            { Kind: WriteSALU  , Pred: func(Instr) bool { return true } },
            { Kind: Write64Bit , Pred: func(Instr) bool { return true } },
            { Kind: Write32Bit },
        },
    }
    require.True(t, v.wellFormed())
    require.Equal(t, WriteSALU, v.resolve(Instr{Op: PCOPY}))

    /* resolution is deterministic across repeated queries */
    for i := 0; i < 16; i++ {
        require.Equal(t, WriteSALU, v.resolve(Instr{Op: PCOPY}))
    }

    /* a list without an unconditional tail is malformed */
    bad := &WriteVariant {
        Cases: []WriteCase {
            { Kind: WriteSALU, Pred: func(Instr) bool { return false } },
        },
    }
    require.False(t, bad.wellFormed())
}

func TestBranchOverride(t *testing.T) {
    /* s_setpc is a scalar-encoded op costed through the branch unit */
    m := NewModel(FullRate)
    require.Equal(t, WriteBranch, m.Classify(Instr{Op: SSETPC}))
    require.Equal(t, []Resource{ResBranch}, m.Resolve(Instr{Op: SSETPC}).Units)

    /* its scalar siblings stay on the scalar ALU */
    require.Equal(t, WriteSALU, m.Classify(Instr{Op: SMOV_B32}))
}

func TestOpcodeNames(t *testing.T) {
    for _, op := range Opcodes() {
        require.NotEmpty(t, op.String(), "opcode %d has no name", op)
        require.NotEqual(t, "op?", op.String())
    }
}
