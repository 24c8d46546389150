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

var _AllVariants = []Variant{FullRate, QuarterRate, SX3}

func TestModelCompleteness(t *testing.T) {
    for _, v := range _AllVariants {
        m := NewModel(v)

        /* every opcode must resolve to exactly one bound category */
        for _, op := range Opcodes() {
            p := Instr{Op: op, Srcs: []Operand{{File: FileVGPR, Width: 32}}}
            kind := m.Classify(p)
            require.NotEqual(t, WriteInvalid, kind, "%s under %s", op, v)
            b := m.Resolve(p)
            require.NotEmpty(t, b.Units, "%s under %s", op, v)
            require.Greater(t, b.Latency, 0, "%s under %s", op, v)
        }
    }
}

func TestRepresentativeLatencies(t *testing.T) {
    cases := []struct {
        kind WriteKind
        lat  [3]int
    }{
        { Write32Bit         , [3]int{1, 1, 5} },
        { Write64Bit         , [3]int{2, 2, 9} },
        { WriteQuarterRate32 , [3]int{4, 4, 17} },
        { WriteBranch        , [3]int{8, 8, 32} },
        { WriteExport        , [3]int{4, 4, 16} },
        { WriteSMEM          , [3]int{5, 5, 20} },
        { WriteLDS           , [3]int{5, 5, 20} },
        { WriteSALU          , [3]int{1, 1, 5} },
        { WriteVMEM          , [3]int{80, 80, 320} },
        { WriteBarrier       , [3]int{500, 500, 2000} },
        { WriteDouble        , [3]int{4, 16, 17} },
        { WriteDoubleAdd     , [3]int{2, 8, 17} },
        { WriteDoubleCvt     , [3]int{4, 4, 17} },
    }
    for _, tc := range cases {
        for i, v := range _AllVariants {
            require.Equal(t, tc.lat[i], NewModel(v).Binding(tc.kind).Latency, "%s under %s", tc.kind, v)
        }
    }
}

func TestResultCacheBinding(t *testing.T) {
    m := NewModel(SX3)

    /* every category consumes the result cache jointly with its unit */
    for _, op := range Opcodes() {
        b := m.Resolve(Instr{Op: op, Srcs: []Operand{{Width: 32}}})
        require.Equal(t, 2, len(b.Units), "%s", op)
        require.Equal(t, ResRC, b.Units[1], "%s", op)
    }

    /* older tiers have no result cache at all */
    require.NotContains(t, NewModel(FullRate).Resources(), ResRC)
    require.NotContains(t, NewModel(QuarterRate).Resources(), ResRC)
    require.Contains(t, m.Resources(), ResRC)
}

func TestResourceBufferDepths(t *testing.T) {
    require.Equal(t, 1, ResBranch.BufferDepth())
    require.Equal(t, 7, ResExport.BufferDepth())
    require.Equal(t, 31, ResLGKM.BufferDepth())
    require.Equal(t, 1, ResSALU.BufferDepth())
    require.Equal(t, 15, ResVMEM.BufferDepth())
    require.Equal(t, 1, ResVALU.BufferDepth())
    require.Equal(t, 1, ResRC.BufferDepth())
}

func TestSingleIssueModel(t *testing.T) {
    for _, v := range _AllVariants {
        m := NewModel(v)
        require.Equal(t, 1, m.IssueWidth())
        require.Equal(t, 1, m.MicroOpBufferSize())
        require.Equal(t, 20, m.MispredictPenalty())
    }
}

func TestReadAdvance(t *testing.T) {
    m := NewModel(FullRate)
    mac := Instr {
        Op   : VMAC_F32,
        Srcs : []Operand{{File: FileVGPR, Width: 32}, {File: FileVGPR, Width: 32}, {File: FileVGPR, Width: 32}},
    }

    /* only the accumulator operand is advanced */
    require.Equal(t, 0, m.ReadAdvance(mac, 0))
    require.Equal(t, 0, m.ReadAdvance(mac, 1))
    require.Equal(t, 1, m.ReadAdvance(mac, 2))

    /* out-of-range and unregistered operands default to zero */
    require.Equal(t, 0, m.ReadAdvance(mac, 3))
    require.Equal(t, 0, m.ReadAdvance(Instr{Op: VADD_F32}, 0))

    /* the advance adjusts operand reads only, never the result latency */
    require.Equal(t, m.Binding(Write32Bit).Latency, m.Resolve(mac).Latency)

    require.Equal(t, 4, NewModel(SX3).ReadAdvance(mac, 2))
    require.Equal(t, 2, m.ReadAdvance(Instr{Op: EXP_MRT, Srcs: []Operand{{File: FileVGPR, Width: 32}}}, 0))
}
