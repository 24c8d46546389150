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
    `testing`

    `github.com/cirrus-ir/cirrus/internal/rir`
    `github.com/stretchr/testify/require`
)

func TestLoopRegistry(t *testing.T) {
    _, ok := LookupLoop(rir.NewOperation(rir.OpAddI, nil, 1))
    require.False(t, ok)

    p := rir.NewOperation(rir.OpFor, nil, 1)
    p.AddRegion().AddBlock()
    lp, ok := LookupLoop(p)
    require.True(t, ok)
    require.Same(t, p.Regions[0], lp.LoopBody())
}

func TestIsDefinedOutsideOfLoop(t *testing.T) {
    _, bb := rir.NewFunc("f", 1)
    arg := bb.Args[0]
    b := rir.Build(bb)
    c := b.Const(4)
    p, lb := b.Loop(rir.OpWhile, 1, c)
    iv := lb.Block().Args[0]
    x := lb.Op(rir.OpAddI, iv, arg)
    lb.Emit(rir.OpYield, 0, x)

    lp, ok := LookupLoop(p)
    require.True(t, ok)
    require.True(t, lp.IsDefinedOutsideOfLoop(arg))
    require.True(t, lp.IsDefinedOutsideOfLoop(c))
    require.False(t, lp.IsDefinedOutsideOfLoop(iv))
    require.False(t, lp.IsDefinedOutsideOfLoop(x))
}

func TestMoveOutOfDetachedLoop(t *testing.T) {
    p := rir.NewOperation(rir.OpFor, nil, 1)
    bb := p.AddRegion().AddBlock()
    q := bb.Append(rir.NewOperation(rir.OpConst, nil, 1))

    lp, ok := LookupLoop(p)
    require.True(t, ok)
    require.ErrorIs(t, lp.MoveOutOfLoop([]*rir.Operation{q}), ErrNoParent)

    /* the refused batch must stay untouched */
    require.Equal(t, 1, len(bb.Ops))
    require.Same(t, bb, q.Block())
}
