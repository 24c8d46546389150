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

func parsefn(t *testing.T, src string) *rir.Operation {
    fn, err := rir.Parse(src)
    require.NoError(t, err)
    return fn
}

func opindex(t *testing.T, bb *rir.Block, p *rir.Operation) int {
    for i, q := range bb.Ops {
        if q == p {
            return i
        }
    }
    t.Fatalf("operation %s not found in block", p.Name)
    return -1
}

func findloop(t *testing.T, root *rir.Operation) *rir.Operation {
    var ret *rir.Operation
    rir.PostOrder(root).ForEach(func(p *rir.Operation) {
        if _, ok := LookupLoop(p); ok && ret == nil {
            ret = p
        }
    })
    require.NotNil(t, ret)
    return ret
}

func TestHoistInvariantOp(t *testing.T) {
    fn := parsefn(t, `
cir.func @f (%a, %b) {
  %n = cir.const 10
  %r = cir.for %n (%i) {
    %x = cir.addi %a, %b
    %y = cir.muli %x, %i
    cir.yield %y
  }
  cir.return %r
}
`)
    require.NoError(t, LICM{}.Apply(fn))

    bb := fn.Regions[0].Entry()
    lp := findloop(t, fn)
    body := lp.Regions[0].Entry()

    /* the invariant addi sits immediately before the loop */
    require.Equal(t, 4, len(bb.Ops))
    require.Equal(t, rir.OpAddI, bb.Ops[1].Name)
    require.Equal(t, opindex(t, bb, lp)-1, opindex(t, bb, bb.Ops[1]))

    /* the variant muli stays inside */
    require.Equal(t, 2, len(body.Ops))
    require.Equal(t, rir.OpMulI, body.Ops[0].Name)
}

func TestHoistDependencyChainInOrder(t *testing.T) {
    fn := parsefn(t, `
cir.func @f (%a, %b) {
  %n = cir.const 10
  %r = cir.for %n (%i) {
    %x = cir.addi %a, %b
    %y = cir.muli %x, %a
    cir.yield %y
  }
  cir.return %r
}
`)
    require.NoError(t, LICM{}.Apply(fn))

    /* both hoist in one pass, original order preserved */
    bb := fn.Regions[0].Entry()
    lp := findloop(t, fn)
    require.Equal(t, rir.OpAddI, bb.Ops[1].Name)
    require.Equal(t, rir.OpMulI, bb.Ops[2].Name)
    require.Equal(t, 3, opindex(t, bb, lp))
    require.Equal(t, 1, len(lp.Regions[0].Entry().Ops))
}

func TestLoopVariantOperandBlocksHoist(t *testing.T) {
    fn := parsefn(t, `
cir.func @f (%a) {
  %n = cir.const 10
  %r = cir.for %n (%i) {
    %x = cir.addi %a, %i
    cir.yield %x
  }
  cir.return %r
}
`)
    require.NoError(t, LICM{}.Apply(fn))

    /* one variant operand disqualifies regardless of the other */
    lp := findloop(t, fn)
    require.Equal(t, 2, len(lp.Regions[0].Entry().Ops))
}

func TestSideEffectsBlockHoist(t *testing.T) {
    fn := parsefn(t, `
cir.func @f (%a, %p) {
  %n = cir.const 10
  %r = cir.for %n (%i) {
    cir.store %a, %p
    %v = cir.load %p
    %w = cir.call %a
    cir.yield %v
  }
  cir.return %r
}
`)
    require.NoError(t, LICM{}.Apply(fn))

    /* unknown effects are never hoistable, invariant operands or not */
    lp := findloop(t, fn)
    require.Equal(t, 4, len(lp.Regions[0].Entry().Ops))
}

func TestNestedRegionLegality(t *testing.T) {
    pure := parsefn(t, `
cir.func @f (%p, %a, %b) {
  %n = cir.const 10
  %r = cir.for %n (%i) {
    %v = cir.if %p {
      %x = cir.addi %a, %b
      cir.yield %x
    } {
      cir.yield %a
    }
    cir.yield %v
  }
  cir.return %r
}
`)
    require.NoError(t, LICM{}.Apply(pure))

    /* every nested operation is legal, so the whole cir.if hoists */
    bb := pure.Regions[0].Entry()
    require.Equal(t, rir.OpIf, bb.Ops[1].Name)
    require.Equal(t, 1, len(findloop(t, pure).Regions[0].Entry().Ops))

    dirty := parsefn(t, `
cir.func @f (%p, %a) {
  %n = cir.const 10
  %r = cir.for %n (%i) {
    %v = cir.if %p {
      cir.store %a, %p
      cir.yield %a
    } {
      cir.yield %a
    }
    cir.yield %v
  }
  cir.return %r
}
`)
    require.NoError(t, LICM{}.Apply(dirty))

    /* a single disqualifying nested operation blocks the parent */
    lp := findloop(t, dirty)
    require.Equal(t, 2, len(lp.Regions[0].Entry().Ops))
    require.Equal(t, rir.OpIf, lp.Regions[0].Entry().Ops[0].Name)
}

func TestNestedLoopsHoistBottomUp(t *testing.T) {
    fn := parsefn(t, `
cir.func @f (%a, %b) {
  %n = cir.const 10
  %r = cir.for %n (%i) {
    %s = cir.for %n (%j) {
      %x = cir.addi %a, %b
      %y = cir.muli %x, %b
      %z = cir.addi %y, %j
      cir.yield %z
    }
    cir.yield %s
  }
  cir.return %r
}
`)
    require.NoError(t, LICM{}.Apply(fn))

    /* x and y escape the inner loop first, then the outer loop, in one
     * bottom-up application; z stays with the inner loop */
    bb := fn.Regions[0].Entry()
    require.Equal(t, 5, len(bb.Ops))
    require.Equal(t, rir.OpConst, bb.Ops[0].Name)
    require.Equal(t, rir.OpAddI, bb.Ops[1].Name)
    require.Equal(t, rir.OpMulI, bb.Ops[2].Name)
    require.Equal(t, rir.OpFor, bb.Ops[3].Name)

    outer := bb.Ops[3]
    inner := outer.Regions[0].Entry().Ops[0]
    require.Equal(t, rir.OpFor, inner.Name)
    require.Equal(t, 2, len(inner.Regions[0].Entry().Ops))
    require.Equal(t, rir.OpAddI, inner.Regions[0].Entry().Ops[0].Name)
}

/* failLoop refuses every relocation, standing in for a structurally
 * constrained loop construct */
type failLoop struct {
    regionLoop
}

func (failLoop) MoveOutOfLoop([]*rir.Operation) error {
    return ErrNoParent
}

func init() {
    rir.RegisterOp("test.failloop", rir.OpSpec{Effect: rir.EffectRecursive, NumRegions: 1})
    RegisterLoop("test.failloop", func(p *rir.Operation) LoopLike {
        return failLoop{regionLoop{p}}
    })
}

func TestRelocationFailureIsPerLoop(t *testing.T) {
    fn := parsefn(t, `
cir.func @f (%a, %b) {
  %n = cir.const 10
  %r = test.failloop %n (%i) {
    %x = cir.addi %a, %b
    cir.yield %x
  }
  %s = cir.for %n (%j) {
    %y = cir.muli %a, %b
    cir.yield %y
  }
  cir.return %s
}
`)
    err := LICM{}.Apply(fn)
    require.Error(t, err)
    require.Contains(t, err.Error(), "1 loop(s)")

    /* the failing loop keeps its body, the healthy loop still hoists */
    bb := fn.Regions[0].Entry()
    bad := bb.Ops[1]
    require.Equal(t, "test.failloop", bad.Name)
    require.Equal(t, 2, len(bad.Regions[0].Entry().Ops))
    require.Equal(t, rir.OpMulI, bb.Ops[2].Name)
}
