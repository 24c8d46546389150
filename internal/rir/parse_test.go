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

import (
    `testing`

    `github.com/stretchr/testify/require`
)

const _SrcLoop = `
cir.func @main (%a, %b) {
  %c = cir.const 42
  %s = cir.for %a, %b (%i) {
    %t = cir.addi %c, %a
    %u = cir.muli %t, %i
    cir.yield %u
  }
  cir.return %s
}
`

func TestParseLoopFunc(t *testing.T) {
    fn, err := Parse(_SrcLoop)
    require.NoError(t, err)
    require.Equal(t, OpFunc, fn.Name)
    require.Equal(t, "main", fn.SymAttr)

    bb := fn.Regions[0].Entry()
    require.Equal(t, 2, len(bb.Args))
    require.Equal(t, 3, len(bb.Ops))

    cst := bb.Ops[0]
    require.Equal(t, OpConst, cst.Name)
    require.Equal(t, int64(42), cst.IntAttr)

    lp := bb.Ops[1]
    require.Equal(t, OpFor, lp.Name)
    require.Equal(t, 2, len(lp.Operands))
    require.Same(t, bb.Args[0], lp.Operands[0])
    require.Same(t, bb.Args[1], lp.Operands[1])
    require.Equal(t, 1, len(lp.Regions))

    body := lp.Regions[0].Entry()
    require.Equal(t, 1, len(body.Args))
    require.Equal(t, 3, len(body.Ops))
    require.Equal(t, OpYield, body.Terminator().Name)

    add := body.Ops[0]
    require.Same(t, cst.Results[0], add.Operands[0])
    mul := body.Ops[1]
    require.Same(t, add.Results[0], mul.Operands[0])
    require.Same(t, body.Args[0], mul.Operands[1])

    ret := bb.Ops[2]
    require.Equal(t, OpReturn, ret.Name)
    require.Same(t, lp.Results[0], ret.Operands[0])
}

func TestParseTwoRegionIf(t *testing.T) {
    fn, err := Parse(`
cir.func @f (%p, %x) {
  %r = cir.if %p {
    cir.yield %x
  } {
    %z = cir.const 0
    cir.yield %z
  }
  cir.return %r
}
`)
    require.NoError(t, err)
    cond := fn.Regions[0].Entry().Ops[0]
    require.Equal(t, OpIf, cond.Name)
    require.Equal(t, 2, len(cond.Regions))
    require.Equal(t, 1, len(cond.Regions[0].Entry().Ops))
    require.Equal(t, 2, len(cond.Regions[1].Entry().Ops))
}

func TestParseComments(t *testing.T) {
    fn, err := Parse(`
; a constant function
cir.func @k {
  %c = cir.const -7 ; negative attr
  cir.return %c
}
`)
    require.NoError(t, err)
    require.Equal(t, int64(-7), fn.Regions[0].Entry().Ops[0].IntAttr)
}

func TestParseErrors(t *testing.T) {
    cases := []struct {
        src    string
        reason string
    }{
        { "cir.func @f {\n %x = cir.addi %y\n}"    , "use of undefined value" },
        { "cir.func @f {\n %a = cir.const 1\n %a = cir.const 2\n}" , "redefinition" },
        { "cir.func @f {\n cir.return"             , `"}" expected` },
        { "%x cir.const 1"                         , `"=" expected` },
    }
    for _, tc := range cases {
        _, err := Parse(tc.src)
        require.Error(t, err, tc.src)
        require.Contains(t, err.Error(), tc.reason)
    }
}

func TestPrintRoundTrip(t *testing.T) {
    fn, err := Parse(_SrcLoop)
    require.NoError(t, err)
    out := Print(fn)

    /* the printed form must parse back into an identical structure */
    fn2, err := Parse(out)
    require.NoError(t, err)
    require.Equal(t, Print(fn2), out)
}
