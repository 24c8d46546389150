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
    `fmt`

    `github.com/cirrus-ir/cirrus/internal/opts`
    `github.com/cirrus-ir/cirrus/internal/rir`
    `github.com/davecgh/go-spew/spew`
    log `github.com/sirupsen/logrus`
)

// LICM hoists loop-invariant operations out of every loop found under the
// root operation.
//
// Loops are visited innermost first: invariants of an inner loop land just
// before it, inside the enclosing loop, where the subsequent visit of the
// outer loop can hoist them again if they are invariant there too. A single
// bottom-up walk therefore needs no fixed-point iteration.
type LICM struct{}

// canHoist reports whether p may execute before the loop: every operand must
// satisfy outside, and p must be provably free of side effects. Operations
// with recursively-determined effects are legal only if every non-terminator
// operation in their nested regions passes the same test in place.
func canHoist(p *rir.Operation, outside func(*rir.Value) bool) bool {
    for _, v := range p.Operands {
        if !outside(v) {
            return false
        }
    }

    /* effect classification decides the rest: unknown is never hoistable */
    switch p.Effect() {
        case rir.EffectNone      : return true
        case rir.EffectRecursive : break
        default                  : return false
    }

    /* a single disqualified nested operation disqualifies the owner */
    for _, rr := range p.Regions {
        for _, bb := range rr.Blocks {
            for _, q := range bb.BodyOps() {
                if !canHoist(q, outside) {
                    return false
                }
            }
        }
    }
    return true
}

// hoistLoopInvariants scans one loop body in program order, collects every
// hoistable operation, and relocates the batch before the loop in one move.
func hoistLoopInvariants(lp LoopLike) error {
    moved := make(map[*rir.Operation]struct{}, 8)
    hoist := make([]*rir.Operation, 0, 8)

    /* operations already selected in this batch count as defined outside,
     * so a dependency chain of invariants hoists in a single scan */
    outside := func(v *rir.Value) bool {
        if d := v.Def; d != nil {
            if _, ok := moved[d]; ok {
                return true
            }
        }
        return lp.IsDefinedOutsideOfLoop(v)
    }

    /* do not walk into nested regions here: their semantics belong to the
     * enclosing operation, and nested loops have already been visited */
    for _, bb := range lp.LoopBody().Blocks {
        for _, p := range bb.BodyOps() {
            if canHoist(p, outside) {
                hoist = append(hoist, p)
                moved[p] = struct{}{}
            }
        }
    }

    /* relocate the whole batch at once, preserving relative order */
    if len(hoist) == 0 {
        return nil
    }
    if opts.DebugPasses {
        names := make([]string, 0, len(hoist))
        for _, p := range hoist {
            names = append(names, p.Name)
        }
        log.Debugf("licm: batch %s", spew.Sdump(names))
    }
    log.Debugf("licm: hoisting %d operation(s)", len(hoist))
    return lp.MoveOutOfLoop(hoist)
}

func (LICM) Name() string {
    return "licm"
}

// Apply visits every registered loop operation under root in post order and
// hoists its invariants. A relocation failure marks the pass as failed but
// does not stop the walk: remaining loops are still processed, and already
// completed hoists stay in place.
func (LICM) Apply(root *rir.Operation) error {
    var nfail int
    rir.PostOrder(root).ForEach(func(p *rir.Operation) {
        lp, ok := LookupLoop(p)
        if !ok {
            return
        }
        if err := hoistLoopInvariants(lp); err != nil {
            nfail++
            log.Errorf("licm: cannot hoist out of %s: %v", p.Name, err)
        }
    })
    if nfail != 0 {
        return fmt.Errorf("licm: relocation failed for %d loop(s)", nfail)
    }
    return nil
}
