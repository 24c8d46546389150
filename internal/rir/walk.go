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
    `github.com/oleiade/lane`
)

// OperationIter walks every operation nested under a root in post order:
// an operation is yielded strictly after all operations inside its regions.
// The root itself is yielded last.
type OperationIter struct {
    p *Operation
    s *lane.Stack
    v map[*Operation]struct{}
}

func stacknew(v interface{}) *lane.Stack {
    s := lane.NewStack()
    s.Push(v)
    return s
}

// PostOrder creates a post-order iterator rooted at p.
func PostOrder(p *Operation) *OperationIter {
    return &OperationIter {
        s: stacknew(p),
        v: map[*Operation]struct{}{ p: {} },
    }
}

func (self *OperationIter) Next() bool {
    var tail bool
    var this *Operation

    /* scan until the stack is empty */
    for !self.s.Empty() {
        tail = true
        this = self.s.Head().(*Operation)

        /* push the first unvisited nested operation */
        for _, rr := range this.Regions {
            for _, bb := range rr.Blocks {
                for _, p := range bb.Ops {
                    if _, ok := self.v[p]; !ok {
                        tail = false
                        self.v[p] = struct{}{}
                        self.s.Push(p)
                        break
                    }
                }
                if !tail { break }
            }
            if !tail { break }
        }

        /* all nested operations are visited, pop the current one */
        if tail {
            self.p = self.s.Pop().(*Operation)
            return true
        }
    }

    /* clear the operation pointer to indicate the end of iteration */
    self.p = nil
    return false
}

func (self *OperationIter) Op() *Operation {
    return self.p
}

func (self *OperationIter) ForEach(action func(p *Operation)) {
    for self.Next() {
        action(self.p)
    }
}
