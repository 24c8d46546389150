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
    `fmt`
    `strconv`
    `strings`
)

type printer struct {
    buf   strings.Builder
    next  int
    names map[*Value]string
}

func (self *printer) nameof(v *Value) string {
    if s, ok := self.names[v]; ok {
        return s
    }
    s := v.Name
    if s == "" {
        s = strconv.Itoa(self.next)
        self.next++
    }
    self.names[v] = s
    return s
}

func (self *printer) values(vv []*Value) string {
    ss := make([]string, 0, len(vv))
    for _, v := range vv {
        ss = append(ss, "%"+self.nameof(v))
    }
    return strings.Join(ss, ", ")
}

func (self *printer) printOp(p *Operation, indent int) {
    self.buf.WriteString(strings.Repeat("  ", indent))

    /* results, if any */
    if len(p.Results) != 0 {
        self.buf.WriteString(self.values(p.Results))
        self.buf.WriteString(" = ")
    }

    /* mnemonic and optional symbol */
    self.buf.WriteString(p.Name)
    if p.SymAttr != "" {
        self.buf.WriteString(" @")
        self.buf.WriteString(p.SymAttr)
    }

    /* operands and optional integer attribute */
    if len(p.Operands) != 0 {
        self.buf.WriteString(" ")
        self.buf.WriteString(self.values(p.Operands))
    }
    if p.Spec().HasIntAttr {
        self.buf.WriteString(" ")
        self.buf.WriteString(strconv.FormatInt(p.IntAttr, 10))
    }

    /* nested regions */
    for _, rr := range p.Regions {
        self.printRegion(rr, indent)
    }
    self.buf.WriteString("\n")
}

func (self *printer) printRegion(rr *Region, indent int) {
    for _, bb := range rr.Blocks {
        if len(bb.Args) != 0 {
            self.buf.WriteString(fmt.Sprintf(" (%s)", self.values(bb.Args)))
        }
        self.buf.WriteString(" {\n")
        for _, p := range bb.Ops {
            self.printOp(p, indent+1)
        }
        self.buf.WriteString(strings.Repeat("  ", indent))
        self.buf.WriteString("}")
    }
}

// Print renders the operation tree rooted at p in the textual IR form
// accepted by Parse.
func Print(p *Operation) string {
    pp := printer{names: make(map[*Value]string)}
    pp.printOp(p, 0)
    return pp.buf.String()
}
