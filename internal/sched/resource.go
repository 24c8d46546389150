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

// Resource identifies an abstract hardware functional unit. Each unit has a
// fixed buffer depth: the number of operations it can hold in flight before
// issue stalls.
type Resource uint8

const (
    ResBranch Resource = iota // branch unit
    ResExport                 // export unit
    ResLGKM                   // scalar memory & LDS port
    ResSALU                   // scalar ALU
    ResVMEM                   // vector memory port
    ResVALU                   // vector ALU
    ResRC                     // result cache, SX3 only
    numResources
)

type _ResourceInfo struct {
    name  string
    depth int
}

var _resources = [numResources]_ResourceInfo {
    ResBranch : { name: "HWBranch" , depth: 1 },
    ResExport : { name: "HWExport" , depth: 7 },
    ResLGKM   : { name: "HWLGKM"   , depth: 31 },
    ResSALU   : { name: "HWSALU"   , depth: 1 },
    ResVMEM   : { name: "HWVMEM"   , depth: 15 },
    ResVALU   : { name: "HWVALU"   , depth: 1 },
    ResRC     : { name: "HWRC"     , depth: 1 },
}

func (self Resource) String() string {
    if self < numResources {
        return _resources[self].name
    } else {
        return "HW?"
    }
}

// BufferDepth returns the in-flight operation capacity of the unit.
func (self Resource) BufferDepth() int {
    return _resources[self].depth
}
