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
    `sync`
)

// OpSpec declares the static properties of an operation name. The operation
// set is open: new names can be registered at any time before IR using them
// is built, which is how out-of-tree dialects extend the system.
type OpSpec struct {
    Effect     Effect
    Terminator bool
    NumRegions int
    HasIntAttr bool
}

var (
    _opmu    sync.RWMutex
    _opspecs = make(map[string]OpSpec, 32)
)

// RegisterOp binds a spec to an operation name. Re-registering a name is a
// programmer error.
func RegisterOp(name string, spec OpSpec) {
    _opmu.Lock()
    defer _opmu.Unlock()
    if _, ok := _opspecs[name]; ok {
        panic(fmt.Sprintf("rir: operation %q registered twice", name))
    }
    _opspecs[name] = spec
}

// LookupOp returns the spec registered for name. Unregistered names yield
// the zero spec: unknown effects, not a terminator.
func LookupOp(name string) OpSpec {
    _opmu.RLock()
    defer _opmu.RUnlock()
    return _opspecs[name]
}

// IsRegistered reports whether name has a registered spec.
func IsRegistered(name string) bool {
    _opmu.RLock()
    defer _opmu.RUnlock()
    _, ok := _opspecs[name]
    return ok
}

/* builtin dialect */
const (
    OpFunc   = "cir.func"
    OpConst  = "cir.const"
    OpAddI   = "cir.addi"
    OpSubI   = "cir.subi"
    OpMulI   = "cir.muli"
    OpCmpI   = "cir.cmpi"
    OpSelect = "cir.select"
    OpLoad   = "cir.load"
    OpStore  = "cir.store"
    OpCall   = "cir.call"
    OpFor    = "cir.for"
    OpWhile  = "cir.while"
    OpIf     = "cir.if"
    OpYield  = "cir.yield"
    OpReturn = "cir.return"
)

func init() {
    RegisterOp(OpFunc   , OpSpec { Effect: EffectUnknown   , NumRegions: 1 })
    RegisterOp(OpConst  , OpSpec { Effect: EffectNone      , HasIntAttr: true })
    RegisterOp(OpAddI   , OpSpec { Effect: EffectNone      })
    RegisterOp(OpSubI   , OpSpec { Effect: EffectNone      })
    RegisterOp(OpMulI   , OpSpec { Effect: EffectNone      })
    RegisterOp(OpCmpI   , OpSpec { Effect: EffectNone      })
    RegisterOp(OpSelect , OpSpec { Effect: EffectNone      })
    RegisterOp(OpLoad   , OpSpec { Effect: EffectUnknown   })
    RegisterOp(OpStore  , OpSpec { Effect: EffectUnknown   })
    RegisterOp(OpCall   , OpSpec { Effect: EffectUnknown   })
    RegisterOp(OpFor    , OpSpec { Effect: EffectRecursive , NumRegions: 1 })
    RegisterOp(OpWhile  , OpSpec { Effect: EffectRecursive , NumRegions: 1 })
    RegisterOp(OpIf     , OpSpec { Effect: EffectRecursive , NumRegions: 2 })
    RegisterOp(OpYield  , OpSpec { Effect: EffectNone      , Terminator: true })
    RegisterOp(OpReturn , OpSpec { Effect: EffectNone      , Terminator: true })
}
