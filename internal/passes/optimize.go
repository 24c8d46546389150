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
    `github.com/cirrus-ir/cirrus/internal/opts`
    `github.com/cirrus-ir/cirrus/internal/rir`
    log `github.com/sirupsen/logrus`
)

// Pass is a single IR-to-IR transformation applied to one compilation unit.
type Pass interface {
    Name() string
    Apply(root *rir.Operation) error
}

type _PassDescriptor struct {
    pass Pass
    desc string
}

var _passes = [...]_PassDescriptor {
    { desc: "Loop-Invariant Code Motion", pass: LICM{} },
}

// Optimize runs the standard pass pipeline over root, in place. Each pass
// either succeeds or reports an error; a failing pass aborts the pipeline
// but leaves the IR in a consistent, partially optimized state.
func Optimize(root *rir.Operation) error {
    for _, p := range _passes {
        if opts.DisabledPasses[p.pass.Name()] {
            log.Debugf("pass disabled: %s", p.desc)
            continue
        }
        if opts.DebugPasses {
            log.Debugf("IR before %s:\n%s", p.desc, rir.Print(root))
        }
        if err := p.pass.Apply(root); err != nil {
            return err
        }
        if opts.DebugPasses {
            log.Debugf("IR after %s:\n%s", p.desc, rir.Print(root))
        }
    }
    return nil
}
