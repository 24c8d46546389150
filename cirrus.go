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

// Package cirrus exposes the mid-end as a textual-IR pipeline: parse one
// top-level function, run the optimization passes in place, print the
// result. Tooling that wants structured access uses the internal packages
// through cmd/cirrus instead.
package cirrus

import (
    `github.com/cirrus-ir/cirrus/internal/passes`
    `github.com/cirrus-ir/cirrus/internal/rir`
)

// OptimizeText runs the standard pass pipeline over src and returns the
// optimized program in the same textual form.
func OptimizeText(src string) (string, error) {
    fn, err := rir.Parse(src)
    if err != nil {
        return "", err
    }
    if err = passes.Optimize(fn); err != nil {
        return "", err
    }
    return rir.Print(fn), nil
}
