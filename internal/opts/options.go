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

package opts

import (
    `os`
    `strings`
)

var (
    // DebugPasses dumps the IR before and after every optimization pass.
    DebugPasses = boolenv("CIRRUS_DEBUG_PASSES")

    // DisabledPasses lists pass names skipped by the pipeline, comma
    // separated, e.g. CIRRUS_DISABLE_PASSES=licm.
    DisabledPasses = listenv("CIRRUS_DISABLE_PASSES")
)

func boolenv(key string) bool {
    switch strings.ToLower(os.Getenv(key)) {
        case "", "0", "no", "false" : return false
        default                     : return true
    }
}

func listenv(key string) map[string]bool {
    ret := make(map[string]bool)
    for _, s := range strings.Split(os.Getenv(key), ",") {
        if s = strings.TrimSpace(s); s != "" {
            ret[strings.ToLower(s)] = true
        }
    }
    return ret
}
