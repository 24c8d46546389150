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

/* Latency bindings per machine tier.
 *
 * The memory numbers are nominal: v_mem latency varies wildly with cache
 * behavior, 80 cycles is the no-conflict case. The barrier cost of 500
 * cycles is a guess carried over from the original tuning; do not "improve"
 * it, generated-code performance expectations depend on it. */

var _FullRateWrites = [numWriteKinds]Binding {
    Write32Bit         : { Units: []Resource{ResVALU}   , Latency: 1 },
    Write64Bit         : { Units: []Resource{ResVALU}   , Latency: 2 },
    WriteQuarterRate32 : { Units: []Resource{ResVALU}   , Latency: 4 },
    WriteSALU          : { Units: []Resource{ResSALU}   , Latency: 1 },
    WriteBranch        : { Units: []Resource{ResBranch} , Latency: 8 },
    WriteExport        : { Units: []Resource{ResExport} , Latency: 4 },
    WriteSMEM          : { Units: []Resource{ResLGKM}   , Latency: 5 },
    WriteLDS           : { Units: []Resource{ResLGKM}   , Latency: 5 },
    WriteVMEM          : { Units: []Resource{ResVMEM}   , Latency: 80 },
    WriteBarrier       : { Units: []Resource{ResBranch} , Latency: 500 },
    WriteDoubleAdd     : { Units: []Resource{ResVALU}   , Latency: 2 },
    WriteDouble        : { Units: []Resource{ResVALU}   , Latency: 4 },
    WriteDoubleCvt     : { Units: []Resource{ResVALU}   , Latency: 4 },
}

/* quarter-speed parts differ from full speed only in double-precision rate */
var _QuarterRateWrites = [numWriteKinds]Binding {
    Write32Bit         : { Units: []Resource{ResVALU}   , Latency: 1 },
    Write64Bit         : { Units: []Resource{ResVALU}   , Latency: 2 },
    WriteQuarterRate32 : { Units: []Resource{ResVALU}   , Latency: 4 },
    WriteSALU          : { Units: []Resource{ResSALU}   , Latency: 1 },
    WriteBranch        : { Units: []Resource{ResBranch} , Latency: 8 },
    WriteExport        : { Units: []Resource{ResExport} , Latency: 4 },
    WriteSMEM          : { Units: []Resource{ResLGKM}   , Latency: 5 },
    WriteLDS           : { Units: []Resource{ResLGKM}   , Latency: 5 },
    WriteVMEM          : { Units: []Resource{ResVMEM}   , Latency: 80 },
    WriteBarrier       : { Units: []Resource{ResBranch} , Latency: 500 },
    WriteDoubleAdd     : { Units: []Resource{ResVALU}   , Latency: 8 },
    WriteDouble        : { Units: []Resource{ResVALU}   , Latency: 16 },
    WriteDoubleCvt     : { Units: []Resource{ResVALU}   , Latency: 4 },
}

/* the third generation retires results through a shared result cache: every
 * category occupies its compute unit and HWRC jointly, and the latencies
 * are expressed in the faster clock domain, hence uniformly larger */
var _SX3Writes = [numWriteKinds]Binding {
    Write32Bit         : { Units: []Resource{ResVALU, ResRC}   , Latency: 5 },
    Write64Bit         : { Units: []Resource{ResVALU, ResRC}   , Latency: 9 },
    WriteQuarterRate32 : { Units: []Resource{ResVALU, ResRC}   , Latency: 17 },
    WriteSALU          : { Units: []Resource{ResSALU, ResRC}   , Latency: 5 },
    WriteBranch        : { Units: []Resource{ResBranch, ResRC} , Latency: 32 },
    WriteExport        : { Units: []Resource{ResExport, ResRC} , Latency: 16 },
    WriteSMEM          : { Units: []Resource{ResLGKM, ResRC}   , Latency: 20 },
    WriteLDS           : { Units: []Resource{ResLGKM, ResRC}   , Latency: 20 },
    WriteVMEM          : { Units: []Resource{ResVMEM, ResRC}   , Latency: 320 },
    WriteBarrier       : { Units: []Resource{ResBranch, ResRC} , Latency: 2000 },
    WriteDoubleAdd     : { Units: []Resource{ResVALU, ResRC}   , Latency: 17 },
    WriteDouble        : { Units: []Resource{ResVALU, ResRC}   , Latency: 17 },
    WriteDoubleCvt     : { Units: []Resource{ResVALU, ResRC}   , Latency: 17 },
}

/* Read advances: the MAC accumulator is latched one stage late, so its
 * producer may still be in flight when the MAC issues; export sources are
 * copied out early by the export unit. */

var _FullRateAdvances = [numReadKinds]int {
    ReadMACAccum  : 1,
    ReadExportSrc : 2,
}

var _QuarterRateAdvances = [numReadKinds]int {
    ReadMACAccum  : 1,
    ReadExportSrc : 2,
}

var _SX3Advances = [numReadKinds]int {
    ReadMACAccum  : 4,
    ReadExportSrc : 8,
}
