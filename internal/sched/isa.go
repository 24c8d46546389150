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

// RegFile is the register file an operand lives in.
type RegFile uint8

const (
    FileSGPR RegFile = iota // scalar registers
    FileVGPR                // vector registers
)

// Operand describes the statically inspectable properties of one source
// operand that resolution predicates may dispatch on.
type Operand struct {
    File  RegFile
    Width uint8 // in bits
}

// Instr is the scheduler's view of one concrete instruction: its opcode and
// its source operand properties.
type Instr struct {
    Op   Opcode
    Srcs []Operand
}

// Opcode enumerates the SX instruction set known to the scheduling model.
type Opcode uint16

const (
    /* scalar ALU */
    SMOV_B32 Opcode = iota
    SMOV_B64
    SADD_U32
    SADDC_U32
    SSUB_U32
    SMUL_I32
    SAND_B32
    SAND_B64
    SOR_B32
    SOR_B64
    SXOR_B32
    SLSHL_B32
    SLSHR_B32
    SASHR_I32
    SMIN_I32
    SMAX_I32
    SCSELECT_B32
    SCMP_EQ_U32
    SCMP_LT_U32
    SSETPC
    SNOP

    /* full-rate vector ALU, 32-bit */
    VMOV_B32
    VADD_F32
    VSUB_F32
    VMUL_F32
    VMAC_F32
    VMIN_F32
    VMAX_F32
    VADD_U32
    VSUB_U32
    VAND_B32
    VOR_B32
    VXOR_B32
    VLSHL_B32
    VLSHR_B32
    VASHR_I32
    VCNDMASK_B32
    VCMP_EQ_F32
    VCMP_LT_F32
    VCVT_F32_I32
    VCVT_I32_F32
    VNOP

    /* half-rate vector ALU, 64-bit */
    VLSHL_B64
    VLSHR_B64
    VASHR_I64
    VCMP_EQ_U64
    VCNDMASK_B64

    /* quarter-rate 32-bit ops */
    VSQRT_F32
    VRCP_F32
    VRSQ_F32
    VLOG_F32
    VEXP_F32
    VSIN_F32
    VCOS_F32
    VMUL_LO_U32
    VMUL_HI_U32

    /* double precision */
    VADD_F64
    VMIN_F64
    VMAX_F64
    VMUL_F64
    VFMA_F64
    VRCP_F64
    VRSQ_F64
    VSQRT_F64
    VCVT_F64_F32
    VCVT_F32_F64
    VCVT_F64_I32
    VCVT_I32_F64

    /* branches */
    SBRANCH
    SCBRANCH_SCC0
    SCBRANCH_SCC1
    SCBRANCH_VCCZ
    SCBRANCH_VCCNZ
    SCBRANCH_EXECZ

    /* exports */
    EXP_POS
    EXP_PARAM
    EXP_MRT
    EXP_MRTZ
    EXP_NULL

    /* scalar memory */
    SLOAD_B32
    SLOAD_B64
    SLOAD_B128
    SLOAD_B256
    SMEMTIME

    /* local data share */
    DSREAD_B32
    DSREAD_B64
    DSWRITE_B32
    DSWRITE_B64
    DSADD_U32

    /* vector memory */
    BUFLOAD_B32
    BUFLOAD_B128
    BUFSTORE_B32
    BUFSTORE_B128
    GLBLOAD_B32
    GLBSTORE_B32
    IMGSAMPLE
    IMGLOAD

    /* synchronization */
    SBARRIER

    /* pseudo instructions, classified by predicate at resolution time */
    PCOPY
    PSPLAT

    numOpcodes
)

var _OpcodeNames = [numOpcodes]string {
    SMOV_B32       : "s_mov_b32",
    SMOV_B64       : "s_mov_b64",
    SADD_U32       : "s_add_u32",
    SADDC_U32      : "s_addc_u32",
    SSUB_U32       : "s_sub_u32",
    SMUL_I32       : "s_mul_i32",
    SAND_B32       : "s_and_b32",
    SAND_B64       : "s_and_b64",
    SOR_B32        : "s_or_b32",
    SOR_B64        : "s_or_b64",
    SXOR_B32       : "s_xor_b32",
    SLSHL_B32      : "s_lshl_b32",
    SLSHR_B32      : "s_lshr_b32",
    SASHR_I32      : "s_ashr_i32",
    SMIN_I32       : "s_min_i32",
    SMAX_I32       : "s_max_i32",
    SCSELECT_B32   : "s_cselect_b32",
    SCMP_EQ_U32    : "s_cmp_eq_u32",
    SCMP_LT_U32    : "s_cmp_lt_u32",
    SSETPC         : "s_setpc",
    SNOP           : "s_nop",
    VMOV_B32       : "v_mov_b32",
    VADD_F32       : "v_add_f32",
    VSUB_F32       : "v_sub_f32",
    VMUL_F32       : "v_mul_f32",
    VMAC_F32       : "v_mac_f32",
    VMIN_F32       : "v_min_f32",
    VMAX_F32       : "v_max_f32",
    VADD_U32       : "v_add_u32",
    VSUB_U32       : "v_sub_u32",
    VAND_B32       : "v_and_b32",
    VOR_B32        : "v_or_b32",
    VXOR_B32       : "v_xor_b32",
    VLSHL_B32      : "v_lshl_b32",
    VLSHR_B32      : "v_lshr_b32",
    VASHR_I32      : "v_ashr_i32",
    VCNDMASK_B32   : "v_cndmask_b32",
    VCMP_EQ_F32    : "v_cmp_eq_f32",
    VCMP_LT_F32    : "v_cmp_lt_f32",
    VCVT_F32_I32   : "v_cvt_f32_i32",
    VCVT_I32_F32   : "v_cvt_i32_f32",
    VNOP           : "v_nop",
    VLSHL_B64      : "v_lshl_b64",
    VLSHR_B64      : "v_lshr_b64",
    VASHR_I64      : "v_ashr_i64",
    VCMP_EQ_U64    : "v_cmp_eq_u64",
    VCNDMASK_B64   : "v_cndmask_b64",
    VSQRT_F32      : "v_sqrt_f32",
    VRCP_F32       : "v_rcp_f32",
    VRSQ_F32       : "v_rsq_f32",
    VLOG_F32       : "v_log_f32",
    VEXP_F32       : "v_exp_f32",
    VSIN_F32       : "v_sin_f32",
    VCOS_F32       : "v_cos_f32",
    VMUL_LO_U32    : "v_mul_lo_u32",
    VMUL_HI_U32    : "v_mul_hi_u32",
    VADD_F64       : "v_add_f64",
    VMIN_F64       : "v_min_f64",
    VMAX_F64       : "v_max_f64",
    VMUL_F64       : "v_mul_f64",
    VFMA_F64       : "v_fma_f64",
    VRCP_F64       : "v_rcp_f64",
    VRSQ_F64       : "v_rsq_f64",
    VSQRT_F64      : "v_sqrt_f64",
    VCVT_F64_F32   : "v_cvt_f64_f32",
    VCVT_F32_F64   : "v_cvt_f32_f64",
    VCVT_F64_I32   : "v_cvt_f64_i32",
    VCVT_I32_F64   : "v_cvt_i32_f64",
    SBRANCH        : "s_branch",
    SCBRANCH_SCC0  : "s_cbranch_scc0",
    SCBRANCH_SCC1  : "s_cbranch_scc1",
    SCBRANCH_VCCZ  : "s_cbranch_vccz",
    SCBRANCH_VCCNZ : "s_cbranch_vccnz",
    SCBRANCH_EXECZ : "s_cbranch_execz",
    EXP_POS        : "exp_pos",
    EXP_PARAM      : "exp_param",
    EXP_MRT        : "exp_mrt",
    EXP_MRTZ       : "exp_mrtz",
    EXP_NULL       : "exp_null",
    SLOAD_B32      : "s_load_b32",
    SLOAD_B64      : "s_load_b64",
    SLOAD_B128     : "s_load_b128",
    SLOAD_B256     : "s_load_b256",
    SMEMTIME       : "s_memtime",
    DSREAD_B32     : "ds_read_b32",
    DSREAD_B64     : "ds_read_b64",
    DSWRITE_B32    : "ds_write_b32",
    DSWRITE_B64    : "ds_write_b64",
    DSADD_U32      : "ds_add_u32",
    BUFLOAD_B32    : "buffer_load_b32",
    BUFLOAD_B128   : "buffer_load_b128",
    BUFSTORE_B32   : "buffer_store_b32",
    BUFSTORE_B128  : "buffer_store_b128",
    GLBLOAD_B32    : "global_load_b32",
    GLBSTORE_B32   : "global_store_b32",
    IMGSAMPLE      : "image_sample",
    IMGLOAD        : "image_load",
    SBARRIER       : "s_barrier",
    PCOPY          : "p_copy",
    PSPLAT         : "p_splat",
}

func (self Opcode) String() string {
    if self < numOpcodes {
        return _OpcodeNames[self]
    } else {
        return "op?"
    }
}

// SchedClass is the declared category of an opcode: either a direct
// WriteKind or a predicate-selected variant.
type SchedClass struct {
    Kind    WriteKind
    Variant *WriteVariant
}

/* p_copy is a register-to-register copy: full rate when the value fits in
 * 32 bits, half rate otherwise */
var _CopyVariant = &WriteVariant {
    Cases: []WriteCase {
        { Kind: Write32Bit, Pred: func(p Instr) bool { return len(p.Srcs) > 0 && p.Srcs[0].Width <= 32 } },
        { Kind: Write64Bit },
    },
}

/* p_splat broadcasts a scalar: issued on the scalar ALU when the source
 * comes from the scalar file, on the vector ALU otherwise */
var _SplatVariant = &WriteVariant {
    Cases: []WriteCase {
        { Kind: WriteSALU, Pred: func(p Instr) bool { return len(p.Srcs) > 0 && p.Srcs[0].File == FileSGPR } },
        { Kind: Write32Bit },
    },
}

var _classes = [numOpcodes]SchedClass {
    SMOV_B32       : { Kind: WriteSALU },
    SMOV_B64       : { Kind: WriteSALU },
    SADD_U32       : { Kind: WriteSALU },
    SADDC_U32      : { Kind: WriteSALU },
    SSUB_U32       : { Kind: WriteSALU },
    SMUL_I32       : { Kind: WriteSALU },
    SAND_B32       : { Kind: WriteSALU },
    SAND_B64       : { Kind: WriteSALU },
    SOR_B32        : { Kind: WriteSALU },
    SOR_B64        : { Kind: WriteSALU },
    SXOR_B32       : { Kind: WriteSALU },
    SLSHL_B32      : { Kind: WriteSALU },
    SLSHR_B32      : { Kind: WriteSALU },
    SASHR_I32      : { Kind: WriteSALU },
    SMIN_I32       : { Kind: WriteSALU },
    SMAX_I32       : { Kind: WriteSALU },
    SCSELECT_B32   : { Kind: WriteSALU },
    SCMP_EQ_U32    : { Kind: WriteSALU },
    SCMP_LT_U32    : { Kind: WriteSALU },
    SSETPC         : { Kind: WriteSALU },
    SNOP           : { Kind: WriteSALU },
    VMOV_B32       : { Kind: Write32Bit },
    VADD_F32       : { Kind: Write32Bit },
    VSUB_F32       : { Kind: Write32Bit },
    VMUL_F32       : { Kind: Write32Bit },
    VMAC_F32       : { Kind: Write32Bit },
    VMIN_F32       : { Kind: Write32Bit },
    VMAX_F32       : { Kind: Write32Bit },
    VADD_U32       : { Kind: Write32Bit },
    VSUB_U32       : { Kind: Write32Bit },
    VAND_B32       : { Kind: Write32Bit },
    VOR_B32        : { Kind: Write32Bit },
    VXOR_B32       : { Kind: Write32Bit },
    VLSHL_B32      : { Kind: Write32Bit },
    VLSHR_B32      : { Kind: Write32Bit },
    VASHR_I32      : { Kind: Write32Bit },
    VCNDMASK_B32   : { Kind: Write32Bit },
    VCMP_EQ_F32    : { Kind: Write32Bit },
    VCMP_LT_F32    : { Kind: Write32Bit },
    VCVT_F32_I32   : { Kind: Write32Bit },
    VCVT_I32_F32   : { Kind: Write32Bit },
    VNOP           : { Kind: Write32Bit },
    VLSHL_B64      : { Kind: Write64Bit },
    VLSHR_B64      : { Kind: Write64Bit },
    VASHR_I64      : { Kind: Write64Bit },
    VCMP_EQ_U64    : { Kind: Write64Bit },
    VCNDMASK_B64   : { Kind: Write64Bit },
    VSQRT_F32      : { Kind: WriteQuarterRate32 },
    VRCP_F32       : { Kind: WriteQuarterRate32 },
    VRSQ_F32       : { Kind: WriteQuarterRate32 },
    VLOG_F32       : { Kind: WriteQuarterRate32 },
    VEXP_F32       : { Kind: WriteQuarterRate32 },
    VSIN_F32       : { Kind: WriteQuarterRate32 },
    VCOS_F32       : { Kind: WriteQuarterRate32 },
    VMUL_LO_U32    : { Kind: WriteQuarterRate32 },
    VMUL_HI_U32    : { Kind: WriteQuarterRate32 },
    VADD_F64       : { Kind: WriteDoubleAdd },
    VMIN_F64       : { Kind: WriteDoubleAdd },
    VMAX_F64       : { Kind: WriteDoubleAdd },
    VMUL_F64       : { Kind: WriteDouble },
    VFMA_F64       : { Kind: WriteDouble },
    VRCP_F64       : { Kind: WriteDouble },
    VRSQ_F64       : { Kind: WriteDouble },
    VSQRT_F64      : { Kind: WriteDouble },
    VCVT_F64_F32   : { Kind: WriteDoubleCvt },
    VCVT_F32_F64   : { Kind: WriteDoubleCvt },
    VCVT_F64_I32   : { Kind: WriteDoubleCvt },
    VCVT_I32_F64   : { Kind: WriteDoubleCvt },
    SBRANCH        : { Kind: WriteBranch },
    SCBRANCH_SCC0  : { Kind: WriteBranch },
    SCBRANCH_SCC1  : { Kind: WriteBranch },
    SCBRANCH_VCCZ  : { Kind: WriteBranch },
    SCBRANCH_VCCNZ : { Kind: WriteBranch },
    SCBRANCH_EXECZ : { Kind: WriteBranch },
    EXP_POS        : { Kind: WriteExport },
    EXP_PARAM      : { Kind: WriteExport },
    EXP_MRT        : { Kind: WriteExport },
    EXP_MRTZ       : { Kind: WriteExport },
    EXP_NULL       : { Kind: WriteExport },
    SLOAD_B32      : { Kind: WriteSMEM },
    SLOAD_B64      : { Kind: WriteSMEM },
    SLOAD_B128     : { Kind: WriteSMEM },
    SLOAD_B256     : { Kind: WriteSMEM },
    SMEMTIME       : { Kind: WriteSMEM },
    DSREAD_B32     : { Kind: WriteLDS },
    DSREAD_B64     : { Kind: WriteLDS },
    DSWRITE_B32    : { Kind: WriteLDS },
    DSWRITE_B64    : { Kind: WriteLDS },
    DSADD_U32      : { Kind: WriteLDS },
    BUFLOAD_B32    : { Kind: WriteVMEM },
    BUFLOAD_B128   : { Kind: WriteVMEM },
    BUFSTORE_B32   : { Kind: WriteVMEM },
    BUFSTORE_B128  : { Kind: WriteVMEM },
    GLBLOAD_B32    : { Kind: WriteVMEM },
    GLBSTORE_B32   : { Kind: WriteVMEM },
    IMGSAMPLE      : { Kind: WriteVMEM },
    IMGLOAD        : { Kind: WriteVMEM },
    SBARRIER       : { Kind: WriteBarrier },
    PCOPY          : { Variant: _CopyVariant },
    PSPLAT         : { Variant: _SplatVariant },
}

/* per-opcode category overrides, consulted before the intrinsic class:
 * s_setpc is encoded as a scalar ALU op but retires through the branch
 * unit, so its cost must follow the branch category */
var _overrides = map[Opcode]SchedClass {
    SSETPC: { Kind: WriteBranch },
}

// classOf returns the declared category of op, override first.
func classOf(op Opcode) SchedClass {
    if cls, ok := _overrides[op]; ok {
        return cls
    }
    return _classes[op]
}

/* operand-read categories, indexed by source operand position; operands
 * beyond the listed ones read at the default time */
var _reads = map[Opcode][]ReadKind {
    VMAC_F32  : { ReadDefault, ReadDefault, ReadMACAccum },
    EXP_POS   : { ReadExportSrc },
    EXP_PARAM : { ReadExportSrc },
    EXP_MRT   : { ReadExportSrc },
    EXP_MRTZ  : { ReadExportSrc },
}

// readKindOf returns the read category of source operand i of op.
func readKindOf(op Opcode, i int) ReadKind {
    if rr, ok := _reads[op]; ok && i >= 0 && i < len(rr) {
        return rr[i]
    }
    return ReadDefault
}
