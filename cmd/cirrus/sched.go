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

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/cirrus-ir/cirrus/internal/sched"
	"github.com/spf13/cobra"
)

var schedCmd = &cobra.Command{
	Use:   "sched [mnemonic...]",
	Short: "Dump the scheduling model of one machine variant.",
	Long:  "Prints the resource/latency binding of every opcode under the selected machine variant, or of the named mnemonics only.",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("variant")
		variant, err := variantByName(name)
		if err != nil {
			return err
		}

		model := sched.NewModel(variant)
		want := make(map[string]bool, len(args))
		for _, s := range args {
			want[s] = true
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 2, ' ', 0)
		fmt.Fprintf(w, "OPCODE\tCATEGORY\tUNITS\tLATENCY\n")
		for _, op := range sched.Opcodes() {
			if len(want) != 0 && !want[op.String()] {
				continue
			}
			in := sched.Instr{Op: op, Srcs: []sched.Operand{{File: sched.FileVGPR, Width: 32}}}
			b := model.Resolve(in)
			units := make([]string, 0, len(b.Units))
			for _, u := range b.Units {
				units = append(units, u.String())
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", op, model.Classify(in), strings.Join(units, "+"), b.Latency)
		}
		return w.Flush()
	},
}

func variantByName(name string) (sched.Variant, error) {
	for _, v := range []sched.Variant{sched.FullRate, sched.QuarterRate, sched.SX3} {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown machine variant %q", name)
}

func init() {
	schedCmd.Flags().String("variant", "sx-full", "machine variant: sx-full, sx-quarter or sx3")
	rootCmd.AddCommand(schedCmd)
}
