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
	"io"
	"os"

	"github.com/cirrus-ir/cirrus/internal/passes"
	"github.com/cirrus-ir/cirrus/internal/rir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var optCmd = &cobra.Command{
	Use:   "opt [file]",
	Short: "Run the optimization pipeline over a textual IR file.",
	Long:  "Parses a function in textual IR form, runs the pass pipeline and prints the optimized function. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src []byte
		var err error
		if len(args) == 0 {
			src, err = io.ReadAll(os.Stdin)
		} else {
			src, err = os.ReadFile(args[0])
		}
		if err != nil {
			return err
		}

		fn, err := rir.Parse(string(src))
		if err != nil {
			return err
		}
		if err := passes.Optimize(fn); err != nil {
			log.Errorf("optimization failed: %v", err)
			return err
		}
		fmt.Print(rir.Print(fn))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optCmd)
}
