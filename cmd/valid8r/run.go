// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

package main

import (
	"github.com/spf13/cobra"
	"github.com/valid8r/valid8r/internal/pkg/must"
	"github.com/valid8r/valid8r/pkg/config"
)

var runCmd = &cobra.Command{
	Use:   "run PLAN",
	Short: "Run the checks in a YAML validation plan and write the report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defer StartProfile().Stop()
		plan := must.Must1(config.Load(args[0]))
		log.V(1).Info("loaded plan", "plan", args[0], "checks", len(plan.Checks), "report", plan.Report)
		must.Must(plan.Suite().Run())
		log.Info("all validations passed", "report", plan.Report)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
