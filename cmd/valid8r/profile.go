// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

package main

import (
	"maps"
	"os"
	"slices"

	"github.com/pkg/profile"
	"github.com/valid8r/valid8r/internal/pkg/enumflag"
)

const (
	profileEnv     = "VALID8R_PROFILE"
	profilePathEnv = "VALID8R_PROFILE_PATH"
)

var (
	profileTypes = map[string]func(*profile.Profile){
		"cpu":   profile.CPUProfile,
		"mem":   profile.MemProfile,
		"alloc": profile.MemProfileAllocs,
		"heap":  profile.MemProfileHeap,
		"trace": profile.TraceProfile,
	}
	profileTypeFlag = enumflag.New(os.Getenv(profileEnv), slices.Collect(maps.Keys(profileTypes)))
	profilePathFlag = rootCmd.PersistentFlags().String("profilePath", os.Getenv(profilePathEnv), "Output path for profile")
)

func init() {
	rootCmd.PersistentFlags().Var(profileTypeFlag, "profile", profileTypeFlag.DocString("Enable profiling"))
}

type noopStop struct{}

func (noopStop) Stop() {}

func StartProfile() interface{ Stop() } {
	if opt, ok := profileTypes[profileTypeFlag.String()]; ok {
		if *profilePathFlag == "" {
			*profilePathFlag = "."
		}
		return profile.Start(profile.ProfilePath(*profilePathFlag), opt)
	}
	return noopStop{}
}
