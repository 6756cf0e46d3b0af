/*
 * options.go, part of dynq.
 *
 * Copyright 2016 The dynq authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package dynq

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/spf13/viper"
)

const (
	defdt       = 0.01
	deflogevery = 1000
)

//Options contains the settings of an Integrator.
type Options struct {
	dt          float64
	logEvery    int //log the progress every this many steps. 0 means never.
	checkFinite bool
	logger      log.Logger
}

//DefaultOptions returns options with a 0.01 time step, progress logged
//every 1000 steps to a logger that discards everything, and finite-state checking on.
func DefaultOptions() *Options {
	r := new(Options)
	r.dt = defdt
	r.logEvery = deflogevery
	r.checkFinite = true
	r.logger = log.NewNopLogger()
	return r
}

//LoadOptions reads the options from a configuration file in any of the formats
//understood by viper (TOML, YAML, JSON...). Keys not in the file keep their default values.
//The recognized keys are integrator.dt, integrator.log_every and integrator.check_finite.
func LoadOptions(path string) (*Options, error) {
	v := viper.New()
	v.SetDefault("integrator.dt", defdt)
	v.SetDefault("integrator.log_every", deflogevery)
	v.SetDefault("integrator.check_finite", true)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, NewError(fmt.Sprintf("can't read configuration %s: %s", path, err.Error()), true, "LoadOptions")
	}
	O := DefaultOptions()
	dt := v.GetFloat64("integrator.dt")
	if dt <= 0 {
		return nil, NewError(fmt.Sprintf("invalid time step %g in %s", dt, path), true, "LoadOptions")
	}
	O.Dt(dt)
	O.logEvery = v.GetInt("integrator.log_every")
	O.checkFinite = v.GetBool("integrator.check_finite")
	return O, nil
}

//Returns the integration time step,
//and sets it to a new value, if a positive one is given.
func (O *Options) Dt(dt ...float64) float64 {
	if len(dt) > 0 && dt[0] > 0 {
		O.dt = dt[0]
	}
	return O.dt
}

//Returns how often (in steps) the progress of a run is logged,
//and sets it to a new value, if given. 0 or less disables the progress log.
func (O *Options) LogEvery(n ...int) int {
	if len(n) > 0 {
		O.logEvery = n[0]
	}
	return O.logEvery
}

//Returns whether the state is checked for NaN/Inf after each step,
//and sets it to a new value, if given.
func (O *Options) CheckFinite(check ...bool) bool {
	if len(check) > 0 {
		O.checkFinite = check[0]
	}
	return O.checkFinite
}

//Returns the logger used by the integrator, and sets it to
//a new one, if a non-nil logger is given.
func (O *Options) Logger(l ...log.Logger) log.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}
