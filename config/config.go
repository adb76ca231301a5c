// Copyright 2020 Coinbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the environment-driven settings a CCLang host
// process needs to construct a Machine: where its signature cache lives,
// which script versions it accepts, and how verbosely it logs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/blang/semver/v4"
)

const (
	// allFilePermissions grants full access to the sig cache directory,
	// matching the permissiveness a single-tenant host process needs.
	allFilePermissions = 0777

	// SigCacheDirEnv names the directory a host's signature-verification
	// cache is stored under. Empty or unset runs the cache in-memory.
	SigCacheDirEnv = "CCLANG_SIGCACHE_DIR"

	// VersionRequirementEnv names the semver range scripts' VERSION
	// opcode is checked against. Unset accepts every version.
	VersionRequirementEnv = "CCLANG_VERSION_REQUIREMENT"

	// LogLevelEnv selects the zap log level: debug, info, warn, or
	// error. Unset defaults to info.
	LogLevelEnv = "CCLANG_LOG_LEVEL"
)

// Configuration holds the settings a host reads once at startup and
// passes to NewMachine via its MachineOptions.
type Configuration struct {
	SigCacheDir        string
	VersionRequirement semver.Range
	LogLevel           string
}

// Load builds a Configuration from the process environment, validating
// the version requirement (if set) and defaulting the log level to
// info. baseDirectory anchors a relative CCLANG_SIGCACHE_DIR.
func Load(baseDirectory string) (*Configuration, error) {
	cfg := &Configuration{
		LogLevel: "info",
	}

	if dir := os.Getenv(SigCacheDirEnv); dir != "" {
		if !path.IsAbs(dir) {
			dir = path.Join(baseDirectory, dir)
		}
		if err := ensurePathExists(dir); err != nil {
			return nil, fmt.Errorf("%w: unable to create sig cache directory", err)
		}
		cfg.SigCacheDir = dir
	}

	if reqValue := os.Getenv(VersionRequirementEnv); reqValue != "" {
		req, err := semver.ParseRange(reqValue)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid %s", err, VersionRequirementEnv)
		}
		cfg.VersionRequirement = req
	}

	if level := os.Getenv(LogLevelEnv); level != "" {
		switch level {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = level
		default:
			return nil, errors.New(level + " is not a valid " + LogLevelEnv)
		}
	}

	return cfg, nil
}

func ensurePathExists(p string) error {
	if err := os.MkdirAll(p, os.FileMode(allFilePermissions)); err != nil {
		return fmt.Errorf("%w: unable to create %s directory", err, p)
	}
	return nil
}
