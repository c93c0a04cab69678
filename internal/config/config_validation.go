// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig] for values no source may
// set. Missing values are checked later on [ClientConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Youfone.RequestTimeout < 0 {
		return ErrInvalidYoufoneConfigs
	}
	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Youfone.Email) == "" || cfg.Youfone.Password == "" {
		return ErrInvalidCredentialsConfigs
	}

	if cfg.Youfone.RequestTimeout <= 0 {
		return ErrInvalidYoufoneConfigs
	}

	if cfg.Server.HTTPAddress != "" && cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
