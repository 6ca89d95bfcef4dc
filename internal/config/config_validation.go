// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*Configs
// sentinels wrapped with the offending field otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.ConfirmationTTL <= 0 {
		return fmt.Errorf("%w: confirmation ttl must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d is out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}
	if (cfg.App.AdminLogin == "") != (cfg.App.AdminPassword == "") {
		return fmt.Errorf("%w: admin login and password must be set together", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: dsn is empty", ErrInvalidStorageConfigs)
	}

	switch cfg.Notifier.Driver {
	case NotifierLog:
	case NotifierSMTP:
		if cfg.Notifier.SMTP.Host == "" || cfg.Notifier.SMTP.Port == 0 || cfg.Notifier.From == "" {
			return fmt.Errorf("%w: smtp host, port and sender are required", ErrInvalidNotifierConfigs)
		}
	case NotifierHTTP:
		if cfg.Notifier.HTTP.URL == "" || cfg.Notifier.From == "" {
			return fmt.Errorf("%w: mail api url and sender are required", ErrInvalidNotifierConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidNotifierConfigs, cfg.Notifier.Driver)
	}

	return nil
}
