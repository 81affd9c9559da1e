package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if err := c.Schedule.validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if err := c.Rules.validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache: max_entries must be >= 0 (got %d)", c.Cache.MaxEntries)
	}
	if c.Cache.MaxAge < 0 {
		return fmt.Errorf("cache: max_age must be >= 0 (got %s)", c.Cache.MaxAge)
	}
	if err := c.Audit.validate(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	if c.Notification.RetentionDays <= 0 {
		return fmt.Errorf("notification: retention_days must be > 0 (got %d)", c.Notification.RetentionDays)
	}
	return nil
}

func (s *ScheduleConfig) validate() error {
	if s.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be > 0 (got %s)", s.RefreshInterval)
	}
	if s.RefreshTimeout <= 0 {
		return fmt.Errorf("refresh_timeout must be > 0 (got %s)", s.RefreshTimeout)
	}
	if s.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", s.BatchSize)
	}
	return nil
}

func (r *RulesConfig) validate() error {
	if r.MaintenanceLookahead <= 0 {
		return fmt.Errorf("maintenance_lookahead must be > 0 (got %s)", r.MaintenanceLookahead)
	}
	if r.WarrantyLookahead <= 0 {
		return fmt.Errorf("warranty_lookahead must be > 0 (got %s)", r.WarrantyLookahead)
	}
	if r.RecentWindow <= 0 {
		return fmt.Errorf("recent_window must be > 0 (got %s)", r.RecentWindow)
	}
	if r.RecentMax <= 0 {
		return fmt.Errorf("recent_max must be > 0 (got %d)", r.RecentMax)
	}
	return nil
}

func (a *AuditConfig) validate() error {
	a.FailurePolicy = strings.ToLower(strings.TrimSpace(a.FailurePolicy))
	switch a.FailurePolicy {
	case AuditPolicyBestEffort, AuditPolicyStrict:
	default:
		return fmt.Errorf("failure_policy must be %q or %q (got %q)", AuditPolicyBestEffort, AuditPolicyStrict, a.FailurePolicy)
	}
	if a.RetryBaseDelay <= 0 {
		return fmt.Errorf("retry_base_delay must be > 0 (got %s)", a.RetryBaseDelay)
	}
	if a.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", a.QueueSize)
	}
	if a.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", a.RetentionDays)
	}
	return nil
}
