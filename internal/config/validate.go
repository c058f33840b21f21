package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Anthropic.Model == "" {
		return fmt.Errorf("anthropic.model must not be empty")
	}
	if c.Anthropic.MaxTokens <= 0 {
		return fmt.Errorf("anthropic.max_tokens must be > 0 (got %d)", c.Anthropic.MaxTokens)
	}

	if c.Lookup.AITimeout <= 0 {
		return fmt.Errorf("lookup.ai_timeout must be > 0 (got %v)", c.Lookup.AITimeout)
	}
	if c.Lookup.SourceTimeout <= 0 {
		return fmt.Errorf("lookup.source_timeout must be > 0 (got %v)", c.Lookup.SourceTimeout)
	}
	if c.Lookup.LockTTL <= 0 {
		return fmt.Errorf("lookup.lock_ttl must be > 0 (got %v)", c.Lookup.LockTTL)
	}
	if c.Lookup.LockPollInterval <= 0 {
		return fmt.Errorf("lookup.lock_poll_interval must be > 0 (got %v)", c.Lookup.LockPollInterval)
	}
	if c.Lookup.LockWaitTimeout < c.Lookup.LockPollInterval {
		return fmt.Errorf("lookup.lock_wait_timeout must be >= lock_poll_interval (got %v < %v)",
			c.Lookup.LockWaitTimeout, c.Lookup.LockPollInterval)
	}

	if c.Cache.CommonRankCutoff < 0 {
		return fmt.Errorf("cache.common_rank_cutoff must be >= 0 (got %d)", c.Cache.CommonRankCutoff)
	}
	if c.Cache.RareTTL <= 0 {
		return fmt.Errorf("cache.rare_ttl must be > 0 (got %v)", c.Cache.RareTTL)
	}
	if c.Cache.FailedTTL <= 0 {
		return fmt.Errorf("cache.failed_ttl must be > 0 (got %v)", c.Cache.FailedTTL)
	}

	return nil
}
