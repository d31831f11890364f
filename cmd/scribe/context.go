package main

import (
	"context"
	"strings"
	"sync"

	"scribe/internal/config"
	"scribe/internal/jobs"
	"scribe/internal/queue"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) withStore(ctx context.Context, fn func(*jobs.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := jobs.Open(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func (c *commandContext) withQueue(fn func(*queue.Client) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	q, err := queue.NewClient(cfg.Queue.RedisURL, cfg.Queue.Key)
	if err != nil {
		return err
	}
	defer q.Close()
	return fn(q)
}
