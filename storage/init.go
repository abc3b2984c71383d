package storage

import (
	"addressbook/config"
	"addressbook/storage/redis"
)

// 通讯录本身在内存中，外部存储只有限流用的 Redis

func Init() error {
	if !config.Cfg.RateLimitEnabled {
		return nil
	}

	if err := redis.Init(); err != nil {
		return err
	}

	return nil
}
