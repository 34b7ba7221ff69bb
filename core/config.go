package core

import (
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Config lending node config
type Config struct {
	App App       `json:"app"`
	DB  db.Config `json:"db"`
}

// App app config
type App struct {
	Location string `json:"location"`
	// 价格最长可用时间（秒）
	MaxPriceAge int64 `json:"max_price_age"`
	// interest worker 的执行间隔
	AccrualInterval string `json:"accrual_interval"`
}

// PriceMaxAge max usable age of an oracle price
func (a App) PriceMaxAge() time.Duration {
	if a.MaxPriceAge <= 0 {
		return 60 * time.Second
	}

	return time.Duration(a.MaxPriceAge) * time.Second
}
