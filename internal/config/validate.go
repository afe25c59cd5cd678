package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Storage.Driver {
	case StoragePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres storage driver")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("storage.driver must be postgres or memory (got %q)", c.Storage.Driver)
	}

	if err := c.Oracle.validate(); err != nil {
		return fmt.Errorf("oracle: %w", err)
	}

	if err := c.Market.validate(); err != nil {
		return fmt.Errorf("market: %w", err)
	}

	if c.Reserve.PerByte == 0 {
		return fmt.Errorf("reserve.per_byte must be > 0")
	}

	if c.Events.RetentionDays <= 0 {
		return fmt.Errorf("events.retention_days must be > 0 (got %d)", c.Events.RetentionDays)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (o *OracleConfig) validate() error {
	if o.MaxAge <= 0 {
		return fmt.Errorf("max_age must be > 0 (got %v)", o.MaxAge)
	}
	if o.CommodityFeedID == "" || o.CurrencyFeedID == "" {
		return fmt.Errorf("commodity_feed_id and currency_feed_id are required")
	}

	switch o.Source {
	case OracleSourceHermes:
		if o.HermesURL == "" {
			return fmt.Errorf("hermes_url is required for the hermes source")
		}
		if o.Timeout <= 0 {
			return fmt.Errorf("timeout must be > 0 (got %v)", o.Timeout)
		}
	case OracleSourceStatic:
		commodity, err := ParseStaticPrice(o.CommodityPrice)
		if err != nil {
			return fmt.Errorf("commodity_price: %w", err)
		}
		currency, err := ParseStaticPrice(o.CurrencyPrice)
		if err != nil {
			return fmt.Errorf("currency_price: %w", err)
		}
		o.StaticCommodity = commodity
		o.StaticCurrency = currency
	default:
		return fmt.Errorf("source must be hermes or static (got %q)", o.Source)
	}

	return nil
}

func (m *MarketConfig) validate() error {
	switch m.PriceMode {
	case PriceModeStatic, PriceModeOracle:
	default:
		return fmt.Errorf("price_mode must be static or oracle (got %q)", m.PriceMode)
	}
	if m.ListingPriceDecimals > 18 {
		return fmt.Errorf("listing_price_decimals must be <= 18 (got %d)", m.ListingPriceDecimals)
	}
	return nil
}

// ParseStaticPrice parses "value:conf:expo" (e.g. "2989990:1173:-3").
func ParseStaticPrice(raw string) (StaticPrice, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StaticPrice{}, fmt.Errorf("price is required")
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return StaticPrice{}, fmt.Errorf("invalid price %q: want value:conf:expo", raw)
	}

	value, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return StaticPrice{}, fmt.Errorf("invalid value %q: %w", parts[0], err)
	}
	conf, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return StaticPrice{}, fmt.Errorf("invalid conf %q: %w", parts[1], err)
	}
	expo, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 32)
	if err != nil {
		return StaticPrice{}, fmt.Errorf("invalid expo %q: %w", parts[2], err)
	}

	return StaticPrice{Value: value, Conf: conf, Expo: int32(expo)}, nil
}
