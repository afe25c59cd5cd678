package app

import (
	"log/slog"

	"github.com/heartmarshall/bullion-registry/internal/adapter/provider/hermes"
	"github.com/heartmarshall/bullion-registry/internal/config"
	"github.com/heartmarshall/bullion-registry/internal/domain"
	"github.com/heartmarshall/bullion-registry/internal/oracle"
)

// NewPriceOracle builds the staleness-guarded price adapter for cfg.Source.
func NewPriceOracle(cfg config.OracleConfig, log *slog.Logger) *oracle.Adapter {
	feeds := oracle.Feeds{Commodity: cfg.CommodityFeedID, Currency: cfg.CurrencyFeedID}

	if cfg.Source == config.OracleSourceStatic {
		src := oracle.NewStaticSource(map[string]domain.Price{
			cfg.CommodityFeedID: staticPrice(cfg.StaticCommodity),
			cfg.CurrencyFeedID:  staticPrice(cfg.StaticCurrency),
		})
		return oracle.NewAdapter(log, src, feeds, cfg.MaxAge)
	}

	return oracle.NewAdapter(log, hermes.NewProviderWithURL(cfg.HermesURL, cfg.Timeout, log), feeds, cfg.MaxAge)
}

func staticPrice(p config.StaticPrice) domain.Price {
	return domain.Price{Value: p.Value, Conf: p.Conf, Expo: p.Expo}
}
