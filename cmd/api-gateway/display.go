package main

import (
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/service"
	"go.uber.org/zap"
)

// logDisplay reports what the session would show to a terminal user as log
// lines; the gateway serves the pages themselves over REST.
type logDisplay struct {
	logger *zap.Logger
}

func newLogDisplay(logger *zap.Logger) logDisplay {
	return logDisplay{logger: logger.Named("session")}
}

func (d logDisplay) ShowPage(p service.Page) {
	d.logger.Debug("page rendered",
		zap.Int("page", p.Number),
		zap.Int("total_pages", p.TotalPages),
		zap.Uint64("latest", p.Latest),
		zap.Int("placeholders", p.Placeholders()),
	)
}

func (d logDisplay) ShowStats(s service.Stats) {
	d.logger.Info("stats updated",
		zap.Bool("found", s.Found),
		zap.Uint64("latest", s.Latest),
		zap.Uint64("total_blocks", s.TotalBlocks),
	)
}

func (d logDisplay) ShowStatus(status string) {
	d.logger.Info(status)
}
