package rabbitlog

import (
	"fmt"

	"github.com/Aleph-Alpha/logship/v1/logger"
)

// selectDebug picks the diagnostics sink. A custom function is honoured only
// when the level is exactly "debug"; otherwise diagnostics go to log at
// debug level, so log must be enabled for debug to surface them.
func selectDebug(cfg Config, log *logger.LoggerClient) (DebugFunc, bool) {
	if cfg.Level == logger.Debug && cfg.Debug != nil {
		return cfg.Debug, true
	}
	name := cfg.Name
	return func(msg string) {
		log.Debug(msg, nil, map[string]interface{}{"name": name})
	}, false
}

// emitDebug hands msg to the diagnostics sink. A panicking sink is
// contained and reported through the logger.
func (t *Transport) emitDebug(msg string) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Warn("debug hook panicked", fmt.Errorf("%v", r), map[string]interface{}{
				"name":    t.cfg.Name,
				"message": msg,
			})
		}
	}()
	t.debug(msg)
}

// UsesCustomDebug reports whether diagnostics go to the configured Debug
// function rather than the logger.
func (t *Transport) UsesCustomDebug() bool {
	return t.customDebug
}
