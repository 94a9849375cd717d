package digesting

import (
	"context"
	"fmt"

	"github.com/vfg2006/printsmith-digest/pkg/log"
)

// tryRun executa fn isolando erros e panics: a falha é registrada como aviso
// e o chamador recebe ok=false
func tryRun[T any](ctx context.Context, name string, fn func() (T, error)) (result T, ok bool) {
	logger := log.ForContext(ctx).WithField("step", name)

	defer func() {
		if r := recover(); r != nil {
			logger.WithError(fmt.Errorf("panic: %v", r)).Warn("Etapa interrompida por panic, seguindo sem ela")
			var zero T
			result, ok = zero, false
		}
	}()

	result, err := fn()
	if err != nil {
		logger.WithError(err).Warn("Etapa falhou, seguindo sem ela")
		var zero T
		return zero, false
	}

	return result, true
}
