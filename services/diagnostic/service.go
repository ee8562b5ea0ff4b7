package diagnostic

import (
	"go.uber.org/zap"
)

// Service creates the diagnostic handlers of the components from a root logger.
type Service struct {
	Logger *zap.Logger
}

func NewService(l *zap.Logger) *Service {
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{Logger: l}
}

func (s *Service) NewMacroTransformationHandler() *MacroTransformationHandler {
	return &MacroTransformationHandler{
		l: s.Logger.With(zap.String("service", "macro")),
	}
}

func (s *Service) NewServerHandler() *ServerHandler {
	return &ServerHandler{
		l: s.Logger.With(zap.String("service", "server")),
	}
}

func (s *Service) NewCmdHandler() *CmdHandler {
	return &CmdHandler{
		l: s.Logger.With(zap.String("service", "run")),
	}
}
