package tutorial

import (
	"fmt"

	"quantlab_backend/internal/config"
	"quantlab_backend/internal/model"
	"quantlab_backend/internal/service"
)

type serv struct {
	configs map[string]config.TutorialConfig
	names   []string
}

// NewTutorialService отдает фронтенду декларации параметров:
// из них SPA строит слайдеры и селекты
func NewTutorialService(configs []config.TutorialConfig) service.TutorialService {
	s := &serv{
		configs: make(map[string]config.TutorialConfig, len(configs)),
		names:   make([]string, 0, len(configs)),
	}
	for _, cfg := range configs {
		s.configs[cfg.Name()] = cfg
		s.names = append(s.names, cfg.Name())
	}
	return s
}

func (s *serv) List() []string {
	return s.names
}

func (s *serv) Defaults(name string) (*model.TutorialInfo, error) {
	cfg, ok := s.configs[name]
	if !ok {
		return nil, fmt.Errorf("unknown tutorial %q", name)
	}

	info := &model.TutorialInfo{
		Name:    cfg.Name(),
		Numbers: make(map[string]model.NumberParam, len(cfg.NumberParams())),
		Enums:   make(map[string]model.EnumParam, len(cfg.EnumParams())),
	}
	for key, p := range cfg.NumberParams() {
		info.Numbers[key] = model.NumberParam(p)
	}
	for key, p := range cfg.EnumParams() {
		info.Enums[key] = model.EnumParam(p)
	}

	return info, nil
}
