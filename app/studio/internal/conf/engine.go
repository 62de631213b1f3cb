package conf

import "github.com/iWorld-y/post_studio/app/post_studio/pkg/config"

// EngineConfig 将 Studio 转换为 pkg/config.Config，并补齐默认值和环境变量
func (s *Studio) EngineConfig() *config.Config {
	cfg := &config.Config{}
	if s != nil {
		if s.Llm != nil {
			cfg.LLM = config.LLMConfig{
				BaseURL: s.Llm.BaseUrl,
				APIKey:  s.Llm.ApiKey,
				Model:   s.Llm.Model,
			}
		}
		if s.Image != nil {
			cfg.Image.Model = s.Image.Model
		}
		if s.Log != nil {
			cfg.Log = config.LogConfig{Level: s.Log.Level, File: s.Log.File}
		}
		if s.Concurrency != nil {
			cfg.Concurrency = config.ConcurrencyConfig{
				QPS: int(s.Concurrency.Qps),
				RPM: int(s.Concurrency.Rpm),
			}
		}
		if s.Db != nil {
			cfg.DB = config.DBConfig{
				Host:     s.Db.Host,
				Port:     int(s.Db.Port),
				User:     s.Db.User,
				Password: s.Db.Password,
				Name:     s.Db.Name,
			}
		}
		if s.Output != nil {
			cfg.Output.Dir = s.Output.Dir
		}
	}

	cfg.ApplyDefaults()
	cfg.ApplyEnv()
	return cfg
}
