package envconfig

import "github.com/caarlos0/env/v11"

type gradingEnv struct {
	InputPath  string `env:"GRADING_INPUT_PATH" envDefault:"students_input.txt"`
	ReportPath string `env:"GRADING_REPORT_PATH" envDefault:"students_report.txt"`
}

type grading struct {
	raw gradingEnv
}

func NewGradingConfig() (*grading, error) {
	var raw gradingEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &grading{raw: raw}, nil
}

func (cfg *grading) InputPath() string  { return cfg.raw.InputPath }
func (cfg *grading) ReportPath() string { return cfg.raw.ReportPath }
